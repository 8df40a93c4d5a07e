package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/vkazmin/blogcore/internal/authz"
	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/model"
	"github.com/vkazmin/blogcore/internal/repository"
)

// CommentService defines operations over comments nested under blogs.
type CommentService interface {
	// Add attaches a comment to an existing blog.
	Add(ctx context.Context, callerID, blogID uuid.UUID, text string) (model.Comment, error)
	// ListByBlog returns all comments of a blog.
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]model.Comment, error)
	// Delete removes a comment the caller owns.
	Delete(ctx context.Context, callerID, blogID, commentID uuid.UUID) error
}

type CommentServiceImpl struct {
	comments repository.CommentRepository
	blogs    repository.BlogRepository
}

// NewCommentService constructs CommentService.
func NewCommentService(comments repository.CommentRepository, blogs repository.BlogRepository) *CommentServiceImpl {
	return &CommentServiceImpl{comments: comments, blogs: blogs}
}

// Add verifies the blog exists before attaching the comment.
func (s *CommentServiceImpl) Add(ctx context.Context, callerID, blogID uuid.UUID, text string) (model.Comment, error) {
	if _, err := s.blogs.GetByID(ctx, blogID); err != nil {
		return model.Comment{}, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Comment{}, err
	}
	c := &model.Comment{
		ID:       id,
		BlogID:   blogID,
		AuthorID: callerID,
		Text:     text,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return model.Comment{}, err
	}
	return *c, nil
}

// ListByBlog returns all comments of a blog.
func (s *CommentServiceImpl) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]model.Comment, error) {
	return s.comments.ListByBlog(ctx, blogID)
}

// Delete resolves the comment within its blog, checks ownership, removes it.
func (s *CommentServiceImpl) Delete(ctx context.Context, callerID, blogID, commentID uuid.UUID) error {
	c, err := s.comments.GetInBlog(ctx, blogID, commentID)
	if err != nil {
		return err
	}
	if authz.OwnerOnly(c.AuthorID, callerID) != authz.Allow {
		return errs.New(errs.Forbidden, "You are not authorized to delete this comment")
	}
	return s.comments.Delete(ctx, commentID)
}
