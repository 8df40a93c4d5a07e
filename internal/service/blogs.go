package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/vkazmin/blogcore/internal/authz"
	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/model"
	"github.com/vkazmin/blogcore/internal/repository"
)

// BlogService defines operations over blog posts. Reads are public;
// mutations require the caller to own the post.
type BlogService interface {
	// Create inserts a new post authored by callerID.
	Create(ctx context.Context, callerID uuid.UUID, in model.BlogInput) (model.Blog, error)
	// List returns all posts.
	List(ctx context.Context) ([]model.Blog, error)
	// Get returns one post by ID.
	Get(ctx context.Context, id uuid.UUID) (model.Blog, error)
	// Update rewrites a post the caller owns.
	Update(ctx context.Context, callerID, id uuid.UUID, in model.BlogInput) (model.Blog, error)
	// Delete removes a post the caller owns.
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

type BlogServiceImpl struct {
	blogs repository.BlogRepository
}

// NewBlogService constructs BlogService.
func NewBlogService(blogs repository.BlogRepository) *BlogServiceImpl {
	return &BlogServiceImpl{blogs: blogs}
}

// Create inserts a post; the author is always the authenticated caller.
func (s *BlogServiceImpl) Create(ctx context.Context, callerID uuid.UUID, in model.BlogInput) (model.Blog, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return model.Blog{}, err
	}
	b := &model.Blog{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		AuthorID:    callerID,
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if err := s.blogs.Create(ctx, b); err != nil {
		return model.Blog{}, err
	}
	return *b, nil
}

// List returns all posts.
func (s *BlogServiceImpl) List(ctx context.Context) ([]model.Blog, error) {
	return s.blogs.List(ctx)
}

// Get returns one post.
func (s *BlogServiceImpl) Get(ctx context.Context, id uuid.UUID) (model.Blog, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return model.Blog{}, err
	}
	return *b, nil
}

// Update loads the post, checks ownership, then rewrites the mutable fields.
// A denied caller never reaches the store write.
func (s *BlogServiceImpl) Update(ctx context.Context, callerID, id uuid.UUID, in model.BlogInput) (model.Blog, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return model.Blog{}, err
	}
	if authz.OwnerOnly(b.AuthorID, callerID) != authz.Allow {
		return model.Blog{}, errs.New(errs.Forbidden, "You are not authorized to update this blog")
	}
	updated, err := s.blogs.Update(ctx, id, in)
	if err != nil {
		return model.Blog{}, err
	}
	return *updated, nil
}

// Delete loads the post, checks ownership, then removes it.
func (s *BlogServiceImpl) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if authz.OwnerOnly(b.AuthorID, callerID) != authz.Allow {
		return errs.New(errs.Forbidden, "You are not authorized to delete this blog")
	}
	return s.blogs.Delete(ctx, id)
}
