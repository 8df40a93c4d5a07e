package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/vkazmin/blogcore/internal/model"
)

// CommentRepository provides access to comments, always scoped to a blog.
type CommentRepository interface {
	// Create inserts a new comment.
	Create(ctx context.Context, c *model.Comment) error
	// ListByBlog returns all comments of a blog, oldest first.
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]model.Comment, error)
	// GetInBlog loads a comment if it belongs to the given blog; NotFound otherwise.
	GetInBlog(ctx context.Context, blogID, commentID uuid.UUID) (*model.Comment, error)
	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
