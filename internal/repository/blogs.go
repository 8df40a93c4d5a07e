package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/vkazmin/blogcore/internal/model"
)

// BlogRepository provides CRUD access for blog posts.
type BlogRepository interface {
	// Create inserts a new blog post.
	Create(ctx context.Context, b *model.Blog) error
	// List returns all blog posts, newest first.
	List(ctx context.Context) ([]model.Blog, error)
	// GetByID loads a blog post; NotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	// Update rewrites the mutable fields; AuthorID is never touched.
	Update(ctx context.Context, id uuid.UUID, in model.BlogInput) (*model.Blog, error)
	// Delete removes a blog post and its comments.
	Delete(ctx context.Context, id uuid.UUID) error
}
