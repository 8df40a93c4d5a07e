package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/model"
)

// BlogRepo implements BlogRepository using PostgreSQL.
type BlogRepo struct{ db *DB }

// NewBlogRepo constructs a blog repository.
func NewBlogRepo(db *DB) *BlogRepo { return &BlogRepo{db: db} }

const blogColumns = `id, title, description, tags, author_id, created_at, updated_at`

// Create inserts a new blog post.
func (r *BlogRepo) Create(ctx context.Context, b *model.Blog) error {
	const q = `
INSERT INTO blogs (id, title, description, tags, author_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at, updated_at`
	return r.db.Pool.QueryRow(ctx, q, b.ID, b.Title, b.Description, b.Tags, b.AuthorID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

// List returns all blog posts, newest first.
func (r *BlogRepo) List(ctx context.Context) ([]model.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Blog{}
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Tags, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID selects a blog post by ID.
func (r *BlogRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs WHERE id=$1`
	return scanBlog(r.db.Pool.QueryRow(ctx, q, id))
}

// Update rewrites title/description/tags. author_id stays untouched.
func (r *BlogRepo) Update(ctx context.Context, id uuid.UUID, in model.BlogInput) (*model.Blog, error) {
	const q = `
UPDATE blogs SET title=$2, description=$3, tags=$4, updated_at=now()
WHERE id=$1
RETURNING ` + blogColumns
	return scanBlog(r.db.Pool.QueryRow(ctx, q, id, in.Title, in.Description, in.Tags))
}

// Delete removes a blog post; comments go with it via ON DELETE CASCADE.
func (r *BlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM blogs WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.New(errs.NotFound, "Blog not found")
	}
	return nil
}

func scanBlog(row pgx.Row) (*model.Blog, error) {
	var b model.Blog
	err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Tags, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Wrap(err, errs.NotFound, "Blog not found")
		}
		return nil, err
	}
	return &b, nil
}
