package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/model"
)

// CommentRepo implements CommentRepository using PostgreSQL.
type CommentRepo struct{ db *DB }

// NewCommentRepo constructs a comment repository.
func NewCommentRepo(db *DB) *CommentRepo { return &CommentRepo{db: db} }

const commentColumns = `id, blog_id, author_id, text, created_at`

// Create inserts a new comment.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	const q = `
INSERT INTO comments (id, blog_id, author_id, text)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	return r.db.Pool.QueryRow(ctx, q, c.ID, c.BlogID, c.AuthorID, c.Text).Scan(&c.CreatedAt)
}

// ListByBlog returns all comments of a blog, oldest first.
func (r *CommentRepo) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]model.Comment, error) {
	const q = `SELECT ` + commentColumns + ` FROM comments WHERE blog_id=$1 ORDER BY created_at`
	rows, err := r.db.Pool.Query(ctx, q, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.BlogID, &c.AuthorID, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetInBlog selects a comment constrained to the given blog.
func (r *CommentRepo) GetInBlog(ctx context.Context, blogID, commentID uuid.UUID) (*model.Comment, error) {
	const q = `SELECT ` + commentColumns + ` FROM comments WHERE id=$1 AND blog_id=$2`
	var c model.Comment
	err := r.db.Pool.QueryRow(ctx, q, commentID, blogID).
		Scan(&c.ID, &c.BlogID, &c.AuthorID, &c.Text, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Wrap(err, errs.NotFound, "Comment not found or does not belong to this blog")
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a comment by ID.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM comments WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.New(errs.NotFound, "Comment not found or does not belong to this blog")
	}
	return nil
}
