package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, username, email, secret_hash, secret_salt, created_at`

// Create inserts a new user row. The unique constraints on username and
// email are the only duplicate check: no read-before-write.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, username, email, secret_hash, secret_salt)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.Username, u.Email, u.SecretHash, u.SecretSalt)
	if field, ok := uniqueViolationField(err); ok {
		return errs.Wrap(err, errs.DuplicateKey, duplicateMessage(field))
	}
	return err
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, email))
}

// UpdateProfile changes username/email and returns the updated row.
// The secret hash and salt are deliberately out of reach here.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (*model.User, error) {
	const q = `
UPDATE users SET username=$2, email=$3
WHERE id=$1
RETURNING ` + userColumns
	u, err := r.scanUser(r.db.Pool.QueryRow(ctx, q, id, username, email))
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return nil, errs.Wrap(err, errs.DuplicateKey, duplicateMessage(field))
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.SecretHash, &u.SecretSalt, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Wrap(err, errs.NotFound, "User not found")
		}
		return nil, err
	}
	return &u, nil
}

func duplicateMessage(field string) string {
	if field == "" {
		field = "value"
	}
	return field + " already exists"
}
