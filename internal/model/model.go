// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is a registered account. SecretHash and SecretSalt never leave the
// server: transport DTOs must not include them.
type User struct {
	ID         uuid.UUID // PK
	Username   string    // unique
	Email      string    // unique, login key
	SecretHash []byte    // Argon2id(password, SecretSalt)
	SecretSalt []byte    // per-user random salt
	CreatedAt  time.Time
}

// Blog is a post. AuthorID is set at creation and never reassigned.
type Blog struct {
	ID          uuid.UUID
	Title       string
	Description string
	Tags        []string
	AuthorID    uuid.UUID // FK -> users.id, immutable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlogInput carries the mutable fields of a blog for create/update.
type BlogInput struct {
	Title       string
	Description string
	Tags        []string
}

// Comment belongs to one blog and one author. AuthorID is immutable.
type Comment struct {
	ID        uuid.UUID
	BlogID    uuid.UUID // FK -> blogs.id
	AuthorID  uuid.UUID // FK -> users.id, immutable
	Text      string
	CreatedAt time.Time
}
