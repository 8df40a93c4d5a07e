package httpserver

import (
	"time"

	"github.com/vkazmin/blogcore/internal/model"
)

// userDTO is the outward shape of an identity. The secret hash and salt
// have no field here and can never be serialized.
type userDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserDTO(u model.User) userDTO {
	return userDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// userPayload nests the user for auth/profile responses.
type userPayload struct {
	User userDTO `json:"user"`
}

type blogDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBlogDTO(b model.Blog) blogDTO {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return blogDTO{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		Tags:        tags,
		Author:      b.AuthorID.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBlogDTOs(bs []model.Blog) []blogDTO {
	out := make([]blogDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBlogDTO(b))
	}
	return out
}

type commentDTO struct {
	ID        string    `json:"id"`
	Blog      string    `json:"blog"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentDTO(c model.Comment) commentDTO {
	return commentDTO{
		ID:        c.ID.String(),
		Blog:      c.BlogID.String(),
		User:      c.AuthorID.String(),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentDTOs(cs []model.Comment) []commentDTO {
	out := make([]commentDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCommentDTO(c))
	}
	return out
}
