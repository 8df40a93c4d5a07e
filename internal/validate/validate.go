// Package validate performs syntactic request validation. Every check runs;
// all violations are collected and reported together.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vkazmin/blogcore/internal/errs"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Registration checks signup fields.
func Registration(username, email, password string) []errs.FieldError {
	var out []errs.FieldError
	out = appendLength(out, "username", username, 3, 30)
	out = appendEmail(out, email)
	if utf8.RuneCountInString(password) < 8 {
		out = append(out, errs.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	return out
}

// Login checks credential fields for presence and shape.
func Login(email, password string) []errs.FieldError {
	var out []errs.FieldError
	out = appendEmail(out, email)
	if password == "" {
		out = append(out, errs.FieldError{Field: "password", Message: "Password is required"})
	}
	return out
}

// Profile checks profile-update fields.
func Profile(username, email string) []errs.FieldError {
	var out []errs.FieldError
	out = appendLength(out, "username", username, 3, 30)
	out = appendEmail(out, email)
	return out
}

// Blog checks blog post fields.
func Blog(title, description string, tags []string) []errs.FieldError {
	var out []errs.FieldError
	out = appendLength(out, "title", title, 3, 100)
	out = appendLength(out, "description", description, 3, 1000)
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			out = append(out, errs.FieldError{
				Field:   fmt.Sprintf("tags[%d]", i),
				Message: "Each tag must be a non-empty string",
			})
		}
	}
	return out
}

// Comment checks comment fields.
func Comment(text string) []errs.FieldError {
	return appendLength(nil, "text", text, 3, 500)
}

func appendLength(out []errs.FieldError, field, v string, min, max int) []errs.FieldError {
	switch n := utf8.RuneCountInString(strings.TrimSpace(v)); {
	case n == 0:
		out = append(out, errs.FieldError{Field: field, Message: title(field) + " is required"})
	case n < min || n > max:
		out = append(out, errs.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be min %d and must not exceed %d characters", title(field), min, max),
		})
	}
	return out
}

func appendEmail(out []errs.FieldError, email string) []errs.FieldError {
	if email == "" {
		return append(out, errs.FieldError{Field: "email", Message: "Email is required"})
	}
	if !emailRe.MatchString(email) {
		return append(out, errs.FieldError{Field: "email", Message: "Email must be valid"})
	}
	return out
}

func title(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
