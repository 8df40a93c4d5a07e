package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/vkazmin/blogcore/internal/crypto"
	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/limiter"
	"github.com/vkazmin/blogcore/internal/model"
	"github.com/vkazmin/blogcore/internal/repository"
)

type fakeUsers struct {
	byEmail map[string]*model.User

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byEmail == nil {
		f.byEmail = map[string]*model.User{}
	}
	for _, have := range f.byEmail {
		if have.Email == u.Email {
			return errs.New(errs.DuplicateKey, "email already exists")
		}
		if have.Username == u.Username {
			return errs.New(errs.DuplicateKey, "username already exists")
		}
	}
	cpy := *u
	f.byEmail[u.Email] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.New(errs.NotFound, "User not found")
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errs.New(errs.NotFound, "User not found")
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id uuid.UUID, username, email string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Username, u.Email = username, email
			c := *u
			return &c, nil
		}
	}
	return nil, errs.New(errs.NotFound, "User not found")
}

func userWith(username, email, password string, salt []byte) *model.User {
	return &model.User{
		ID:         uuid.Must(uuid.NewV4()),
		Username:   username,
		Email:      email,
		SecretHash: pkgcrypto.HashSecret(password, salt),
		SecretSalt: salt,
	}
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}
func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return nil
}
func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}

type fakeBlogs struct {
	byID map[uuid.UUID]*model.Blog

	updateCalls int
	deleteCalls int
}

var _ repository.BlogRepository = (*fakeBlogs)(nil)

func (f *fakeBlogs) Create(_ context.Context, b *model.Blog) error {
	if f.byID == nil {
		f.byID = map[uuid.UUID]*model.Blog{}
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cpy := *b
	f.byID[b.ID] = &cpy
	return nil
}

func (f *fakeBlogs) List(context.Context) ([]model.Blog, error) {
	out := []model.Blog{}
	for _, b := range f.byID {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBlogs) GetByID(_ context.Context, id uuid.UUID) (*model.Blog, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, errs.New(errs.NotFound, "Blog not found")
	}
	c := *b
	return &c, nil
}

func (f *fakeBlogs) Update(_ context.Context, id uuid.UUID, in model.BlogInput) (*model.Blog, error) {
	f.updateCalls++
	b, ok := f.byID[id]
	if !ok {
		return nil, errs.New(errs.NotFound, "Blog not found")
	}
	b.Title, b.Description, b.Tags = in.Title, in.Description, in.Tags
	b.UpdatedAt = time.Now()
	c := *b
	return &c, nil
}

func (f *fakeBlogs) Delete(_ context.Context, id uuid.UUID) error {
	f.deleteCalls++
	if _, ok := f.byID[id]; !ok {
		return errs.New(errs.NotFound, "Blog not found")
	}
	delete(f.byID, id)
	return nil
}

type fakeComments struct {
	byID map[uuid.UUID]*model.Comment

	deleteCalls int
}

var _ repository.CommentRepository = (*fakeComments)(nil)

func (f *fakeComments) Create(_ context.Context, c *model.Comment) error {
	if f.byID == nil {
		f.byID = map[uuid.UUID]*model.Comment{}
	}
	c.CreatedAt = time.Now()
	cpy := *c
	f.byID[c.ID] = &cpy
	return nil
}

func (f *fakeComments) ListByBlog(_ context.Context, blogID uuid.UUID) ([]model.Comment, error) {
	out := []model.Comment{}
	for _, c := range f.byID {
		if c.BlogID == blogID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComments) GetInBlog(_ context.Context, blogID, commentID uuid.UUID) (*model.Comment, error) {
	c, ok := f.byID[commentID]
	if !ok || c.BlogID != blogID {
		return nil, errs.New(errs.NotFound, "Comment not found or does not belong to this blog")
	}
	cpy := *c
	return &cpy, nil
}

func (f *fakeComments) Delete(_ context.Context, id uuid.UUID) error {
	f.deleteCalls++
	delete(f.byID, id)
	return nil
}
