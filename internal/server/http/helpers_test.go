package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/limiter"
	"github.com/vkazmin/blogcore/internal/model"
	"github.com/vkazmin/blogcore/internal/repository"
	"github.com/vkazmin/blogcore/internal/service"
	"github.com/vkazmin/blogcore/internal/token"
)

/************ in-memory stores ************/

type memUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*memUsers)(nil)

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]*model.User{}} }

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, have := range m.byID {
		if have.Email == u.Email {
			return errs.New(errs.DuplicateKey, "email already exists")
		}
		if have.Username == u.Username {
			return errs.New(errs.DuplicateKey, "username already exists")
		}
	}
	u.CreatedAt = time.Now()
	cpy := *u
	m.byID[u.ID] = &cpy
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, errs.New(errs.NotFound, "User not found")
	}
	c := *u
	return &c, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.New(errs.NotFound, "User not found")
}

func (m *memUsers) UpdateProfile(_ context.Context, id uuid.UUID, username, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, errs.New(errs.NotFound, "User not found")
	}
	u.Username, u.Email = username, email
	c := *u
	return &c, nil
}

// remove simulates account deletion after token issuance.
func (m *memUsers) remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
}

type memBlogs struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*model.Blog
}

var _ repository.BlogRepository = (*memBlogs)(nil)

func newMemBlogs() *memBlogs { return &memBlogs{byID: map[uuid.UUID]*model.Blog{}} }

func (m *memBlogs) Create(_ context.Context, b *model.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cpy := *b
	m.byID[b.ID] = &cpy
	return nil
}

func (m *memBlogs) List(context.Context) ([]model.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Blog{}
	for _, b := range m.byID {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memBlogs) GetByID(_ context.Context, id uuid.UUID) (*model.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return nil, errs.New(errs.NotFound, "Blog not found")
	}
	c := *b
	return &c, nil
}

func (m *memBlogs) Update(_ context.Context, id uuid.UUID, in model.BlogInput) (*model.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return nil, errs.New(errs.NotFound, "Blog not found")
	}
	b.Title, b.Description, b.Tags = in.Title, in.Description, in.Tags
	b.UpdatedAt = time.Now()
	c := *b
	return &c, nil
}

func (m *memBlogs) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return errs.New(errs.NotFound, "Blog not found")
	}
	delete(m.byID, id)
	return nil
}

type memComments struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*model.Comment
}

var _ repository.CommentRepository = (*memComments)(nil)

func newMemComments() *memComments { return &memComments{byID: map[uuid.UUID]*model.Comment{}} }

func (m *memComments) Create(_ context.Context, c *model.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.CreatedAt = time.Now()
	cpy := *c
	m.byID[c.ID] = &cpy
	return nil
}

func (m *memComments) ListByBlog(_ context.Context, blogID uuid.UUID) ([]model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Comment{}
	for _, c := range m.byID {
		if c.BlogID == blogID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memComments) GetInBlog(_ context.Context, blogID, commentID uuid.UUID) (*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[commentID]
	if !ok || c.BlogID != blogID {
		return nil, errs.New(errs.NotFound, "Comment not found or does not belong to this blog")
	}
	cpy := *c
	return &cpy, nil
}

func (m *memComments) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type allowAll struct{}

var _ limiter.Limiter = allowAll{}

func (allowAll) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	return true, 0, nil
}
func (allowAll) Success(context.Context, string, []byte) error { return nil }
func (allowAll) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	return false, 0, nil
}

/************ fixture ************/

type fakeClock struct {
	mu sync.Mutex
	at time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
}

type fixture struct {
	handler http.Handler
	users   *memUsers
	blogs   *memBlogs
	clock   *fakeClock
	tokens  *token.Service
}

const testTTL = time.Hour

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := newMemUsers()
	blogs := newMemBlogs()
	comments := newMemComments()
	clock := &fakeClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	tokens := token.NewWithClock([]byte("test-signing-key"), testTTL, clock.Now)

	srv := New(
		zap.NewNop(),
		service.NewAuthService(users, tokens, allowAll{}),
		service.NewBlogService(blogs),
		service.NewCommentService(comments, blogs),
		service.NewUserService(users),
		tokens,
		users,
	)
	return &fixture{handler: srv.Routes(), users: users, blogs: blogs, clock: clock, tokens: tokens}
}

func (f *fixture) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.RemoteAddr = "192.0.2.10:4242"
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

type envelopeOut struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelopeOut {
	t.Helper()
	var env envelopeOut
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return env
}

// register creates an account and returns its token and user id.
func (f *fixture) register(t *testing.T, username, email string) (string, uuid.UUID) {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username, "email": email, "password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status=%d body=%s", username, w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	var data struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return env.Token, uuid.Must(uuid.FromString(data.User.ID))
}
