// Package httpserver exposes the blog platform REST API.
package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/repository"
	"github.com/vkazmin/blogcore/internal/service"
	"github.com/vkazmin/blogcore/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	log      *zap.Logger
	auth     service.AuthService
	blogs    service.BlogService
	comments service.CommentService
	profile  service.UserService
	tokens   *token.Service
	users    repository.UserRepository
}

// New constructs a Server with injected services.
func New(
	log *zap.Logger,
	auth service.AuthService,
	blogs service.BlogService,
	comments service.CommentService,
	profile service.UserService,
	tokens *token.Service,
	users repository.UserRepository,
) *Server {
	return &Server{
		log:      log,
		auth:     auth,
		blogs:    blogs,
		comments: comments,
		profile:  profile,
		tokens:   tokens,
		users:    users,
	}
}

// Routes returns the API router. Reads on blogs and comments are public;
// every mutation goes through requireAuth first.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(Recover(s.log), Logging(s.log))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.handleRegister)
		api.Post("/auth/login", s.handleLogin)

		api.Route("/users", func(u chi.Router) {
			u.Use(s.requireAuth)
			u.Get("/profile", s.handleProfile)
			u.Put("/profile", s.handleUpdateProfile)
		})

		api.Route("/blogs", func(b chi.Router) {
			b.Get("/", s.handleListBlogs)
			b.With(s.requireAuth).Post("/", s.handleCreateBlog)

			b.Get("/{blogID}", s.handleGetBlog)
			b.With(s.requireAuth).Put("/{blogID}", s.handleUpdateBlog)
			b.With(s.requireAuth).Delete("/{blogID}", s.handleDeleteBlog)

			b.Get("/{blogID}/comments", s.handleListComments)
			b.With(s.requireAuth).Post("/{blogID}/comments", s.handleAddComment)
			b.With(s.requireAuth).Delete("/{blogID}/comments/{commentID}", s.handleDeleteComment)
		})
	})

	return r
}

// pathID parses a UUID route parameter.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errs.Invalid(errs.FieldError{Field: name, Message: "Invalid ID format"})
	}
	return id, nil
}

// callerFromCtx returns the authenticated identity; requireAuth guarantees
// it is present on protected routes.
func (s *Server) callerFromCtx(r *http.Request) (uuid.UUID, error) {
	u, ok := UserFromCtx(r.Context())
	if !ok {
		return uuid.Nil, errs.New(errs.MissingToken, "You are not logged in! Please log in to get access.")
	}
	return u.ID, nil
}
