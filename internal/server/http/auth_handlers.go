package httpserver

import (
	"net"
	"net/http"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/validate"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister creates an account and returns a token for it.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if fes := validate.Registration(req.Username, req.Email, req.Password); len(fes) > 0 {
		s.writeError(w, errs.Invalid(fes...))
		return
	}

	sess, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Token:   sess.Token,
		Data:    userPayload{User: toUserDTO(sess.User)},
	})
}

// handleLogin authenticates and returns a token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if fes := validate.Login(req.Email, req.Password); len(fes) > 0 {
		s.writeError(w, errs.Invalid(fes...))
		return
	}

	sess, err := s.auth.Login(r.Context(), req.Email, req.Password, remoteIP(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Token:   sess.Token,
		Data:    userPayload{User: toUserDTO(sess.User)},
	})
}

func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
