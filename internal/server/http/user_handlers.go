package httpserver

import (
	"net/http"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/validate"
)

type profileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	caller, err := s.callerFromCtx(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	u, err := s.profile.Profile(r.Context(), caller)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: userPayload{User: toUserDTO(u)}})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, err := s.callerFromCtx(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if fes := validate.Profile(req.Username, req.Email); len(fes) > 0 {
		s.writeError(w, errs.Invalid(fes...))
		return
	}

	u, err := s.profile.UpdateProfile(r.Context(), caller, req.Username, req.Email)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: userPayload{User: toUserDTO(u)}})
}
