package httpserver

import (
	"net/http"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/validate"
)

type commentRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	blogID, err := pathID(r, "blogID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	cs, err := s.comments.ListByBlog(r.Context(), blogID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: count(len(cs)), Data: toCommentDTOs(cs)})
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	caller, err := s.callerFromCtx(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	blogID, err := pathID(r, "blogID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if fes := validate.Comment(req.Text); len(fes) > 0 {
		s.writeError(w, errs.Invalid(fes...))
		return
	}

	c, err := s.comments.Add(r.Context(), caller, blogID, req.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: toCommentDTO(c)})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	caller, err := s.callerFromCtx(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	blogID, err := pathID(r, "blogID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	commentID, err := pathID(r, "commentID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.comments.Delete(r.Context(), caller, blogID, commentID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
