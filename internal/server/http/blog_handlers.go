package httpserver

import (
	"net/http"

	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/model"
	"github.com/vkazmin/blogcore/internal/validate"
)

type blogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	caller, err := s.callerFromCtx(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req blogRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if fes := validate.Blog(req.Title, req.Description, req.Tags); len(fes) > 0 {
		s.writeError(w, errs.Invalid(fes...))
		return
	}

	b, err := s.blogs.Create(r.Context(), caller, model.BlogInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: toBlogDTO(b)})
}

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	bs, err := s.blogs.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: count(len(bs)), Data: toBlogDTOs(bs)})
}

func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "blogID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := s.blogs.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: toBlogDTO(b)})
}

func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	caller, err := s.callerFromCtx(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	id, err := pathID(r, "blogID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req blogRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if fes := validate.Blog(req.Title, req.Description, req.Tags); len(fes) > 0 {
		s.writeError(w, errs.Invalid(fes...))
		return
	}

	b, err := s.blogs.Update(r.Context(), caller, id, model.BlogInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: toBlogDTO(b)})
}

func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	caller, err := s.callerFromCtx(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	id, err := pathID(r, "blogID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.blogs.Delete(r.Context(), caller, id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
