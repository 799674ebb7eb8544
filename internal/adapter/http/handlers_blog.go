package adapthttp

import (
	"errors"
	"net/http"

	"weblog/internal/app"
	"weblog/internal/domain"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "index", "", pageData{Posts: posts})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if err := app.RequireLogin(currentUser(r)); err != nil {
			s.postError(w, r, err)
			return
		}
		s.render(w, r, "create", "", pageData{})

	case http.MethodPost:
		_, err := s.posts.Create(r.Context(), currentUser(r), r.FormValue("title"), r.FormValue("body"))
		if err != nil {
			s.postError(w, r, err)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		user := currentUser(r)
		if err := app.RequireLogin(user); err != nil {
			s.postError(w, r, err)
			return
		}
		post, err := s.posts.Get(r.Context(), id)
		if err != nil {
			s.postError(w, r, err)
			return
		}
		if err := app.RequireOwnership(user, post); err != nil {
			s.postError(w, r, err)
			return
		}
		s.render(w, r, "update", "", pageData{Post: post})

	case http.MethodPost:
		err := s.posts.Update(r.Context(), currentUser(r), id, r.FormValue("title"), r.FormValue("body"))
		if err != nil {
			s.postError(w, r, err)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := s.posts.Delete(r.Context(), currentUser(r), id); err != nil {
		s.postError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postError maps post use-case failures onto their transport outcome.
func (s *Server) postError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
	case errors.Is(err, domain.ErrPostNotFound):
		http.NotFound(w, r)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
