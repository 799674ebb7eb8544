package adapthttp

import (
	"errors"
	"fmt"
	"net/http"

	"weblog/internal/domain"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "register", "", pageData{})

	case http.MethodPost:
		username := r.FormValue("username")
		password := r.FormValue("password")

		err := s.auth.Register(r.Context(), username, password)
		if err == nil {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}

		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			s.render(w, r, "register", verr.Message, pageData{})
		case errors.Is(err, domain.ErrDuplicateUsername):
			s.render(w, r, "register", fmt.Sprintf("User %s is already registered.", username), pageData{})
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "login", "", pageData{})

	case http.MethodPost:
		username := r.FormValue("username")
		password := r.FormValue("password")

		token, err := s.auth.Login(r.Context(), username, password)
		switch {
		case err == nil:
			setSessionCookie(w, token)
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, domain.ErrIncorrectUsername):
			s.render(w, r, "login", "Incorrect username.", pageData{})
		case errors.Is(err, domain.ErrIncorrectPassword):
			s.render(w, r, "login", "Incorrect password.", pageData{})
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		_ = s.auth.Logout(r.Context(), cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
