// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"weblog/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	posts    *app.PostService
	renderer *Renderer
	oidc     OIDCConfig
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, posts *app.PostService, oidc OIDCConfig) *Server {
	return &Server{
		auth:     auth,
		posts:    posts,
		renderer: NewRenderer(),
		oidc:     oidc,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/auth/register", s.handleRegister)
	mux.HandleFunc("/auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/logout", s.handleLogout)
	mux.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	mux.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("/create", s.handleCreate)
	mux.HandleFunc("/{id}/update", s.handleUpdate)
	mux.HandleFunc("POST /{id}/delete", s.handleDelete)

	return s.loggingMiddleware(s.identityMiddleware(mux))
}
