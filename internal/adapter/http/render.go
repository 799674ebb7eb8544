package adapthttp

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"weblog/internal/domain"
)

//go:embed templates
var templateFS embed.FS

// pages maps view names to their template file under templates/.
var pages = map[string]string{
	"register": "templates/auth/register.html",
	"login":    "templates/auth/login.html",
	"index":    "templates/blog/index.html",
	"create":   "templates/blog/create.html",
	"update":   "templates/blog/update.html",
}

// pageData is what every view receives.
type pageData struct {
	User       *domain.User
	Flash      string
	SSOEnabled bool
	Post       *domain.Post
	Posts      []domain.Post
}

// Renderer renders named views from the embedded template set.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all views against the shared base layout.
func NewRenderer() *Renderer {
	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		templates[name] = template.Must(
			template.ParseFS(templateFS, "templates/base.html", file))
	}
	return &Renderer{templates: templates}
}

// Render writes the named view. Rendering failures after headers are sent
// can only be logged.
func (rd *Renderer) Render(w http.ResponseWriter, name string, data pageData) {
	tmpl, ok := rd.templates[name]
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

// render is a handler-side shorthand that fills in the request-scoped fields.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name, flash string, data pageData) {
	data.User = currentUser(r)
	data.Flash = flash
	data.SSOEnabled = s.oidc.Enabled
	s.renderer.Render(w, name, data)
}
