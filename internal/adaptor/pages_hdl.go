package adaptor

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PagesHandler serves the rendered HTML pages. These are static
// collaborators around the JSON API.
type PagesHandler struct {
	templates *template.Template
	log       *zap.Logger
}

func NewPagesHandler(log *zap.Logger) *PagesHandler {
	templates := template.Must(template.ParseFS(templatesFS, "templates/*.html"))

	return &PagesHandler{
		templates: templates,
		log:       log,
	}
}

func (h *PagesHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("Failed to render page", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", nil)
}

func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", nil)
}

func (h *PagesHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.render(w, "signup.html", nil)
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html", nil)
}

func (h *PagesHandler) LearnMore(w http.ResponseWriter, r *http.Request) {
	h.render(w, "learnmore.html", nil)
}

func (h *PagesHandler) Menu(w http.ResponseWriter, r *http.Request) {
	h.render(w, "menu.html", map[string]any{
		"ShopID": chi.URLParam(r, "shop_id"),
	})
}

func (h *PagesHandler) UserLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, "user.html", nil)
}

func (h *PagesHandler) ManagerLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, "manager.html", nil)
}

func (h *PagesHandler) AdminLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin.html", nil)
}
