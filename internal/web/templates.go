package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/auth"
	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
	webembed "github.com/smkhize/erfsite/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
	log       *zap.Logger
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusName": func(status string) string {
			switch status {
			case model.StandAvailable:
				return "Available"
			case model.StandReserved:
				return "Reserved"
			case model.StandSold:
				return "Sold"
			default:
				return status
			}
		},
		"formatDate": func(t time.Time) string {
			return t.Format("2 January 2006")
		},
		"formatPrice": func(price string) string {
			if price == "" {
				return "Price on request"
			}
			return "R " + price
		},
		"newlines": func(s string) template.HTML {
			escaped := template.HTMLEscapeString(s)
			return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates(logger *zap.Logger) (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"home.html",
		"about.html",
		"stands.html",
		"stand_detail.html",
		"blog.html",
		"blog_post.html",
		"gallery.html",
		"contact.html",
		"downloads.html",
		"login.html",
		"admin_dashboard.html",
		"admin_stands.html",
		"admin_blog.html",
		"admin_gallery.html",
		"admin_messages.html",
		"admin_downloads.html",
	}

	ts := &Templates{
		templates: make(map[string]*template.Template),
		log:       logger,
	}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		ts.log.Error("failed to render template", zap.String("template", name), zap.Error(err))
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title string
	User  *auth.Claims
	Error string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Store     store.Store
	Templates *Templates
	JWTSecret string
	Log       *zap.Logger
}
