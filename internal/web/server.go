// Package web serves the portfolio page and its HTMX fragments.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/davidfer1112/portfolio/internal/analytics"
	"github.com/davidfer1112/portfolio/internal/config"
	"github.com/davidfer1112/portfolio/internal/contact"
	"github.com/davidfer1112/portfolio/internal/logging"
	"github.com/davidfer1112/portfolio/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Deps are the collaborators of the server.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Sessions *view.Sessions
	Composer *view.Composer
	Mailer   contact.Mailer
	Stats    *analytics.Store
	Tracker  *analytics.Tracker
}

// Server owns the gin engine and the state its handlers share.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	sessions *view.Sessions
	composer *view.Composer
	mailer   contact.Mailer
	stats    *analytics.Store
	tracker  *analytics.Tracker
	assets   fs.FS
	links    map[string]string

	adminToken string
	engine     *gin.Engine
}

// New builds the server and registers every route.
func New(d Deps) (*Server, error) {
	assets, err := Assets(d.Config.Assets.Dir)
	if err != nil {
		return nil, err
	}
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      d.Config,
		log:      d.Log,
		sessions: d.Sessions,
		composer: d.Composer,
		mailer:   d.Mailer,
		stats:    d.Stats,
		tracker:  d.Tracker,
		assets:   assets,
		links: map[string]string{
			"github":   d.Config.Links.GitHub,
			"linkedin": d.Config.Links.LinkedIn,
			"mail":     "mailto:" + d.Config.Links.Email,
		},
		adminToken: analytics.RandomToken(),
	}

	r := gin.New()
	r.Use(logging.Recovery(s.log), logging.Middleware(s.log))
	if s.tracker != nil {
		s.tracker.LangOf = func(c *gin.Context) string { return c.GetString(langKey) }
		r.Use(s.tracker.Middleware())
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(assets))

	s.routes(r)
	s.adminRoutes(r)
	s.engine = r

	if gin.Mode() == gin.DebugMode {
		s.log.Debug("admin token (dev only)", zap.String("token", s.adminToken))
	}
	return s, nil
}

// Engine returns the configured gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	r.POST("/lang", s.handleLanguage)
	r.POST("/experience/select", s.handleSelectExperience)
	r.GET("/nav/:anchor", s.handleNavigate)

	r.GET("/cv", s.handleCV)
	r.GET("/links/:name", s.handleLink)

	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Assets returns the static asset tree: dir when set, otherwise the
// embedded copy.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("assets dir: %w", err)
		}
		return os.DirFS(dir), nil
	}
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded assets: %w", err)
	}
	return sub, nil
}

var funcs = template.FuncMap{
	"ms":  func(d time.Duration) int64 { return d.Milliseconds() },
	"f2":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"odd": func(i int) bool { return i%2 == 1 },
}
