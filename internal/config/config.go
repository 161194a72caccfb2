// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/davidfer1112/portfolio/internal/locale"
)

type Config struct {
	App    AppConfig
	SMTP   SMTPConfig
	Admin  AdminConfig
	Links  LinksConfig
	Assets AssetsConfig
}

type AppConfig struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	GinMode          string        `env:"GIN_MODE" envDefault:"debug"`
	LogFile          string        `env:"LOG_FILE" envDefault:"logs/portfolio.log"`
	DBPath           string        `env:"DB_PATH" envDefault:"portfolio.db"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	DefaultLang      string        `env:"DEFAULT_LANG" envDefault:"es"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DecorSeed        uint64        `env:"DECOR_SEED" envDefault:"1112"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	To       string `env:"TO_EMAIL" envDefault:"davidfernando1112@gmail.com"`
}

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

// UsesDefaults reports whether either admin credential is still the
// built-in default.
func (a AdminConfig) UsesDefaults() bool {
	return a.Username == defaultAdminUsername || a.Password == defaultAdminPassword
}

type LinksConfig struct {
	GitHub   string `env:"GITHUB_URL" envDefault:"https://github.com/davidfer1112"`
	LinkedIn string `env:"LINKEDIN_URL" envDefault:"https://www.linkedin.com/in/david-fernando-pérez-medina-287451268"`
	Email    string `env:"CONTACT_EMAIL" envDefault:"davidfernando1112@gmail.com"`
}

type AssetsConfig struct {
	// Dir overrides the embedded static assets when set.
	Dir        string `env:"ASSETS_DIR"`
	CVFile     string `env:"CV_FILE" envDefault:"cv-david-fernando.pdf"`
	CVDownload string `env:"CV_DOWNLOAD_NAME" envDefault:"CV-David-Fernando-Perez-Medina.pdf"`
}

// Load parses the environment into a Config. .env files are picked up by
// the godotenv autoload import in main.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := locale.Parse(cfg.App.DefaultLang); err != nil {
		return nil, fmt.Errorf("DEFAULT_LANG: %w", err)
	}
	return &cfg, nil
}

// Language returns DefaultLang as a Language. Load has already validated it.
func (c AppConfig) Language() locale.Language {
	l, err := locale.Parse(c.DefaultLang)
	if err != nil {
		return locale.Default
	}
	return l
}

// IsProd reports whether gin runs in release mode.
func (c AppConfig) IsProd() bool {
	return c.GinMode == "release"
}

// Configured reports whether credentials for sending mail are present.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Password != ""
}
