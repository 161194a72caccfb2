package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/davidfer1112/portfolio/internal/analytics"
	"github.com/davidfer1112/portfolio/internal/config"
	"github.com/davidfer1112/portfolio/internal/contact"
	"github.com/davidfer1112/portfolio/internal/content"
	"github.com/davidfer1112/portfolio/internal/decor"
	"github.com/davidfer1112/portfolio/internal/logging"
	"github.com/davidfer1112/portfolio/internal/view"
	"github.com/davidfer1112/portfolio/internal/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.App.GinMode)

	log := logging.New(cfg.App.LogFile, cfg.App.IsProd())
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	stats, err := analytics.Open(ctx, cfg.App.DBPath)
	if err != nil {
		return err
	}
	defer stats.Close()

	go func() {
		n, err := stats.Cleanup(ctx, cfg.App.VisitorRetention)
		if err != nil {
			log.Warn("error cleaning up old visitor data", zap.Error(err))
			return
		}
		if n > 0 {
			log.Info("privacy cleanup", zap.Int64("removed", n))
		}
	}()

	if cfg.Admin.UsesDefaults() {
		log.Warn("using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	if !cfg.SMTP.Configured() {
		log.Warn("SMTP credentials not configured, contact form will report failures")
	}
	mailer := contact.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.To)

	srv, err := web.New(web.Deps{
		Config:   cfg,
		Log:      log,
		Sessions: view.NewSessions(table, cfg.App.SessionTTL),
		Composer: &view.Composer{
			Links: view.Links{
				GitHub:   "/links/github",
				LinkedIn: "/links/linkedin",
				Mail:     "/links/mail",
				CV:       "/cv",
			},
			Decor: decor.NewLayer(cfg.App.DecorSeed),
		},
		Mailer:  mailer,
		Stats:   stats,
		Tracker: analytics.NewTracker(stats, log),
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: srv.Engine(),
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", httpServer.Addr), zap.String("lang", cfg.App.DefaultLang))
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
