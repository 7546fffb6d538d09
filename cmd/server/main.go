package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	urlkit "github.com/goliatone/go-urlkit"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/server"
)

func main() {
	cfg := configFromEnv()

	module, err := portfolio.New(cfg)
	if err != nil {
		os.Stderr.WriteString("portfolio: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := module.Logger("portfolio.cmd")

	addr := cfg.Server.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(module).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server.listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server.failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("server.shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server.forced_shutdown", "error", err)
	}
	log.Info("server.exited")
}

func configFromEnv() portfolio.Config {
	cfg := portfolio.DefaultConfig()

	if dir := os.Getenv("CONTENT_DIR"); dir != "" {
		cfg.Content.Dir = dir
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.Mail.Host = host
	}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		cfg.Mail.Port = port
	}
	cfg.Mail.User = os.Getenv("EMAIL_USER")
	cfg.Mail.Pass = os.Getenv("EMAIL_PASS")
	cfg.Mail.To = os.Getenv("CONTACT_TO")

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}

	if base := strings.TrimRight(os.Getenv("BASE_URL"), "/"); base != "" {
		cfg.Routes = &urlkit.Config{
			Groups: []urlkit.GroupConfig{
				{
					Name:    cfg.Links.Group,
					BaseURL: base,
					Paths: map[string]string{
						cfg.Links.PostRoute: "/blog/:" + cfg.Links.SlugParam,
						cfg.Links.ListRoute: "/blog",
					},
				},
			},
		}
	}

	return cfg
}
