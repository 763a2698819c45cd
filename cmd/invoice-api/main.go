package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/yourorg/invoiceapp/apps/api/internal/invoicing"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := invoicing.LoadConfig()

	var store invoicing.Store
	if cfg.DatabaseURL != "" {
		pg, err := invoicing.NewPostgresStore(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		store = invoicing.NewInMemoryStore()
	}

	var mailer invoicing.Mailer
	if cfg.SendGridAPIKey != "" && cfg.SenderEmail != "" {
		mailer = invoicing.NewSendGridMailer(cfg)
	} else {
		logger.Warn("SENDGRID_API_KEY or SENDER_EMAIL not set, email delivery disabled")
	}

	svc := invoicing.NewService(cfg, store, mailer, invoicing.NewMemoryAuditRecorder(), logger)

	logger.Info("invoice api listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, svc.Routes()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
