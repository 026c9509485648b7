package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// newMessageRepository selects the message store once at startup.
// A configured but unreachable database falls back to the in-memory store so
// the contact form keeps working; the trade-off is losing those messages on
// restart. No re-selection happens after boot.
func newMessageRepository(ctx context.Context, databaseURL string) repository.MessageRepository {
	if databaseURL == "" {
		slog.Info("no database configured, using in-memory message store")
		return repository.NewMemMessageRepository()
	}

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		slog.Error("database connection failed, falling back to in-memory message store", "error", err)
		return repository.NewMemMessageRepository()
	}
	slog.Info("connected to database")
	return repository.NewPgMessageRepository(pool)
}

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config load failed", "error", err)
	}

	messageRepo := newMessageRepository(context.Background(), cfg.DatabaseURL)
	sessionRepo := repository.NewMemSessionRepository()

	messageService := service.NewMessageService(messageRepo)
	sessionService := service.NewSessionService(sessionRepo)
	authService := service.NewAuthService(cfg.AdminPassword)

	sessionSecret := auth.SessionSecretBytes(cfg.SessionSecret)

	h := handler.New(messageRepo, cfg.FrontendURL)
	messageHandler := handler.NewMessageHandler(messageService)
	authHandler := handler.NewAuthHandler(authService, sessionService, handler.AuthConfig{
		SessionSecret: cfg.SessionSecret,
		SecureCookies: cfg.Production(),
	})
	cvHandler := handler.NewCVHandler(cfg.PublicDir)

	requireAuth := auth.RequireAuth(sessionService, sessionSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/check", authHandler.Check)
	mux.HandleFunc("POST /api/messages", messageHandler.Submit)
	mux.HandleFunc("GET /api/cv/download", cvHandler.Download)

	// 認証必要エンドポイント
	mux.Handle("GET /api/messages", requireAuth(http.HandlerFunc(messageHandler.List)))
	mux.Handle("DELETE /api/messages/{id}", requireAuth(http.HandlerFunc(messageHandler.Delete)))

	// 静的ファイル（フロントエンドのアセット、RESUME.pdf など）
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.PublicDir)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
