package main

import (
	"flag"
	"net/http"
	"time"

	"cleverpad/internal/api"
	"cleverpad/internal/auth"
	"cleverpad/internal/config"
	"cleverpad/internal/mcp"
	"cleverpad/internal/middleware"
	"cleverpad/internal/notes"
	"cleverpad/internal/store/sqlstore"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Load configuration; this fails hard when the signing secret is unset
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize store
	st, err := sqlstore.New(cfg.Database.Driver, cfg.Database.Conn)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer st.Close()

	tokens, err := auth.NewTokenService(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	if err != nil {
		logger.Fatal("Failed to initialize token service", zap.Error(err))
	}
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	authSvc := auth.NewService(st, hasher, tokens, logger)
	notesSvc := notes.NewService(st, logger)
	resolver := auth.NewResolver(tokens, st)

	handlers := api.NewHandlers(authSvc, notesSvc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handlers.RootHandler)
	mux.HandleFunc("/api/auth/signup", handlers.SignupHandler)
	mux.HandleFunc("/api/auth/login", handlers.LoginHandler)
	mux.HandleFunc("/api/auth/guest", handlers.GuestHandler)
	mux.HandleFunc("/api/auth/me", handlers.MeHandler)
	mux.HandleFunc("/api/notes", handlers.NotesHandler)
	mux.Handle("/mcp", mcp.NewServer(notesSvc))

	// Apply middleware: Logging -> CORS -> Identity
	handler := middleware.Logging(logger, middleware.CORS(middleware.Identity(resolver, auth.Mode(cfg.Auth.Mode), mux)))

	logger.Info("Server started", zap.String("addr", cfg.Server.Addr), zap.String("mode", cfg.Auth.Mode))
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
