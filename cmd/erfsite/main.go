package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"flag"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"github.com/smkhize/erfsite/internal/api"
	"github.com/smkhize/erfsite/internal/config"
	"github.com/smkhize/erfsite/internal/db"
	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
	"github.com/smkhize/erfsite/internal/web"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: erfsite <init|serve>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		cmdInit(os.Args[2:])
	case "serve":
		cmdServe()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: erfsite <init|serve>\n", os.Args[1])
		os.Exit(1)
	}
}

func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dbPath := fs.String("db", "erfsite.sqlite3", "path to SQLite database file")
	adminUser := fs.String("user", "admin", "admin username")
	fs.Parse(args)

	if _, err := os.Stat(*dbPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: database file %s already exists\n", *dbPath)
		os.Exit(1)
	}

	database, password, err := initDatabase(*dbPath, *adminUser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	database.Close()

	printInitResult(*dbPath, *adminUser, password)
}

func cmdServe() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	st, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer closeStore()

	ctx := context.Background()

	if cfg.UseMemoryStore() || cfg.SeedDemo {
		if err := store.SeedDemo(ctx, st); err != nil {
			logger.Fatal("failed to seed demo content", zap.Error(err))
		}
	}

	// The signing secret lives in the store so tokens survive restarts.
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret, err = st.JWTSecret(ctx)
		if err != nil {
			logger.Fatal("failed to load JWT secret", zap.Error(err))
		}
	}

	apiRouter := api.NewRouter(st, jwtSecret, logger)
	webRouter, err := web.NewRouter(st, jwtSecret, logger)
	if err != nil {
		logger.Fatal("failed to set up web router", zap.Error(err))
	}

	// Combine: API and media routes take priority, pages handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/media/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", cfg.ListenAddr), zap.Bool("memory_store", cfg.UseMemoryStore()))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}

	logger.Info("server stopped")
}

// setupLogger builds the zap logger for the configured environment.
func setupLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var zapCfg zap.Config
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// openStore opens the configured store backend. For SQLite the database
// is created and initialized on first run.
func openStore(cfg *config.Config, logger *zap.Logger) (store.Store, func(), error) {
	if cfg.UseMemoryStore() {
		logger.Info("using in-memory store, content is lost on restart")
		mem := store.NewMemory()

		// A memory store has no persisted admin account.
		password, err := ensureAdmin(context.Background(), mem, "admin")
		if err != nil {
			return nil, nil, err
		}
		if password != "" {
			printInitResult("(in-memory)", "admin", password)
		}
		return mem, func() {}, nil
	}

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		database, password, err := initDatabase(cfg.DBPath, "admin")
		if err != nil {
			return nil, nil, fmt.Errorf("initializing database: %w", err)
		}
		database.Close()
		printInitResult(cfg.DBPath, "admin", password)
		fmt.Println()
	}

	database, err := db.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("database ready", zap.String("path", cfg.DBPath))
	return store.NewSQLite(database), func() { database.Close() }, nil
}

// initDatabase creates a new database, runs migrations, and creates the
// admin user.
func initDatabase(path, adminUsername string) (*sql.DB, string, error) {
	database, err := db.OpenAndMigrate(path)
	if err != nil {
		os.Remove(path)
		return nil, "", err
	}

	password, err := ensureAdmin(context.Background(), store.NewSQLite(database), adminUsername)
	if err != nil {
		database.Close()
		os.Remove(path)
		return nil, "", err
	}

	return database, password, nil
}

// ensureAdmin creates the admin account if it does not exist and returns
// its generated password, or "" if the account was already present.
func ensureAdmin(ctx context.Context, st store.Store, username string) (string, error) {
	existing, err := st.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("checking admin user: %w", err)
	}
	if existing != nil {
		return "", nil
	}

	password, err := generatePassword(16)
	if err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	if _, err := st.CreateUser(ctx, username, string(hash), model.RoleAdmin); err != nil {
		return "", fmt.Errorf("creating admin user: %w", err)
	}

	return password, nil
}

// printInitResult prints the database initialization result to stdout.
func printInitResult(dbPath, username, password string) {
	fmt.Printf("Database created: %s\n", dbPath)
	fmt.Println("Schema initialized.")
	fmt.Println()
	fmt.Println("Admin account created:")
	fmt.Printf("  Username: %s\n", username)
	fmt.Printf("  Password: %s\n", password)
	fmt.Println()
	fmt.Println("Save this password — it cannot be recovered.")
	fmt.Println("The admin can change it after logging in.")
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
