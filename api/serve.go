package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rogerio-castellano/inventario-api/docs"
	"github.com/rogerio-castellano/inventario-api/internal/alerts"
	"github.com/rogerio-castellano/inventario-api/internal/auth"
	"github.com/rogerio-castellano/inventario-api/internal/config"
	"github.com/rogerio-castellano/inventario-api/internal/db"
	api "github.com/rogerio-castellano/inventario-api/internal/http"
	"github.com/rogerio-castellano/inventario-api/internal/http/ban"
	"github.com/rogerio-castellano/inventario-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventario-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventario-api/internal/redissvc"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
	"github.com/rogerio-castellano/inventario-api/internal/settings"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Minute
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

type stores struct {
	products repo.ProductRepository
	contacts repo.ContactRepository
	config   repo.ConfigurationRepository
	users    repo.UserRepository
}

func openStores(ctx context.Context, cfg *config.Config) (stores, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		return stores{
			products: repo.NewInMemoryProductRepository(),
			contacts: repo.NewInMemoryContactRepository(),
			config:   repo.NewInMemoryConfigurationRepository(),
			users:    repo.NewInMemoryUserRepository(),
		}, func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DBName)
	if err != nil {
		return stores{}, nil, err
	}
	if migrateOnStart {
		if err := db.MigrateUp(database); err != nil {
			_ = database.Close()
			return stores{}, nil, err
		}
		log.Info().Msg("migrations applied")
	}
	return postgresStores(database), func() { _ = database.Close() }, nil
}

func postgresStores(database *sql.DB) stores {
	return stores{
		products: repo.NewPostgresProductRepository(database),
		contacts: repo.NewPostgresContactRepository(database),
		config:   repo.NewPostgresConfigurationRepository(database),
		users:    repo.NewPostgresUserRepository(database),
	}
}

func openBanStore(ctx context.Context, cfg *config.Config) (ban.Store, func(), error) {
	policy := ban.Policy{MaxStrikes: cfg.LoginMaxStrikes, BanDuration: cfg.LoginBanDuration}
	if cfg.RedisURL == "" {
		store := ban.NewMemoryStore(policy)
		go ban.StartPurgeLoop(ctx, store, cleanupInterval)
		return store, func() {}, nil
	}

	rdb, err := redissvc.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return ban.NewRedisStore(rdb, policy), func() { _ = rdb.Close() }, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	st, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	bans, closeBans, err := openBanStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBans()

	if !cfg.IsProduction() && cfg.JWTSecret == auth.InsecureDefaultSecret {
		log.Warn().Msg("JWT_SECRET is the insecure development placeholder")
	}
	authService := auth.NewAuthService(
		st.users,
		auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		auth.NewPasswords(cfg.BcryptCost),
	)

	h := handlers.New(handlers.Deps{
		Products: st.products,
		Contacts: st.contacts,
		Settings: settings.NewService(st.config),
		Alerts:   alerts.NewService(st.products, st.config, alerts.WithLocation(loc)),
		Auth:     authService,
		Bans:     bans,
	})

	visitors := rl.NewVisitors(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop(ctx, visitors, cleanupInterval)

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(h, api.Options{
			AuthConfiguracion: cfg.AuthConfiguracion,
			AuthAlertas:       cfg.AuthAlertas,
			CORSOrigins:       cfg.AllowedOrigins(),
			Swagger:           !cfg.IsProduction(),
			Limiter:           visitors,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
