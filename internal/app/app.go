// Package app wires configuration, storage, the AI collaborator and the
// HTTP server into one lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eladmint/whatsapp-analyzer/internal/retention"
	"github.com/eladmint/whatsapp-analyzer/pkg/ai"
	"github.com/eladmint/whatsapp-analyzer/pkg/api"
	"github.com/eladmint/whatsapp-analyzer/pkg/auth"
	"github.com/eladmint/whatsapp-analyzer/pkg/banner"
	"github.com/eladmint/whatsapp-analyzer/pkg/config"
	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
	"github.com/eladmint/whatsapp-analyzer/pkg/store"
)

// App encapsulates the server components and lifecycle.
type App struct {
	cfg    *config.Config
	addr   string
	dbPath string
	st     *store.Store
	aicli  *ai.Client
	srv    *http.Server

	version string
}

// New validates the effective config, opens the store and constructs the
// collaborators. It does not start serving; call Run for that.
func New(cfg *config.Config, addr, dbPath, version string) (*App, error) {
	if err := validateConfig(cfg, dbPath); err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", dbPath, err)
	}

	var aicli *ai.Client
	if cfg.AI.Enabled {
		aicli, err = ai.New(ai.Config{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
			Timeout: cfg.AITimeout(),
		})
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("ai collaborator: %w", err)
		}
	}

	return &App{cfg: cfg, addr: addr, dbPath: dbPath, st: st, aicli: aicli, version: version}, nil
}

// Store exposes the opened store, mainly for tests.
func (a *App) Store() *store.Store { return a.st }

// Run starts the retention scheduler and HTTP server and blocks until ctx is
// canceled or a fatal server error occurs. Shutdown is graceful and closes
// the store last.
func (a *App) Run(ctx context.Context) error {
	router := api.NewRouter(api.Deps{
		Store:    a.st,
		AI:       a.aicli,
		Verifier: auth.NewVerifier(a.cfg.Security.SigningKeys),
		Limiter:  auth.NewLimiterPool(a.cfg.Security.RateLimit.RPS, a.cfg.Security.RateLimit.Burst),
	})

	stopRetention, err := retention.Start(ctx, a.cfg, a.st)
	if err != nil {
		return err
	}
	defer stopRetention()

	banner.Print(a.addr, a.dbPath, a.version, a.cfg.AI.Enabled)

	a.srv = &http.Server{Addr: a.addr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http_listening", "addr", a.addr, "version", a.version)
		if serr := a.srv.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
		}
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shutCtx)
	case err := <-errCh:
		_ = a.st.Close()
		return err
	}
	return a.st.Close()
}
