package retention

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/config"
	"github.com/eladmint/whatsapp-analyzer/pkg/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStartDisabled(t *testing.T) {
	var cfg config.Config
	stop, err := Start(context.Background(), &cfg, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	stop()
}

func TestStartInvalidPeriod(t *testing.T) {
	var cfg config.Config
	cfg.Retention.Enabled = true
	cfg.Retention.Period = "fortnight"
	if _, err := Start(context.Background(), &cfg, openTestStore(t)); err == nil {
		t.Fatalf("expected error for unparsable period")
	}
}

func TestStartInvalidCron(t *testing.T) {
	var cfg config.Config
	cfg.Retention.Enabled = true
	cfg.Retention.Period = "720h"
	cfg.Retention.Cron = "every other tuesday"
	if _, err := Start(context.Background(), &cfg, openTestStore(t)); err == nil {
		t.Fatalf("expected error for invalid cron")
	}
}

func TestRunOnceSweeps(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save("alice", store.SlotChat, "stale"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// a long period keeps fresh data
	RunOnce(s, 24*time.Hour)
	if _, ok, _ := s.Get("alice", store.SlotChat); !ok {
		t.Fatalf("fresh value swept")
	}

	// a negative period puts the cutoff in the future, sweeping everything
	RunOnce(s, -time.Hour)
	if _, ok, _ := s.Get("alice", store.SlotChat); ok {
		t.Fatalf("stale value survived sweep")
	}
}
