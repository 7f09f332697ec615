// Package store persists two opaque text slots per authenticated identity:
// the raw chat export and the serialized analysis. It is an explicit client
// object constructed once per process (or per test), never a package-level
// singleton.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
)

// Slot names addressable through the storage API.
const (
	SlotChat     = "chat"
	SlotAnalysis = "analysis"
)

// ErrNotOpened is returned by every operation invoked before Open succeeded
// or after Close. Callers must treat it as an ordering bug, not retry.
var ErrNotOpened = errors.New("store not opened")

// ErrUnknownSlot is returned for slot names other than "chat" or "analysis".
var ErrUnknownSlot = errors.New("unknown storage slot")

// Store wraps a Pebble database holding per-identity slot values.
type Store struct {
	db   *pebble.DB
	path string
}

// Open opens (or creates) a Pebble database at the given path.
func Open(path string) (*Store, error) {
	logger.Info("opening_pebble_db", "path", path)
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Error("pebble_open_failed", "path", path, "error", err)
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database. The store is unusable afterwards.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	logger.Info("pebble_closed", "path", s.path)
	return err
}

// Ready reports whether the store is opened and usable.
func (s *Store) Ready() bool { return s != nil && s.db != nil }

func slotKey(identity, slot string) []byte {
	return []byte(fmt.Sprintf("user:%s:%s", identity, slot))
}

func savedAtKey(identity, slot string) []byte {
	return []byte(fmt.Sprintf("user:%s:%s:ts", identity, slot))
}

func validSlot(slot string) bool { return slot == SlotChat || slot == SlotAnalysis }

// Save stores an opaque text value under the identity's slot, overwriting
// any previous value. The write is synced before Save returns.
func (s *Store) Save(identity, slot, text string) error {
	if !s.Ready() {
		return ErrNotOpened
	}
	if !validSlot(slot) {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	if err := s.db.Set(slotKey(identity, slot), []byte(text), pebble.Sync); err != nil {
		logger.Error("slot_save_failed", "slot", slot, "error", err)
		return err
	}
	savedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if err := s.db.Set(savedAtKey(identity, slot), []byte(savedAt), pebble.Sync); err != nil {
		return err
	}
	logger.Info("slot_saved", "slot", slot, "bytes", len(text))
	return nil
}

// Get returns the identity's slot value. The second return value reports
// whether a value was present; absence is not an error.
func (s *Store) Get(identity, slot string) (string, bool, error) {
	if !s.Ready() {
		return "", false, ErrNotOpened
	}
	if !validSlot(slot) {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	v, closer, err := s.db.Get(slotKey(identity, slot))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	out := string(v)
	if cerr := closer.Close(); cerr != nil {
		return "", false, cerr
	}
	return out, true, nil
}

// Clear removes both slots (and their timestamps) for the identity.
func (s *Store) Clear(identity string) error {
	if !s.Ready() {
		return ErrNotOpened
	}
	batch := s.db.NewBatch()
	for _, slot := range []string{SlotChat, SlotAnalysis} {
		if err := batch.Delete(slotKey(identity, slot), nil); err != nil {
			return err
		}
		if err := batch.Delete(savedAtKey(identity, slot), nil); err != nil {
			return err
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		logger.Error("slot_clear_failed", "identity_len", len(identity), "error", err)
		return err
	}
	logger.Info("slots_cleared")
	return nil
}

// SweepOlderThan deletes every slot whose saved-at timestamp predates the
// cutoff. Used by the retention scheduler; returns the number of slot values
// removed.
func (s *Store) SweepOlderThan(cutoff time.Time) (int, error) {
	if !s.Ready() {
		return 0, ErrNotOpened
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("user:"),
		UpperBound: []byte("user;"), // ';' is the byte after ':'
	})
	if err != nil {
		return 0, err
	}
	var stale [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		key := string(iter.Key())
		if !strings.HasSuffix(key, ":ts") {
			continue
		}
		savedAt, perr := time.Parse(time.RFC3339Nano, string(iter.Value()))
		if perr != nil || !savedAt.Before(cutoff) {
			continue
		}
		stale = append(stale, []byte(strings.TrimSuffix(key, ":ts")), []byte(key))
	}
	if err := iter.Close(); err != nil {
		return 0, err
	}

	removed := 0
	batch := s.db.NewBatch()
	for i, key := range stale {
		if err := batch.Delete(key, nil); err != nil {
			return removed, err
		}
		if i%2 == 0 {
			removed++
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.Info("retention_sweep_removed", "slots", removed, "cutoff", cutoff)
	}
	return removed, nil
}
