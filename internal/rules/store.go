package rules

import (
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/ironvale/guild-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=rulesmock github.com/ironvale/guild-api/internal/rules Provider

// Provider hands out immutable tuning snapshots. The engine reads one
// snapshot per resolution call so a concurrent reload never splits a call
// across two table versions.
type Provider interface {
	Snapshot() *RulesConfig
}

// Store owns the current RulesConfig and supports atomic-swap reloads
type Store struct {
	path string
	cur  atomic.Pointer[RulesConfig]
}

// NewStore creates a store over an explicit config. A nil config gets the
// defaults.
func NewStore(cfg *RulesConfig) *Store {
	if cfg == nil {
		cfg = Defaults()
	}
	s := &Store{}
	s.cur.Store(cfg)
	return s
}

// NewStoreFromFile loads tuning tables from a YAML file layered over the
// defaults and remembers the path for Reload.
func NewStoreFromFile(path string) (*Store, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.cur.Store(cfg)
	return s, nil
}

// Snapshot returns the current config. Callers must treat it as read-only.
func (s *Store) Snapshot() *RulesConfig {
	return s.cur.Load()
}

// Swap atomically replaces the current config
func (s *Store) Swap(cfg *RulesConfig) {
	if cfg == nil {
		return
	}
	s.cur.Store(cfg)
}

// Reload re-reads the backing file and swaps the new tables in. In-flight
// resolution calls keep the snapshot they started with.
func (s *Store) Reload() error {
	if s.path == "" {
		return errors.FailedPrecondition("store was not created from a file")
	}
	cfg, err := loadFile(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(cfg)
	return nil
}

func loadFile(path string) (*RulesConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse rules file %s", path)
	}
	return cfg, nil
}
