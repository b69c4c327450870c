package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"dealerd/pkg/types"
)

// Store holds the current catalog snapshot and its on-disk override. It is
// constructed explicitly with its snapshot path and seed data; there are no
// package-level singletons. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	path   string
	seed   []types.VehicleModel
	models []types.VehicleModel
}

// NewStore builds a Store for the given snapshot path and seed lineup. An
// empty path disables persistence (in-memory only). Call Load before serving.
func NewStore(path string, seed []types.VehicleModel) *Store {
	return &Store{
		path:   path,
		seed:   seed,
		models: cloneModels(seed),
	}
}

// Load installs the persisted snapshot if one exists and parses, else keeps
// the seed. A missing file is not an error. An unparseable file returns a
// bad-snapshot error and leaves the seed in place.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	p, err := expandHome(s.path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return ErrPersist("read", err)
	}
	models, err := Parse(b)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.models = models
	s.mu.Unlock()
	return nil
}

// Parse decodes a snapshot document: a JSON array of model objects. Per-field
// validation is deliberately absent; structurally odd records pass through and
// degrade at render time.
func Parse(b []byte) ([]types.VehicleModel, error) {
	var models []types.VehicleModel
	if err := json.Unmarshal(b, &models); err != nil {
		return nil, ErrBadSnapshot(err)
	}
	return models, nil
}

// Models returns a copy of the current snapshot in catalog order.
func (s *Store) Models() []types.VehicleModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneModels(s.models)
}

// Get returns the model with the given id.
func (s *Store) Get(id string) (types.VehicleModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.models {
		if m.ID == id {
			return m, nil
		}
	}
	return types.VehicleModel{}, ErrModelNotFound(id)
}

// Replace swaps the whole catalog for models, then persists the snapshot.
// On persistence failure the in-memory replacement still holds and the error
// reports it; callers choose whether to surface or downgrade that.
func (s *Store) Replace(models []types.VehicleModel) error {
	s.mu.Lock()
	s.models = cloneModels(models)
	s.mu.Unlock()
	return s.persist(models)
}

// Reset reverts to the seed lineup and discards the persisted snapshot.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.models = cloneModels(s.seed)
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	p, err := expandHome(s.path)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return ErrPersist("remove", err)
	}
	return nil
}

// Seed returns a copy of the built-in default lineup.
func (s *Store) Seed() []types.VehicleModel { return cloneModels(s.seed) }

func (s *Store) persist(models []types.VehicleModel) error {
	if s.path == "" {
		return nil
	}
	p, err := expandHome(s.path)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(models, "", "  ")
	if err != nil {
		return ErrPersist("encode", err)
	}
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ErrPersist("mkdir", err)
		}
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return ErrPersist("write", err)
	}
	return nil
}

func cloneModels(in []types.VehicleModel) []types.VehicleModel {
	out := make([]types.VehicleModel, len(in))
	copy(out, in)
	return out
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
