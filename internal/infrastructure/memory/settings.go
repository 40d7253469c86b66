package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.ConfigStore = (*SettingsStore)(nil)

// SettingsStore umbrales en memoria; vacío hasta el primer SaveThresholds.
type SettingsStore struct {
	mu    sync.RWMutex
	t     entity.Thresholds
	found bool
	err   error
}

// NewSettingsStore crea un store vacío.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// FailWith hace que todas las operaciones devuelvan err (nil restablece).
func (s *SettingsStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *SettingsStore) GetThresholds(_ context.Context) (entity.Thresholds, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return entity.Thresholds{}, false, s.err
	}
	return s.t, s.found, nil
}

func (s *SettingsStore) SaveThresholds(_ context.Context, t entity.Thresholds) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.t, s.found = t, true
	return nil
}
