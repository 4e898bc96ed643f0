package services

import (
	"context"
	"sync"
	"time"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/observability"
)

// SnapshotStore holds an in-memory copy of the provider dataset for the
// query engine. Queries evaluate against a stable snapshot rather than
// hitting the database per predicate; the snapshot refreshes lazily once
// its TTL expires, or eagerly via Reload.
type SnapshotStore struct {
	repo    repositories.ProviderRepository
	ttl     time.Duration
	metrics *observability.Metrics

	mu       sync.RWMutex
	snapshot []*entities.Provider
	loadedAt time.Time
}

// NewSnapshotStore creates a snapshot store refreshing at the given TTL.
// A zero or negative TTL means the snapshot never expires on its own.
func NewSnapshotStore(repo repositories.ProviderRepository, ttl time.Duration, metrics *observability.Metrics) *SnapshotStore {
	return &SnapshotStore{
		repo:    repo,
		ttl:     ttl,
		metrics: metrics,
	}
}

// Get returns the current snapshot, loading or refreshing it first when
// needed. The returned slice must be treated as read-only.
func (s *SnapshotStore) Get(ctx context.Context) ([]*entities.Provider, error) {
	s.mu.RLock()
	if s.snapshot != nil && !s.expired() {
		snapshot := s.snapshot
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	return s.Reload(ctx)
}

// Reload fetches a fresh snapshot from the repository, replacing the
// cached one. Concurrent readers keep the old snapshot until the swap.
func (s *SnapshotStore) Reload(ctx context.Context) ([]*entities.Provider, error) {
	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		// Serve the stale snapshot if we have one rather than failing reads.
		s.mu.RLock()
		stale := s.snapshot
		s.mu.RUnlock()
		if stale != nil {
			observability.GetLogger().Warn().Err(err).Msg("snapshot reload failed, serving stale snapshot")
			return stale, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.loadedAt = time.Now()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SnapshotReloads.Add(ctx, 1)
	}
	observability.GetLogger().Debug().Int("providers", len(snapshot)).Msg("provider snapshot reloaded")

	return snapshot, nil
}

// Size returns the number of providers in the cached snapshot.
func (s *SnapshotStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot)
}

// LoadedAt returns when the cached snapshot was last refreshed.
func (s *SnapshotStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *SnapshotStore) expired() bool {
	return s.ttl > 0 && time.Since(s.loadedAt) > s.ttl
}
