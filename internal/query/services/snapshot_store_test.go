package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
)

// fakeProviderRepo is a minimal in-memory ProviderRepository for service tests.
type fakeProviderRepo struct {
	providers   []*entities.Provider
	snapshotErr error

	snapshotCalls int
}

func (f *fakeProviderRepo) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeProviderRepo) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.Provider, error) {
	return f.providers, nil
}

func (f *fakeProviderRepo) Snapshot(ctx context.Context) ([]*entities.Provider, error) {
	f.snapshotCalls++
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return f.providers, nil
}

func (f *fakeProviderRepo) ReplaceAll(ctx context.Context, providers []*entities.Provider) error {
	f.providers = providers
	return nil
}

func (f *fakeProviderRepo) DistinctSpecialties(ctx context.Context) ([]string, error) {
	return []string{"Cardiology", "Pediatrics"}, nil
}

func (f *fakeProviderRepo) DistinctLanguages(ctx context.Context) ([]string, error) {
	return []string{"English", "Spanish"}, nil
}

func (f *fakeProviderRepo) DistinctInsurances(ctx context.Context) ([]string, error) {
	return []string{"Aetna", "Medicare"}, nil
}

func sampleProviders() []*entities.Provider {
	return []*entities.Provider{
		{ID: 1, FirstName: "Maria", LastName: "Gonzalez", FullName: "Dr. Maria Gonzalez", Specialty: "Cardiology", Rating: 4.7},
		{ID: 2, FirstName: "Emily", LastName: "Chen", FullName: "Dr. Emily Chen", Specialty: "Pediatrics", Rating: 4.6},
	}
}

func TestSnapshotStore_GetLoadsOnce(t *testing.T) {
	repo := &fakeProviderRepo{providers: sampleProviders()}
	store := NewSnapshotStore(repo, time.Minute, nil)

	ctx := context.Background()

	first, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, repo.snapshotCalls)

	// A second Get within the TTL serves the cached snapshot.
	second, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.snapshotCalls)
}

func TestSnapshotStore_ReloadRefreshes(t *testing.T) {
	repo := &fakeProviderRepo{providers: sampleProviders()}
	store := NewSnapshotStore(repo, time.Minute, nil)

	ctx := context.Background()
	_, err := store.Get(ctx)
	require.NoError(t, err)

	repo.providers = append(repo.providers, &entities.Provider{ID: 3, FullName: "Dr. James Wright"})

	reloaded, err := store.Reload(ctx)
	require.NoError(t, err)
	assert.Len(t, reloaded, 3)
	assert.Equal(t, 3, store.Size())
	assert.Equal(t, 2, repo.snapshotCalls)
}

func TestSnapshotStore_ServesStaleOnReloadError(t *testing.T) {
	repo := &fakeProviderRepo{providers: sampleProviders()}
	store := NewSnapshotStore(repo, time.Minute, nil)

	ctx := context.Background()
	first, err := store.Get(ctx)
	require.NoError(t, err)

	repo.snapshotErr = errors.New("db down")

	stale, err := store.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, stale)
}

func TestSnapshotStore_FailsWhenEmptyAndUnreachable(t *testing.T) {
	repo := &fakeProviderRepo{snapshotErr: errors.New("db down")}
	store := NewSnapshotStore(repo, time.Minute, nil)

	_, err := store.Get(context.Background())
	assert.Error(t, err)
}

func TestSnapshotStore_ZeroTTLNeverExpires(t *testing.T) {
	repo := &fakeProviderRepo{providers: sampleProviders()}
	store := NewSnapshotStore(repo, 0, nil)

	ctx := context.Background()
	_, err := store.Get(ctx)
	require.NoError(t, err)
	_, err = store.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.snapshotCalls)
}
