package services

import (
	"context"
	"time"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/observability"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/query/engine"
)

// ProviderQueryService handles read-only provider operations: structured
// queries against the snapshot, direct lookups, and vocabulary listings.
type ProviderQueryService struct {
	store   *SnapshotStore
	repo    repositories.ProviderRepository
	metrics *observability.Metrics
}

// NewProviderQueryService creates a new provider query service
func NewProviderQueryService(store *SnapshotStore, repo repositories.ProviderRepository, metrics *observability.Metrics) *ProviderQueryService {
	return &ProviderQueryService{
		store:   store,
		repo:    repo,
		metrics: metrics,
	}
}

// Query evaluates a structured query against the current snapshot.
func (s *ProviderQueryService) Query(ctx context.Context, q entities.Query) (*entities.QueryResult, error) {
	ctx, span := observability.StartSpan(ctx, "query.evaluate")
	defer span.End()

	start := time.Now()

	snapshot, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	result, err := engine.Evaluate(snapshot, q)
	duration := time.Since(start)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Dur("duration", duration).
			Msg("query rejected")
		return nil, err
	}

	observability.RecordQueryMetric(ctx, s.metrics, string(result.Kind), result.IsNoMatch(), duration)
	observability.LoggerFromContext(ctx).Info().
		Str("kind", string(result.Kind)).
		Int("matched", result.Matched).
		Bool("no_match", result.IsNoMatch()).
		Dur("duration", duration).
		Msg("query evaluated")

	return result, nil
}

// GetByID retrieves a single provider.
func (s *ProviderQueryService) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves providers matching the given filter.
func (s *ProviderQueryService) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.Provider, error) {
	return s.repo.List(ctx, filter)
}

// Vocabulary lists the distinct values callers can filter on.
type Vocabulary struct {
	Specialties []string `json:"specialties"`
	Languages   []string `json:"languages"`
	Insurances  []string `json:"insurances"`
}

// GetVocabulary returns the distinct specialties, languages and insurances
// present in the dataset.
func (s *ProviderQueryService) GetVocabulary(ctx context.Context) (*Vocabulary, error) {
	specialties, err := s.repo.DistinctSpecialties(ctx)
	if err != nil {
		return nil, err
	}
	languages, err := s.repo.DistinctLanguages(ctx)
	if err != nil {
		return nil, err
	}
	insurances, err := s.repo.DistinctInsurances(ctx)
	if err != nil {
		return nil, err
	}

	return &Vocabulary{
		Specialties: specialties,
		Languages:   languages,
		Insurances:  insurances,
	}, nil
}

// ReloadSnapshot forces a snapshot refresh and reports its new size.
func (s *ProviderQueryService) ReloadSnapshot(ctx context.Context) (int, error) {
	snapshot, err := s.store.Reload(ctx)
	if err != nil {
		return 0, err
	}
	return len(snapshot), nil
}
