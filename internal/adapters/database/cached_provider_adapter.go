package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/providers"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
)

// CachedProviderAdapter wraps a ProviderRepository with caching
type CachedProviderAdapter struct {
	adapter repositories.ProviderRepository
	cache   providers.CacheProvider
}

// NewCachedProviderAdapter creates a new cached provider adapter
func NewCachedProviderAdapter(adapter repositories.ProviderRepository, cache providers.CacheProvider) repositories.ProviderRepository {
	return &CachedProviderAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	providerByIDTTL = 300 // 5 minutes for single provider
	snapshotTTL     = 180 // 3 minutes for the full dataset
	vocabularyTTL   = 600 // 10 minutes for distinct value listings
)

func providerCacheKey(id int) string {
	return fmt.Sprintf("provider:%d", id)
}

func vocabularyCacheKey(name string) string {
	return fmt.Sprintf("providers:vocab:%s", name)
}

const snapshotCacheKey = "providers:snapshot"

// GetByID retrieves a provider by ID with caching
func (a *CachedProviderAdapter) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	cacheKey := providerCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var provider entities.Provider
		if err := json.Unmarshal(cached, &provider); err == nil {
			return &provider, nil
		}
		log.Printf("Failed to unmarshal cached provider %d: %v", id, err)
	}

	provider, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(provider); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, providerByIDTTL); err != nil {
				log.Printf("Failed to cache provider %d: %v", id, err)
			}
		}
	}()

	return provider, nil
}

// List is served from the database directly. Filtered listings are too
// varied to cache usefully, and the query engine works from Snapshot.
func (a *CachedProviderAdapter) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.Provider, error) {
	return a.adapter.List(ctx, filter)
}

// Snapshot retrieves the full dataset with caching
func (a *CachedProviderAdapter) Snapshot(ctx context.Context) ([]*entities.Provider, error) {
	if cached, err := a.cache.Get(ctx, snapshotCacheKey); err == nil {
		var snapshot []*entities.Provider
		if err := json.Unmarshal(cached, &snapshot); err == nil {
			return snapshot, nil
		}
		log.Printf("Failed to unmarshal cached snapshot: %v", err)
	}

	snapshot, err := a.adapter.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(snapshot); err == nil {
			if err := a.cache.Set(bgCtx, snapshotCacheKey, data, snapshotTTL); err != nil {
				log.Printf("Failed to cache snapshot: %v", err)
			}
		}
	}()

	return snapshot, nil
}

// ReplaceAll replaces the dataset and invalidates every provider cache entry
func (a *CachedProviderAdapter) ReplaceAll(ctx context.Context, newProviders []*entities.Provider) error {
	if err := a.adapter.ReplaceAll(ctx, newProviders); err != nil {
		return err
	}

	go func() {
		bgCtx := context.Background()
		if err := a.cache.Delete(bgCtx, snapshotCacheKey); err != nil {
			log.Printf("Failed to invalidate snapshot cache: %v", err)
		}
		for _, vocab := range []string{"specialties", "languages", "insurances"} {
			if err := a.cache.Delete(bgCtx, vocabularyCacheKey(vocab)); err != nil {
				log.Printf("Failed to invalidate %s cache: %v", vocab, err)
			}
		}
		for _, p := range newProviders {
			if err := a.cache.Delete(bgCtx, providerCacheKey(p.ID)); err != nil {
				log.Printf("Failed to invalidate provider cache %d: %v", p.ID, err)
			}
		}
	}()

	return nil
}

// DistinctSpecialties lists distinct specialties with caching
func (a *CachedProviderAdapter) DistinctSpecialties(ctx context.Context) ([]string, error) {
	return a.cachedVocabulary(ctx, "specialties", a.adapter.DistinctSpecialties)
}

// DistinctLanguages lists distinct languages with caching
func (a *CachedProviderAdapter) DistinctLanguages(ctx context.Context) ([]string, error) {
	return a.cachedVocabulary(ctx, "languages", a.adapter.DistinctLanguages)
}

// DistinctInsurances lists distinct insurances with caching
func (a *CachedProviderAdapter) DistinctInsurances(ctx context.Context) ([]string, error) {
	return a.cachedVocabulary(ctx, "insurances", a.adapter.DistinctInsurances)
}

func (a *CachedProviderAdapter) cachedVocabulary(ctx context.Context, name string, fetch func(context.Context) ([]string, error)) ([]string, error) {
	cacheKey := vocabularyCacheKey(name)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var values []string
		if err := json.Unmarshal(cached, &values); err == nil {
			return values, nil
		}
		log.Printf("Failed to unmarshal cached %s: %v", name, err)
	}

	values, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(values); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, vocabularyTTL); err != nil {
				log.Printf("Failed to cache %s: %v", name, err)
			}
		}
	}()

	return values, nil
}
