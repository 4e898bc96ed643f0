package repositories

import (
	"context"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

// ProviderRepository defines the interface for provider data operations.
// Reads hydrate the insurance and language sets from their junction tables;
// the query engine itself never touches storage.
type ProviderRepository interface {
	// GetByID retrieves a single provider with its full record
	GetByID(ctx context.Context, id int) (*entities.Provider, error)

	// List retrieves providers matching simple attribute filters, ordered
	// by rating descending
	List(ctx context.Context, filter ProviderFilter) ([]*entities.Provider, error)

	// Snapshot retrieves the whole collection in id order. The returned
	// slice is a consistent point-in-time read the query engine can treat
	// as immutable.
	Snapshot(ctx context.Context) ([]*entities.Provider, error)

	// ReplaceAll atomically replaces the collection with the given records
	ReplaceAll(ctx context.Context, providers []*entities.Provider) error

	// DistinctSpecialties lists every distinct specialty value
	DistinctSpecialties(ctx context.Context) ([]string, error)

	// DistinctLanguages lists every distinct language value
	DistinctLanguages(ctx context.Context) ([]string, error)

	// DistinctInsurances lists every distinct insurer value
	DistinctInsurances(ctx context.Context) ([]string, error)
}

// ProviderSearchRepository defines the interface for provider name search
// (e.g. Typesense).
type ProviderSearchRepository interface {
	// Index indexes a provider
	Index(ctx context.Context, provider *entities.Provider) error

	// Delete removes a provider from the index
	Delete(ctx context.Context, id int) error

	// SearchByName searches providers by free-text name
	SearchByName(ctx context.Context, name string, limit int) ([]*entities.Provider, error)
}

// ProviderFilter defines simple equality filters for listing providers.
// Empty fields are not applied. This is the coarse lookup surface used by
// the voice assistant's direct tool calls; structured criteria queries go
// through the query engine instead.
type ProviderFilter struct {
	State     string
	City      string
	Specialty string
	Language  string
	Insurance string
	Name      string
	Limit     int
}
