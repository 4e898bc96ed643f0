package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	tsclient "github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter implements provider name search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements ProviderSearchRepository
var _ repositories.ProviderSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// Index indexes a provider
func (a *TypesenseAdapter) Index(ctx context.Context, provider *entities.Provider) error {
	document := map[string]interface{}{
		"id":          strconv.Itoa(provider.ID),
		"provider_id": provider.ID,
		"full_name":   provider.FullName,
		"first_name":  provider.FirstName,
		"last_name":   provider.LastName,
		"specialty":   provider.Specialty,
		"rating":      provider.Rating,
	}
	if provider.Address != nil {
		document["city"] = provider.Address.City
		document["state"] = provider.Address.State
	}

	_, err := a.client.Client().Collection(tsclient.ProvidersCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index provider: %w", err)
	}

	return nil
}

// Delete removes a provider from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id int) error {
	_, err := a.client.Client().Collection(tsclient.ProvidersCollection).Document(strconv.Itoa(id)).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete provider from index: %w", err)
	}
	return nil
}

// SearchByName searches providers by name, tolerating typos and partial
// matches. Hits carry enough fields to render a result list; callers
// needing the full record should fetch it by ID.
func (a *TypesenseAdapter) SearchByName(ctx context.Context, name string, limit int) ([]*entities.Provider, error) {
	if limit <= 0 {
		limit = 10
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(name),
		QueryBy: pointer.String("full_name,first_name,last_name"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(tsclient.ProvidersCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search providers: %w", err)
	}

	providers := []*entities.Provider{}
	if result.Hits == nil {
		return providers, nil
	}

	for _, hit := range *result.Hits {
		doc := *hit.Document

		// Typesense returns map[string]interface{}, so cast safely
		provider := &entities.Provider{}
		if val, ok := doc["provider_id"].(float64); ok {
			provider.ID = int(val)
		}
		if val, ok := doc["full_name"].(string); ok {
			provider.FullName = val
		}
		if val, ok := doc["first_name"].(string); ok {
			provider.FirstName = val
		}
		if val, ok := doc["last_name"].(string); ok {
			provider.LastName = val
		}
		if val, ok := doc["specialty"].(string); ok {
			provider.Specialty = val
		}
		if val, ok := doc["rating"].(float64); ok {
			provider.Rating = val
		}

		city, hasCity := doc["city"].(string)
		state, hasState := doc["state"].(string)
		if hasCity || hasState {
			provider.Address = &entities.Address{City: city, State: state}
		}

		providers = append(providers, provider)
	}

	return providers, nil
}
