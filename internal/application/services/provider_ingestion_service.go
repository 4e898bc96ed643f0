package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/observability"
	apperrors "github.com/Shubham-Saboo/Voice-AI-Agents/pkg/errors"
	"github.com/Shubham-Saboo/Voice-AI-Agents/pkg/normalize"
)

// ProviderIngestionSummary reports what an import run did.
type ProviderIngestionSummary struct {
	RecordsLoaded   int `json:"records_loaded"`
	RecordsSkipped  int `json:"records_skipped"`
	RecordsImported int `json:"records_imported"`
	RecordsIndexed  int `json:"records_indexed"`
}

// ProviderIngestionService loads the provider dataset from JSON,
// validates and normalizes it, and replaces the stored dataset.
type ProviderIngestionService struct {
	repo       repositories.ProviderRepository
	searchRepo repositories.ProviderSearchRepository
}

// NewProviderIngestionService creates a new provider ingestion service.
// searchRepo may be nil when no search index is configured.
func NewProviderIngestionService(repo repositories.ProviderRepository, searchRepo repositories.ProviderSearchRepository) *ProviderIngestionService {
	return &ProviderIngestionService{
		repo:       repo,
		searchRepo: searchRepo,
	}
}

// ImportFromFile replaces the stored dataset with the contents of the
// given JSON file. Records failing validation are skipped with a warning
// rather than aborting the whole import.
func (s *ProviderIngestionService) ImportFromFile(ctx context.Context, path string) (*ProviderIngestionSummary, error) {
	providers, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}

	summary := &ProviderIngestionSummary{RecordsLoaded: len(providers)}
	logger := observability.GetLogger()

	valid := make([]*entities.Provider, 0, len(providers))
	seen := make(map[int]bool, len(providers))
	for _, p := range providers {
		if err := sanitizeProvider(p); err != nil {
			logger.Warn().Err(err).Int("id", p.ID).Msg("skipping invalid provider record")
			summary.RecordsSkipped++
			continue
		}
		if seen[p.ID] {
			logger.Warn().Int("id", p.ID).Msg("skipping duplicate provider id")
			summary.RecordsSkipped++
			continue
		}
		seen[p.ID] = true
		valid = append(valid, p)
	}

	if err := s.repo.ReplaceAll(ctx, valid); err != nil {
		return summary, err
	}
	summary.RecordsImported = len(valid)

	if s.searchRepo != nil {
		for _, p := range valid {
			if err := s.searchRepo.Index(ctx, p); err != nil {
				// Eventual consistency: the indexer can catch up later.
				logger.Warn().Err(err).Int("id", p.ID).Msg("failed to index provider")
				continue
			}
			summary.RecordsIndexed++
		}
	}

	logger.Info().
		Int("loaded", summary.RecordsLoaded).
		Int("skipped", summary.RecordsSkipped).
		Int("imported", summary.RecordsImported).
		Msg("provider dataset imported")

	return summary, nil
}

// LoadDataset parses the provider dataset JSON file.
func LoadDataset(path string) ([]*entities.Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("dataset file %s not readable: %v", path, err))
	}

	var providers []*entities.Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("dataset file is not valid provider JSON: %v", err))
	}
	return providers, nil
}

// sanitizeProvider validates one record and normalizes it in place.
func sanitizeProvider(p *entities.Provider) error {
	if p.ID <= 0 {
		return fmt.Errorf("provider id %d is not positive", p.ID)
	}

	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.FullName = strings.TrimSpace(p.FullName)
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("provider %d is missing a name", p.ID)
	}
	if p.FullName == "" {
		p.FullName = p.FirstName + " " + p.LastName
	}

	p.Specialty = strings.TrimSpace(p.Specialty)
	if p.Specialty == "" {
		return fmt.Errorf("provider %d is missing a specialty", p.ID)
	}

	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("provider %d rating %.2f is outside [0, 5]", p.ID, p.Rating)
	}
	if p.YearsExperience < 0 {
		return fmt.Errorf("provider %d has negative years of experience", p.ID)
	}

	if p.Address != nil {
		if code, ok := normalize.StateCode(p.Address.State); ok {
			p.Address.State = code
		}
	}

	p.InsuranceAccepted = dedupeStrings(p.InsuranceAccepted)
	p.Languages = dedupeStrings(p.Languages)

	return nil
}

// dedupeStrings trims entries and drops blanks and duplicates, keeping
// first-occurrence order.
func dedupeStrings(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
