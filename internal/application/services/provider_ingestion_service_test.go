package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	apperrors "github.com/Shubham-Saboo/Voice-AI-Agents/pkg/errors"
)

type fakeRepo struct {
	replaced []*entities.Provider
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*entities.Provider, error) { return nil, nil }
func (f *fakeRepo) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.Provider, error) {
	return nil, nil
}
func (f *fakeRepo) Snapshot(ctx context.Context) ([]*entities.Provider, error) { return f.replaced, nil }
func (f *fakeRepo) ReplaceAll(ctx context.Context, providers []*entities.Provider) error {
	f.replaced = providers
	return nil
}
func (f *fakeRepo) DistinctSpecialties(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeRepo) DistinctLanguages(ctx context.Context) ([]string, error)   { return nil, nil }
func (f *fakeRepo) DistinctInsurances(ctx context.Context) ([]string, error)  { return nil, nil }

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportFromFile(t *testing.T) {
	path := writeDataset(t, `[
		{
			"id": 1,
			"first_name": "Maria",
			"last_name": "Gonzalez",
			"full_name": "Dr. Maria Gonzalez",
			"specialty": "Cardiology",
			"address": {"street": "1 Main St", "city": "San Antonio", "state": "Texas", "zip": "78205"},
			"years_experience": 18,
			"accepting_new_patients": true,
			"insurance_accepted": ["Aetna", "Medicare", "Aetna"],
			"languages": ["English", "Spanish"],
			"rating": 4.7,
			"board_certified": false
		},
		{
			"id": 2,
			"first_name": "Emily",
			"last_name": "Chen",
			"specialty": "Pediatrics",
			"languages": ["English"],
			"rating": 4.6
		}
	]`)

	repo := &fakeRepo{}
	service := NewProviderIngestionService(repo, nil)

	summary, err := service.ImportFromFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.RecordsLoaded)
	assert.Equal(t, 0, summary.RecordsSkipped)
	assert.Equal(t, 2, summary.RecordsImported)
	require.Len(t, repo.replaced, 2)

	first := repo.replaced[0]
	// State names normalize to two-letter codes.
	assert.Equal(t, "TX", first.Address.State)
	// Duplicate set entries collapse, keeping first-occurrence order.
	assert.Equal(t, []string{"Aetna", "Medicare"}, first.InsuranceAccepted)

	// A missing full_name falls back to "first last".
	assert.Equal(t, "Emily Chen", repo.replaced[1].FullName)
}

func TestImportFromFile_SkipsInvalidRecords(t *testing.T) {
	path := writeDataset(t, `[
		{"id": 1, "first_name": "Maria", "last_name": "Gonzalez", "specialty": "Cardiology", "rating": 4.7},
		{"id": 1, "first_name": "Dup", "last_name": "Licate", "specialty": "Cardiology", "rating": 4.0},
		{"id": 2, "first_name": "Bad", "last_name": "Rating", "specialty": "Oncology", "rating": 7.5},
		{"id": 3, "first_name": "", "last_name": "Nameless", "specialty": "Dermatology", "rating": 4.0},
		{"id": -4, "first_name": "Neg", "last_name": "Id", "specialty": "Radiology", "rating": 4.0}
	]`)

	repo := &fakeRepo{}
	service := NewProviderIngestionService(repo, nil)

	summary, err := service.ImportFromFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 5, summary.RecordsLoaded)
	assert.Equal(t, 4, summary.RecordsSkipped)
	assert.Equal(t, 1, summary.RecordsImported)
	require.Len(t, repo.replaced, 1)
	assert.Equal(t, 1, repo.replaced[0].ID)
}

func TestImportFromFile_MissingFile(t *testing.T) {
	service := NewProviderIngestionService(&fakeRepo{}, nil)

	_, err := service.ImportFromFile(context.Background(), "/nonexistent/providers.json")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}

func TestImportFromFile_MalformedJSON(t *testing.T) {
	path := writeDataset(t, `{"not": "a list"}`)
	service := NewProviderIngestionService(&fakeRepo{}, nil)

	_, err := service.ImportFromFile(context.Background(), path)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}
