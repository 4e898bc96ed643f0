package database

import (
	"context"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/postgres"
	apperrors "github.com/Shubham-Saboo/Voice-AI-Agents/pkg/errors"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS providers (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		full_name TEXT NOT NULL,
		specialty TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		street TEXT,
		city TEXT,
		state TEXT,
		zip TEXT,
		years_experience INTEGER NOT NULL DEFAULT 0,
		accepting_new_patients BOOLEAN NOT NULL DEFAULT false,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		license_number TEXT,
		board_certified BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS provider_insurance (
		provider_id INTEGER NOT NULL REFERENCES providers(id) ON DELETE CASCADE,
		insurance TEXT NOT NULL,
		PRIMARY KEY (provider_id, insurance)
	)`,
	`CREATE TABLE IF NOT EXISTS provider_language (
		provider_id INTEGER NOT NULL REFERENCES providers(id) ON DELETE CASCADE,
		language TEXT NOT NULL,
		PRIMARY KEY (provider_id, language)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_providers_specialty ON providers (specialty)`,
	`CREATE INDEX IF NOT EXISTS idx_providers_state ON providers (state)`,
	`CREATE INDEX IF NOT EXISTS idx_providers_rating ON providers (rating DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_provider_insurance_value ON provider_insurance (insurance)`,
	`CREATE INDEX IF NOT EXISTS idx_provider_language_value ON provider_language (language)`,
}

// EnsureSchema creates the provider tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context, client *postgres.Client) error {
	for _, stmt := range schemaStatements {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return apperrors.NewInternalError("failed to apply schema statement", err)
		}
	}
	return nil
}

// ResetSchema empties every provider table while keeping the schema in place.
func ResetSchema(ctx context.Context, client *postgres.Client) error {
	_, err := client.DB().ExecContext(ctx, `
		TRUNCATE TABLE
			provider_insurance,
			provider_language,
			providers
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		return apperrors.NewInternalError("failed to reset provider tables", err)
	}
	return nil
}
