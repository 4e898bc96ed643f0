package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/postgres"
	apperrors "github.com/Shubham-Saboo/Voice-AI-Agents/pkg/errors"
)

// ProviderAdapter implements ProviderRepository on top of Postgres.
// Insurances and languages live in junction tables so they can be
// filtered and listed without unpacking arrays in SQL.
type ProviderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProviderAdapter creates a new provider adapter
func NewProviderAdapter(client *postgres.Client) repositories.ProviderRepository {
	return &ProviderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var providerColumns = []any{
	"id", "first_name", "last_name", "full_name", "specialty", "phone", "email",
	"street", "city", "state", "zip",
	"years_experience", "accepting_new_patients", "rating",
	"license_number", "board_certified",
}

// GetByID retrieves a single provider with its insurances and languages.
func (a *ProviderAdapter) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	query, args, err := a.db.Select(providerColumns...).
		From("providers").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	provider, err := scanProvider(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("provider with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get provider", err)
	}

	if err := a.hydrate(ctx, map[int]*entities.Provider{provider.ID: provider}); err != nil {
		return nil, err
	}
	return provider, nil
}

// List retrieves providers matching the given filter, ordered by rating
// descending. Name, city and specialty match case-insensitively.
func (a *ProviderAdapter) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.Provider, error) {
	ds := a.db.Select(providerColumns...).From("providers")

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		ds = ds.Where(goqu.Or(
			goqu.I("full_name").ILike(pattern),
			goqu.I("first_name").ILike(pattern),
			goqu.I("last_name").ILike(pattern),
		))
	}
	if filter.State != "" {
		ds = ds.Where(goqu.I("state").Eq(filter.State))
	}
	if filter.City != "" {
		ds = ds.Where(goqu.I("city").ILike(filter.City))
	}
	if filter.Specialty != "" {
		ds = ds.Where(goqu.I("specialty").ILike(filter.Specialty))
	}
	if filter.Insurance != "" {
		ds = ds.Where(goqu.I("id").In(
			a.db.Select("provider_id").From("provider_insurance").
				Where(goqu.I("insurance").ILike(filter.Insurance)),
		))
	}
	if filter.Language != "" {
		ds = ds.Where(goqu.I("id").In(
			a.db.Select("provider_id").From("provider_language").
				Where(goqu.I("language").ILike(filter.Language)),
		))
	}

	ds = ds.Order(goqu.I("rating").Desc(), goqu.I("id").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}

	return a.queryProviders(ctx, ds)
}

// Snapshot retrieves every provider in id order.
func (a *ProviderAdapter) Snapshot(ctx context.Context) ([]*entities.Provider, error) {
	ds := a.db.Select(providerColumns...).
		From("providers").
		Order(goqu.I("id").Asc())
	return a.queryProviders(ctx, ds)
}

// ReplaceAll replaces the full provider dataset in a single transaction.
func (a *ProviderAdapter) ReplaceAll(ctx context.Context, providers []*entities.Provider) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"provider_insurance", "provider_language", "providers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to clear %s", table), err)
		}
	}

	for _, p := range providers {
		record := goqu.Record{
			"id":                     p.ID,
			"first_name":             p.FirstName,
			"last_name":              p.LastName,
			"full_name":              p.FullName,
			"specialty":              p.Specialty,
			"phone":                  sql.NullString{String: p.Phone, Valid: p.Phone != ""},
			"email":                  sql.NullString{String: p.Email, Valid: p.Email != ""},
			"years_experience":       p.YearsExperience,
			"accepting_new_patients": p.AcceptingNewPatients,
			"rating":                 p.Rating,
			"license_number":         sql.NullString{String: p.LicenseNumber, Valid: p.LicenseNumber != ""},
			"board_certified":        p.BoardCertified,
		}
		if p.Address != nil {
			record["street"] = sql.NullString{String: p.Address.Street, Valid: true}
			record["city"] = sql.NullString{String: p.Address.City, Valid: true}
			record["state"] = sql.NullString{String: p.Address.State, Valid: true}
			record["zip"] = sql.NullString{String: p.Address.Zip, Valid: true}
		}

		query, args, err := a.db.Insert("providers").Rows(record).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build provider insert", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to insert provider %d", p.ID), err)
		}

		if err := insertJunction(ctx, tx, a.db, "provider_insurance", "insurance", p.ID, p.InsuranceAccepted); err != nil {
			return err
		}
		if err := insertJunction(ctx, tx, a.db, "provider_language", "language", p.ID, p.Languages); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit provider replace", err)
	}
	return nil
}

// DistinctSpecialties lists every distinct specialty in alphabetical order.
func (a *ProviderAdapter) DistinctSpecialties(ctx context.Context) ([]string, error) {
	return a.distinctValues(ctx, "providers", "specialty")
}

// DistinctLanguages lists every distinct spoken language in alphabetical order.
func (a *ProviderAdapter) DistinctLanguages(ctx context.Context) ([]string, error) {
	return a.distinctValues(ctx, "provider_language", "language")
}

// DistinctInsurances lists every distinct accepted insurance in alphabetical order.
func (a *ProviderAdapter) DistinctInsurances(ctx context.Context) ([]string, error) {
	return a.distinctValues(ctx, "provider_insurance", "insurance")
}

func (a *ProviderAdapter) distinctValues(ctx context.Context, table, column string) ([]string, error) {
	query, args, err := a.db.Select(goqu.DISTINCT(column)).
		From(table).
		Order(goqu.I(column).Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build distinct query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to list distinct %s", column), err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, apperrors.NewInternalError("failed to scan distinct value", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (a *ProviderAdapter) queryProviders(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.Provider, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build providers query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query providers", err)
	}
	defer rows.Close()

	var providers []*entities.Provider
	byID := make(map[int]*entities.Provider)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan provider", err)
		}
		providers = append(providers, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read providers", err)
	}

	if err := a.hydrate(ctx, byID); err != nil {
		return nil, err
	}
	return providers, nil
}

// hydrate attaches insurances and languages to the given providers.
func (a *ProviderAdapter) hydrate(ctx context.Context, byID map[int]*entities.Provider) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	err := a.collectJunction(ctx, "provider_insurance", "insurance", ids, func(id int, value string) {
		byID[id].InsuranceAccepted = append(byID[id].InsuranceAccepted, value)
	})
	if err != nil {
		return err
	}
	return a.collectJunction(ctx, "provider_language", "language", ids, func(id int, value string) {
		byID[id].Languages = append(byID[id].Languages, value)
	})
}

func (a *ProviderAdapter) collectJunction(ctx context.Context, table, column string, ids []int, collect func(id int, value string)) error {
	query, args, err := a.db.Select("provider_id", column).
		From(table).
		Where(goqu.I("provider_id").In(ids)).
		Order(goqu.I("provider_id").Asc(), goqu.I(column).Asc()).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build junction query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to query %s", table), err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var value string
		if err := rows.Scan(&id, &value); err != nil {
			return apperrors.NewInternalError("failed to scan junction row", err)
		}
		collect(id, value)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProvider(row rowScanner) (*entities.Provider, error) {
	p := &entities.Provider{}
	var phone, email, street, city, state, zip, license sql.NullString

	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.FullName, &p.Specialty, &phone, &email,
		&street, &city, &state, &zip,
		&p.YearsExperience, &p.AcceptingNewPatients, &p.Rating,
		&license, &p.BoardCertified,
	)
	if err != nil {
		return nil, err
	}

	p.Phone = phone.String
	p.Email = email.String
	p.LicenseNumber = license.String
	if street.Valid || city.Valid || state.Valid || zip.Valid {
		p.Address = &entities.Address{
			Street: street.String,
			City:   city.String,
			State:  state.String,
			Zip:    zip.String,
		}
	}
	return p, nil
}

func insertJunction(ctx context.Context, tx *sql.Tx, db *goqu.Database, table, column string, providerID int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	records := make([]any, 0, len(values))
	for _, v := range values {
		records = append(records, goqu.Record{"provider_id": providerID, column: v})
	}
	query, args, err := db.Insert(table).Rows(records...).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build junction insert", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to insert into %s", table), err)
	}
	return nil
}
