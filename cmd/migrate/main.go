package main

import (
	"context"
	"flag"
	"log"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/adapters/database"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/adapters/search"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/application/services"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/postgres"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/typesense"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/observability"
	"github.com/Shubham-Saboo/Voice-AI-Agents/pkg/config"
)

func main() {
	var (
		datasetPath = flag.String("file", "", "dataset JSON path (defaults to PROVIDER_JSON_PATH)")
		reset       = flag.Bool("reset", false, "truncate provider tables before importing")
		skipIndex   = flag.Bool("skip-index", false, "do not push providers to the search index")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	observability.InitLogger("provider-directory-migrate", cfg.Env)

	path := *datasetPath
	if path == "" {
		path = cfg.Dataset.Path
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, pgClient); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	log.Println("Schema ensured")

	if *reset {
		log.Println("Reset requested, truncating provider tables before importing")
		if err := database.ResetSchema(ctx, pgClient); err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	var searchRepo repositories.ProviderSearchRepository
	if !*skipIndex {
		tsClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Printf("Warning: Typesense unavailable, skipping indexing: %v", err)
		} else {
			if err := tsClient.InitSchema(ctx); err != nil {
				log.Printf("Warning: Failed to init Typesense schema: %v", err)
			}
			searchRepo = search.NewTypesenseAdapter(tsClient)
		}
	}

	providerRepo := database.NewProviderAdapter(pgClient)
	ingestion := services.NewProviderIngestionService(providerRepo, searchRepo)

	summary, err := ingestion.ImportFromFile(ctx, path)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import complete: %d loaded, %d skipped, %d imported, %d indexed",
		summary.RecordsLoaded, summary.RecordsSkipped, summary.RecordsImported, summary.RecordsIndexed)
}
