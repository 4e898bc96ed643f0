package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/adapters/database"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/application/services"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/evaluation"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/postgres"
	"github.com/Shubham-Saboo/Voice-AI-Agents/pkg/config"
)

func main() {
	var (
		casesPath   = flag.String("cases", "config/golden_cases.json", "golden cases JSON path")
		datasetPath = flag.String("dataset", "", "evaluate against a dataset JSON file instead of the database")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cases, err := evaluation.LoadGoldenCases(*casesPath)
	if err != nil {
		log.Fatalf("Failed to load golden cases: %v", err)
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		log.Fatalf("Golden cases invalid: %v", err)
	}

	var snapshot []*entities.Provider
	if *datasetPath != "" {
		snapshot, err = services.LoadDataset(*datasetPath)
		if err != nil {
			log.Fatalf("Failed to load dataset: %v", err)
		}
	} else {
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pgClient.Close()

		providerRepo := database.NewProviderAdapter(pgClient)
		snapshot, err = providerRepo.Snapshot(context.Background())
		if err != nil {
			log.Fatalf("Failed to load provider snapshot: %v", err)
		}
	}

	runner := evaluation.NewRunner(snapshot)
	summary := runner.Run(cases)

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
