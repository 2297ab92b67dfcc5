package main

import (
	"fmt"
	"os"

	"boataround-scraper/config"
	"boataround-scraper/scraper/boataround"
	"boataround-scraper/services"
	"boataround-scraper/storage"
	"boataround-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Boataround Scraping System starting ===")
	logger.Info("Search — destinations: %s | %s → %s | category: %s",
		cfg.Destinations, cfg.CheckIn, cfg.CheckOut, cfg.Category)

	scraper := boataround.New(cfg, logger)
	rawBoats, err := scraper.Scrape()
	if err != nil {
		logger.Error("Scrape failed: %v", err)
		os.Exit(1)
	}

	if len(rawBoats) == 0 {
		logger.Error("No boats were scraped. Exiting.")
		os.Exit(1)
	}

	assembler := services.NewAssembler(logger)
	boats, err := assembler.AssembleAll(rawBoats)
	if err != nil {
		logger.Error("Assembly failed: %v", err)
		os.Exit(1)
	}

	// All rows are held in memory and written as one final batch; the output
	// file only comes into existence once the whole crawl has succeeded.
	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	if err := csvWriter.Write(boats); err != nil {
		logger.Error("CSV write failed: %v", err)
		os.Exit(1)
	}
	logger.Info("%d boats saved to %s", len(boats), cfg.CSVOutputPath)

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.Write(boats); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else {
			logger.Info("Boats stored in PostgreSQL (table: boats)")
		}
	}

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(boats))

	fmt.Printf("  Done. Output → %s\n\n", cfg.CSVOutputPath)
}
