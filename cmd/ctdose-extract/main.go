// ctdose-extract processes a folder of CT dose report PDFs into structured
// JSON: one aggregate file with every report plus one file per patient ID.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/radworks/ctdose/internal/config"
	"github.com/radworks/ctdose/internal/export"
	"github.com/radworks/ctdose/internal/extract"
	"github.com/radworks/ctdose/internal/pdf"
)

func main() {
	cfg, err := config.LoadExtractConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Debug {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	service := extract.NewService(
		pdf.NewSearch(cfg.MaxFileSize),
		pdf.NewReader(cfg.MaxFileSize),
		extract.NewDefaultAssembler(),
		cfg.Debug,
	)

	result, err := service.ProcessDirectory(cfg.SourceFolder)
	if err != nil {
		log.Fatalf("Failed to process %s: %v", cfg.SourceFolder, err)
	}

	if len(result.Reports) == 0 && len(result.Failures) == 0 {
		log.Printf("No PDF files found in %s", cfg.SourceFolder)
		return
	}

	if err := export.WriteReports(result.Reports, cfg.OutputFolder, cfg.AggregateFilename); err != nil {
		log.Fatalf("Failed to write JSON output: %v", err)
	}

	log.Printf("Processed %d reports (%d failures)", len(result.Reports), len(result.Failures))
	for _, failure := range result.Failures {
		log.Printf("  failed: %s: %v", failure.Path, failure.Err)
	}
	log.Printf("Aggregate report: %s", filepath.Join(cfg.OutputFolder, cfg.AggregateFilename))
}
