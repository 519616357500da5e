// ctdose-excel converts a folder of extracted JSON reports into a single
// XLSX workbook, one row per CT acquisition.
package main

import (
	"log"
	"os"

	"github.com/radworks/ctdose/internal/config"
	"github.com/radworks/ctdose/internal/export"
)

func main() {
	cfg, err := config.LoadExcelConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	reports, source, err := export.ReadReports(cfg.InputFolder)
	if err != nil {
		log.Fatalf("Failed to read JSON reports: %v", err)
	}
	log.Printf("Read %d reports from %s", len(reports), source)

	if err := export.WriteWorkbook(reports, cfg.OutputFile); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}
	log.Printf("Workbook saved: %s", cfg.OutputFile)
}
