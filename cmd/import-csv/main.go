package main

import (
	"fmt"
	"os"

	"certify/internal/config"
	"certify/internal/importer"
	"certify/internal/store"
)

// Batch importer: reads a name,date CSV and appends participant records to
// the JSON store, printing the public and claim URLs for each.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: import-csv <path-to-csv>")
		fmt.Fprintln(os.Stderr, "CSV format: name,date")
		fmt.Fprintln(os.Stderr, "Example:    Jane Doe,2026-02-13")
		os.Exit(1)
	}

	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "File not found: %s\n", path)
		os.Exit(1)
	}

	cfg := config.Load()
	im := importer.New(store.New(cfg.DataFile), cfg.BaseURL)

	records, err := im.Run(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("No participants found in CSV.")
		return
	}

	im.Summary(records)
}
