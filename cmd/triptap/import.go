package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rendis/triptap/internal/engine/dataset"
	"github.com/rendis/triptap/internal/engine/storage"
)

func runImport(args []string) error {
	var csvPath, dbPath string

	fs := flag.NewFlagSet("import", flag.ExitOnError)
	fs.StringVar(&csvPath, "csv", "", "Path to dataset .csv file (required)")
	fs.StringVar(&dbPath, "db", "", "Output .db path (default: same dir as csv)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: triptap import [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  triptap import -csv destinations.csv\n")
		fmt.Fprintf(os.Stderr, "  triptap import -csv final.csv -db trip.db\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if csvPath == "" {
		return fmt.Errorf("-csv is required")
	}

	if dbPath == "" {
		dir := filepath.Dir(csvPath)
		base := strings.TrimSuffix(filepath.Base(csvPath), ".csv")
		dbPath = filepath.Join(dir, base+".db")
	}

	table, err := dataset.LoadCSV(csvPath)
	if err != nil {
		return fmt.Errorf("loading csv: %w", err)
	}
	if len(table) == 0 {
		return fmt.Errorf("no usable rows in %s", csvPath)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening db: %w", err)
	}
	defer store.Close()

	inserted, err := store.ImportBatch(table)
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}

	total, _ := store.Count()
	fmt.Fprintf(os.Stderr, "Imported %d destinations to %s (%d total)\n", inserted, dbPath, total)
	return nil
}
