package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rendis/triptap/internal/engine/dataset"
	"github.com/rendis/triptap/internal/engine/storage"
)

func runExport(args []string) error {
	var dbPath, outputPath, format string

	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.StringVar(&dbPath, "db", "", "Path to .db file (required)")
	fs.StringVar(&outputPath, "output", "", "Output file path (default: same dir as db)")
	fs.StringVar(&format, "format", "csv", "Export format: csv")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: triptap export [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  triptap export -db trip.db\n")
		fmt.Fprintf(os.Stderr, "  triptap export -db trip.db -output destinations.csv\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if dbPath == "" {
		return fmt.Errorf("-db is required")
	}

	if format != "csv" {
		return fmt.Errorf("unsupported format: %s (only csv supported)", format)
	}

	// Default output path
	if outputPath == "" {
		dir := filepath.Dir(dbPath)
		base := strings.TrimSuffix(filepath.Base(dbPath), ".db")
		outputPath = filepath.Join(dir, base+".csv")
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening db: %w", err)
	}
	defer store.Close()

	dests, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("loading db: %w", err)
	}

	if len(dests) == 0 {
		return fmt.Errorf("no destinations found in database")
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	w.Write([]string{
		dataset.ColName, dataset.ColCity, dataset.ColZone, dataset.ColType,
		dataset.ColFee, dataset.ColRating, dataset.ColBestTime, dataset.ColDSLR,
	})

	for _, d := range dests {
		w.Write([]string{
			d.Name,
			d.City,
			d.Zone,
			d.Type,
			fmt.Sprintf("%.2f", d.Fee),
			fmt.Sprintf("%.1f", d.Rating),
			d.BestTime,
			d.DSLR,
		})
	}

	fmt.Fprintf(os.Stderr, "Exported %d destinations to %s\n", len(dests), outputPath)
	return nil
}
