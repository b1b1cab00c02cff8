package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rendis/triptap/internal/engine/dataset"
	"github.com/rendis/triptap/internal/engine/recommend"
	"github.com/rendis/triptap/internal/model"
)

func runRecommend(args []string) error {
	var dataPath, zone, typ, dslr, format, outputPath string
	var maxFee float64
	var hasMaxFee, nearby bool

	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	fs.StringVar(&dataPath, "data", "", "Path to dataset .csv or .db file (required)")
	fs.StringVar(&zone, "zone", "", "Zone filter (exact match)")
	fs.StringVar(&typ, "type", "", "Type filter (case-insensitive substring)")
	fs.Float64Var(&maxFee, "max-fee", 0, "Maximum entrance fee in INR (0 = free only)")
	fs.StringVar(&dslr, "dslr", "", "DSLR allowed filter: Yes or No")
	fs.BoolVar(&nearby, "nearby", false, "Include nearby places in the same city")
	fs.StringVar(&format, "format", "text", "Output format: text or csv")
	fs.StringVar(&outputPath, "output", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: triptap recommend [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  triptap recommend -data destinations.csv -zone North -max-fee 100\n")
		fmt.Fprintf(os.Stderr, "  triptap recommend -data trip.db -type museum -nearby -format csv -output picks.csv\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if dataPath == "" {
		return fmt.Errorf("-data is required")
	}
	if dslr != "" && dslr != "Yes" && dslr != "No" {
		return fmt.Errorf("-dslr must be Yes or No")
	}

	// Only apply the fee ceiling when the flag was actually set; 0 is a real
	// ceiling (free entry only), so absence can't be inferred from the value.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max-fee" {
			hasMaxFee = true
		}
	})

	table, err := dataset.Load(dataPath)
	if err != nil {
		return err
	}

	criteria := model.Criteria{
		Zone:          zone,
		Type:          typ,
		DSLR:          dslr,
		IncludeNearby: nearby,
	}
	if hasMaxFee {
		criteria.MaxFee = &maxFee
	}

	results := recommend.Assemble(table, criteria)
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No destinations matched the given filters.")
		return nil
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "text":
		for _, r := range results {
			fmt.Fprintf(out, "%s — %s\n", r.Name, r.City)
			fmt.Fprintf(out, "  Rating: %.1f  Fee: ₹%.0f  Best time: %s\n", r.Rating, r.Fee, r.BestTime)
			for _, n := range r.Nearby {
				fmt.Fprintf(out, "  Nearby: %s (%s) — %.1f\n", n.Name, n.Type, n.Rating)
			}
		}
	case "csv":
		w := csv.NewWriter(out)
		defer w.Flush()
		w.Write([]string{"name", "city", "rating", "fee_inr", "best_time", "nearby"})
		for _, r := range results {
			var nearbyNames []string
			for _, n := range r.Nearby {
				nearbyNames = append(nearbyNames, n.Name)
			}
			w.Write([]string{
				r.Name,
				r.City,
				fmt.Sprintf("%.1f", r.Rating),
				fmt.Sprintf("%.2f", r.Fee),
				r.BestTime,
				strings.Join(nearbyNames, "; "),
			})
		}
	default:
		return fmt.Errorf("unsupported format: %s (want text or csv)", format)
	}

	fmt.Fprintf(os.Stderr, "%d destinations matched\n", len(results))
	return nil
}
