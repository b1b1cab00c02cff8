package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rendis/triptap/internal/engine/geo"
)

func runTravel(args []string) error {
	var from, to string

	fs := flag.NewFlagSet("travel", flag.ExitOnError)
	fs.StringVar(&from, "from", "", "Starting location name (required)")
	fs.StringVar(&to, "to", "", "Destination location name (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: triptap travel [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  triptap travel -from Delhi -to Agra\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if from == "" || to == "" {
		return fmt.Errorf("-from and -to are required")
	}

	est, missed, err := geo.Estimate(geo.NewNominatim(), from, to)
	if err != nil {
		return err
	}
	if len(missed) > 0 {
		return fmt.Errorf("could not determine location of %s — check the names", strings.Join(missed, ", "))
	}

	fmt.Printf("Distance between %s and %s: %.2f km\n\n", est.From, est.To, est.DistanceKm)
	fmt.Println("Estimated travel costs:")
	modes := make([]string, 0, len(est.Costs))
	for mode := range est.Costs {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		fmt.Printf("  %-16s ₹%.2f\n", mode, est.Costs[mode])
	}

	return nil
}
