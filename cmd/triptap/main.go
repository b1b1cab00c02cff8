package main

import (
	"fmt"
	"os"

	"github.com/rendis/triptap/internal/tui"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[0] != "" {
		switch os.Args[1] {
		case "recommend":
			if err := runRecommend(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "travel":
			if err := runTravel(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "import":
			if err := runImport(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "export":
			if err := runExport(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "version":
			fmt.Println("triptap " + version)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		}
	}

	// No subcommand → launch TUI
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `triptap - travel destination recommender & travel-cost estimator

Usage:
  triptap                   Launch interactive TUI
  triptap recommend [flags] Filter a dataset and print recommendations
  triptap travel [flags]    Estimate travel distance and cost between two places
  triptap import [flags]    Import a CSV dataset into a .db file
  triptap export [flags]    Export a .db dataset to CSV
  triptap version           Show version

Run 'triptap <command> --help' for flags.
`)
}
