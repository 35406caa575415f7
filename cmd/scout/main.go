package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/scoutdoc/scout/pkg/scout"
	"github.com/scoutdoc/scout/pkg/scout/config"
	"github.com/scoutdoc/scout/pkg/scout/export"
	"github.com/scoutdoc/scout/pkg/scout/history"
	"github.com/scoutdoc/scout/pkg/scout/history/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		format     = flag.String("format", "txt", "Output format: txt, csv, or json")
		output     = flag.String("output", "", "Output file (default stdout)")
		workers    = flag.Int("workers", 1, "Number of parallel extraction workers")
		dbPath     = flag.String("db", "", "Scan history database (optional)")
		listRuns   = flag.Bool("history", false, "List past scans from the history database and exit")
		duplicates = flag.Bool("duplicates", false, "Find files with identical content instead of abbreviations")
	)
	flag.Parse()

	ctx := context.Background()

	loader := config.Loader{ConfigPath: *configPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	var store history.Store
	historyDB := *dbPath
	if historyDB == "" {
		historyDB = components.Config.HistoryDB
	}
	if historyDB != "" {
		store, err = sqlite.Open(ctx, historyDB)
		if err != nil {
			log.Fatal("Failed to open history database:", err)
		}
		defer store.Close()
	}

	if *listRuns {
		if store == nil {
			log.Fatal("--history requires --db or history_db in the config")
		}
		if err := printHistory(ctx, store); err != nil {
			log.Fatal("Failed to list history:", err)
		}
		return
	}

	roots := flag.Args()
	if len(roots) == 0 {
		log.Fatal("Usage: scout [flags] <directory>...")
	}

	s, err := scout.New(scout.Options{
		Config:     components.Config,
		Exclusions: components.Exclusions,
		Tagger:     components.Tagger,
		Similarity: components.Similarity,
		History:    store,
	})
	if err != nil {
		log.Fatal("Failed to initialize:", err)
	}

	if *duplicates {
		groups, err := s.FindDuplicates(ctx, roots)
		if err != nil {
			log.Fatal("Duplicate scan failed:", err)
		}
		printDuplicates(groups)
		return
	}

	result, err := s.ScanParallel(ctx, roots, *workers)
	if err != nil {
		log.Fatal("Scan failed:", err)
	}
	for _, fe := range result.Errors {
		log.Printf("warning: %s: %v", fe.Path, fe.Err)
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal("Failed to create output file:", err)
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(*format) {
	case "txt", "text":
		err = export.WriteText(out, result.Records, result.Statistics)
	case "csv":
		err = export.WriteCSV(out, result.Records)
	case "json":
		err = export.WriteJSON(out, result.Records)
	default:
		log.Fatalf("Unknown format %q (want txt, csv, or json)", *format)
	}
	if err != nil {
		log.Fatal("Failed to write output:", err)
	}

	if result.ScanID != "" {
		log.Printf("Scan saved to history as %s", result.ScanID)
	}
}

func printHistory(ctx context.Context, store history.Store) error {
	scans, err := store.List(ctx, 20)
	if err != nil {
		return err
	}
	if len(scans) == 0 {
		fmt.Println("No scans recorded.")
		return nil
	}
	for _, s := range scans {
		fmt.Printf("%s  %-14s  %s  %d results  %s\n",
			s.Date.Format("2006-01-02 15:04"), s.Type, s.ID, s.TotalResults, s.SourcePath)
	}
	return nil
}

func printDuplicates(groups [][]string) {
	if len(groups) == 0 {
		fmt.Println("No duplicate files found.")
		return
	}
	for i, group := range groups {
		fmt.Printf("Group %d (%d files):\n", i+1, len(group))
		for _, path := range group {
			fmt.Printf("  %s\n", path)
		}
	}
}
