// Package export renders extraction results as report text, CSV, or
// JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/scoutdoc/scout/pkg/scout/extract"
)

// recordView is the serialized shape of one abbreviation.
type recordView struct {
	Definition  string   `json:"definition,omitempty"`
	Count       int      `json:"occurrence_count"`
	SourceFiles []string `json:"source_files"`
	Confidence  float64  `json:"confidence"`
}

// sortedTokens returns the record keys in alphabetical order.
func sortedTokens(records map[string]extract.Record) []string {
	tokens := make([]string, 0, len(records))
	for t := range records {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// WriteText renders a human-readable report with a statistics header.
func WriteText(w io.Writer, records map[string]extract.Record, stats extract.Statistics) error {
	rule := "======================================================================\n"

	if _, err := fmt.Fprintf(w, "%sSCOUT ABBREVIATION REPORT\nGenerated: %s\n%s\n",
		rule, time.Now().Format("2006-01-02 15:04:05"), rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"Total Abbreviations: %d\nWith Definitions: %d\nWithout Definitions: %d\nCoverage: %.1f%%\n\n",
		stats.Total, stats.WithDefinitions, stats.WithoutDefinitions, stats.CoveragePercent); err != nil {
		return err
	}

	for _, token := range sortedTokens(records) {
		rec := records[token]
		definition := rec.Definition
		if definition == "" {
			definition = "Definition not found"
		}
		if _, err := fmt.Fprintf(w, "%s\n  Definition: %s\n  Occurrences: %d\n  Found in: %d file(s)\n\n",
			token, definition, rec.Count, len(rec.SourceFiles)); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders one row per abbreviation with a header row.
func WriteCSV(w io.Writer, records map[string]extract.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"abbreviation", "definition", "occurrences", "files", "confidence"}); err != nil {
		return err
	}

	for _, token := range sortedTokens(records) {
		rec := records[token]
		row := []string{
			token,
			rec.Definition,
			strconv.Itoa(rec.Count),
			strconv.Itoa(len(rec.SourceFiles)),
			strconv.FormatFloat(rec.Confidence, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON renders the records as a token-keyed JSON object.
func WriteJSON(w io.Writer, records map[string]extract.Record) error {
	out := make(map[string]recordView, len(records))
	for token, rec := range records {
		out[token] = recordView{
			Definition:  rec.Definition,
			Count:       rec.Count,
			SourceFiles: rec.SourceFiles,
			Confidence:  rec.Confidence,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
