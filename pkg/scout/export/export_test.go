package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/scoutdoc/scout/pkg/scout/extract"
)

func sampleRecords() map[string]extract.Record {
	return map[string]extract.Record{
		"API": {
			Token:       "API",
			Definition:  "Application Programming Interface",
			Count:       3,
			SourceFiles: []string{"a.txt", "b.txt"},
			Confidence:  0.85,
		},
		"XYZ": {
			Token:       "XYZ",
			Count:       1,
			SourceFiles: []string{"a.txt"},
			Confidence:  0.55,
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	stats := extract.Statistics{Total: 2, WithDefinitions: 1, WithoutDefinitions: 1, CoveragePercent: 50.0}

	if err := WriteText(&buf, sampleRecords(), stats); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"SCOUT ABBREVIATION REPORT",
		"Total Abbreviations: 2",
		"Application Programming Interface",
		"Definition not found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%s", want, out)
		}
	}

	// Alphabetical ordering.
	if strings.Index(out, "API") > strings.Index(out, "XYZ") {
		t.Error("Records should be alphabetical")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "API" || rows[1][2] != "3" {
		t.Errorf("Unexpected first data row: %v", rows[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded map[string]struct {
		Definition  string   `json:"definition"`
		Count       int      `json:"occurrence_count"`
		SourceFiles []string `json:"source_files"`
		Confidence  float64  `json:"confidence"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["API"].Count != 3 || decoded["API"].Definition == "" {
		t.Errorf("Unexpected JSON payload: %+v", decoded)
	}
}
