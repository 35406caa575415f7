package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("Application Programming Interface (API)"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New()
	text, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !strings.Contains(text, "(API)") {
		t.Errorf("Expected file contents, got %q", text)
	}
}

func TestParseBinaryContentYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bin.txt")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 'A', 'B'}, 0o644); err != nil {
		t.Fatal(err)
	}

	p := New()
	text, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse should not fail on binary content: %v", err)
	}
	if text != "" {
		t.Errorf("Binary content should yield empty text, got %q", text)
	}
}

func TestParseHTMLStripsMarkup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	content := `<html><head><style>p{color:red}</style><script>var x=1;</script></head>` +
		`<body><p>Central Processing Unit (CPU)</p></body></html>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New()
	text, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !strings.Contains(text, "Central Processing Unit (CPU)") {
		t.Errorf("Expected visible text, got %q", text)
	}
	if strings.Contains(text, "var x") || strings.Contains(text, "color:red") {
		t.Errorf("Script/style content should be stripped, got %q", text)
	}
}

func TestParseUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New()
	text, err := p.Parse(path)
	if err != nil || text != "" {
		t.Errorf("Unknown format should yield empty text without error, got %q %v", text, err)
	}
}

func TestParseMissingFile(t *testing.T) {
	p := New()
	text, err := p.Parse(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Missing file should report an error")
	}
	if text != "" {
		t.Errorf("Missing file should yield empty text, got %q", text)
	}
}
