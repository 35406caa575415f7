// Package parser converts document files into plain text. Unsupported
// formats and parse failures yield an empty string rather than aborting
// a multi-file scan.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Document parses supported document formats.
type Document struct{}

// New creates a document parser.
func New() *Document {
	return &Document{}
}

// Parse reads the file and returns its plain text. The returned error is
// informational; callers treat an empty result as "no text for this
// file" and continue the scan.
func (d *Document) Parse(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".markdown":
		return Text(content), nil
	case ".html", ".htm":
		return HTML(content), nil
	default:
		return "", nil
	}
}

// Text sanitizes raw bytes into a UTF-8 string. Binary content with
// embedded NUL bytes is treated as non-text and yields "".
func Text(content []byte) string {
	for _, b := range content {
		if b == 0 {
			return ""
		}
	}
	return strings.ToValidUTF8(string(content), "")
}

// HTML extracts the visible text of an HTML document, skipping script
// and style elements. A document that fails to parse yields "".
func HTML(content []byte) string {
	doc, err := html.Parse(strings.NewReader(string(content)))
	if err != nil {
		return ""
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
				buf.WriteString("\n")
			}
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}
