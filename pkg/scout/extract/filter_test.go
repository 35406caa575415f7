package extract

import (
	"strings"
	"testing"

	"github.com/scoutdoc/scout/pkg/scout/capability"
)

func TestFilterRejectsExcludedWords(t *testing.T) {
	f := NewFilter(nil, nil)

	// Stopwords stay rejected regardless of surrounding punctuation.
	contexts := []string{
		"THE word",
		"(THE) in parentheses",
		"THE: with a colon",
		"- THE after a dash",
	}
	for _, text := range contexts {
		if f.IsLikelyAbbreviation("THE", text) {
			t.Errorf("THE must never be accepted, context %q", text)
		}
	}
}

func TestFilterAcceptsDigits(t *testing.T) {
	f := NewFilter(nil, nil)
	if !f.IsLikelyAbbreviation("H2O", "plain mention of H2O without evidence") {
		t.Error("Token with a digit should be accepted")
	}
}

func TestFilterAcceptsShortTokens(t *testing.T) {
	f := NewFilter(nil, nil)
	if !f.IsLikelyAbbreviation("XYZ", "an XYZ with no other evidence") {
		t.Error("Tokens of length 2-4 should be accepted by default")
	}
}

func TestFilterRejectsLongTokensWithoutEvidence(t *testing.T) {
	f := NewFilter(nil, nil)
	if f.IsLikelyAbbreviation("IMPORTANT", "this is IMPORTANT emphasis only") {
		t.Error("Long all-caps token without evidence should be rejected")
	}
}

func TestFilterAcceptsDefinitionAdjacency(t *testing.T) {
	f := NewFilter(nil, nil)

	if !f.IsLikelyAbbreviation("PROTOCOL", "PROTOCOL: the agreed message format") {
		t.Error("Token followed by a colon should be accepted")
	}
	if !f.IsLikelyAbbreviation("TELEMETRY", "readings (see TELEMETRY section)") {
		t.Error("Token inside parentheses should be accepted")
	}
}

func TestFilterAcceptsGlossarySection(t *testing.T) {
	f := NewFilter(nil, nil)
	text := "Abbreviations\nINTEROP means system compatibility in this document."

	if !f.IsLikelyAbbreviation("INTEROP", text) {
		t.Error("Token shortly after a glossary heading should be accepted")
	}

	far := "Abbreviations\n" + strings.Repeat("filler words here ", 40) + "INTEROP appears late"
	if f.IsLikelyAbbreviation("INTEROP", far) {
		t.Error("Token far past the glossary window should not be accepted that way")
	}
}

func TestFilterEntityGuard(t *testing.T) {
	tagger := capability.NewGazetteerTagger()
	tagger.Add(capability.Person, []string{"omar"})

	text := "OMAR presented the report."

	withGuard := NewFilter(nil, tagger)
	if withGuard.IsLikelyAbbreviation("OMAR", text) {
		t.Error("Person name should be rejected when the entity guard is available")
	}

	withoutGuard := NewFilter(nil, nil)
	if !withoutGuard.IsLikelyAbbreviation("OMAR", text) {
		t.Error("Without a tagger the short token should fall through to acceptance")
	}
}
