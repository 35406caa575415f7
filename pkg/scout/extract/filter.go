package extract

import (
	"regexp"
	"strings"

	"github.com/scoutdoc/scout/pkg/scout/capability"
	"github.com/scoutdoc/scout/pkg/scout/exclusion"
)

// glossaryWindow is how far past a glossary-style heading a token may
// appear and still count as introduced by that section.
const glossaryWindow = 500

var glossaryHeading = regexp.MustCompile(`(?im)^[^\n]*\b(?:glossary|abbreviations|acronyms)\b[^\n]*$`)

// Filter decides whether a candidate token is likely a true abbreviation
// rather than a stopword, a name, or emphasis in caps.
type Filter struct {
	exclusions *exclusion.Set
	tagger     capability.EntityTagger
}

// NewFilter creates a filter over the given exclusion set. The entity
// tagger is optional; a nil tagger skips the named-entity guard.
func NewFilter(exclusions *exclusion.Set, tagger capability.EntityTagger) *Filter {
	if exclusions == nil {
		exclusions = exclusion.Builtin()
	}
	return &Filter{exclusions: exclusions, tagger: tagger}
}

// IsLikelyAbbreviation reports whether the token should be kept as an
// abbreviation candidate, judged against the full text it came from.
func (f *Filter) IsLikelyAbbreviation(token, text string) bool {
	if f.exclusions.Contains(token) {
		return false
	}
	if f.tagger != nil && f.isNamedEntity(token, text) {
		return false
	}

	if strings.ContainsAny(token, "0123456789") {
		return true
	}
	if f.nearDefinitionPattern(token, text) {
		return true
	}

	n := len(stripSeparators(token))
	if n >= 2 && n <= 4 {
		return true
	}
	if f.inGlossarySection(token, text) {
		return true
	}

	// Longer all-caps tokens with no corroborating evidence are more
	// likely emphasis or headers than true abbreviations.
	return false
}

// isNamedEntity reports whether the tagger classifies the token as a
// person, place, work of art, or language mentioned in the text.
func (f *Filter) isNamedEntity(token, text string) bool {
	for _, e := range f.tagger.Tag(text) {
		switch e.Type {
		case capability.Person, capability.Place, capability.WorkOfArt, capability.Language:
			if strings.EqualFold(e.Value, token) {
				return true
			}
		}
	}
	return false
}

// nearDefinitionPattern reports whether the token appears adjacent to a
// definition-indicating pattern anywhere in the text: inside parentheses,
// or next to a colon or dash.
func (f *Filter) nearDefinitionPattern(token, text string) bool {
	quoted := regexp.QuoteMeta(token)
	patterns := []string{
		`\([^)]*` + quoted + `[^)]*\)`,
		quoted + `\s*[:\-—]`,
		`[:\-—]\s*` + quoted,
	}
	for _, p := range patterns {
		if regexp.MustCompile(p).MatchString(text) {
			return true
		}
	}
	return false
}

// inGlossarySection reports whether the token occurs shortly after a
// glossary/abbreviations/acronyms heading.
func (f *Filter) inGlossarySection(token, text string) bool {
	for _, loc := range glossaryHeading.FindAllStringIndex(text, -1) {
		end := loc[1] + glossaryWindow
		if end > len(text) {
			end = len(text)
		}
		if strings.Contains(text[loc[1]:end], token) {
			return true
		}
	}
	return false
}
