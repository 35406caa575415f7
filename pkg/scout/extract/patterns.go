package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Three independent pattern families, kept as separate passes rather than
// one combined expression: each targets a distinct orthographic class
// with its own normalization rule.
var (
	// API, H2O, NASA2
	standardPattern = regexp.MustCompile(`\b[A-Z][A-Z0-9]{1,9}\b`)
	// U.S.A., Ph.D.
	dottedPattern = regexp.MustCompile(`\b(?:[A-Z][a-z]?\.){2,}`)
	// UTF-8, X-RAY
	hyphenatedPattern = regexp.MustCompile(`\b[A-Z][A-Za-z0-9]*(?:-[A-Za-z0-9]+)+\b`)
)

// Candidate is a raw pattern match before acceptance filtering.
type Candidate struct {
	Token  string // normalized form
	Offset int    // byte offset of the earliest match
}

// Finder runs the pattern families over a text blob and applies the
// per-file frequency rules.
type Finder struct {
	minLength int
	maxLength int
	ceiling   int // max occurrences of a token within one file
}

// NewFinder creates a candidate finder with the given token length bounds
// and per-file frequency ceiling.
func NewFinder(minLength, maxLength, ceiling int) *Finder {
	return &Finder{minLength: minLength, maxLength: maxLength, ceiling: ceiling}
}

// Find returns the candidate tokens of one file's text together with the
// per-token occurrence counts. Candidates appear once each, in order of
// first occurrence, carrying the offset of that first occurrence.
//
// Tokens above the frequency ceiling are dropped as running-header or
// table artifacts. Tokens seen exactly once whose separator-stripped form
// is longer than five characters are dropped as more likely incidental
// capitalization than deliberate abbreviation.
func (f *Finder) Find(text string) ([]Candidate, map[string]int) {
	freq := make(map[string]int)
	first := make(map[string]int)

	collect := func(re *regexp.Regexp, normalize func(string) string) {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			token := normalize(text[loc[0]:loc[1]])
			n := len(stripSeparators(token))
			if n < f.minLength || n > f.maxLength {
				continue
			}
			freq[token]++
			if pos, ok := first[token]; !ok || loc[0] < pos {
				first[token] = loc[0]
			}
		}
	}

	collect(standardPattern, strings.ToUpper)
	collect(dottedPattern, func(s string) string {
		return strings.ToUpper(strings.ReplaceAll(s, ".", ""))
	})
	collect(hyphenatedPattern, strings.ToUpper)

	var candidates []Candidate
	for token, count := range freq {
		if f.ceiling > 0 && count > f.ceiling {
			delete(freq, token)
			continue
		}
		if count == 1 && len(stripSeparators(token)) > 5 {
			delete(freq, token)
			continue
		}
		candidates = append(candidates, Candidate{Token: token, Offset: first[token]})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Offset != candidates[j].Offset {
			return candidates[i].Offset < candidates[j].Offset
		}
		return candidates[i].Token < candidates[j].Token
	})
	return candidates, freq
}

// stripSeparators removes hyphens and periods for length checks. The
// stored token keeps its hyphens.
func stripSeparators(token string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, token)
}
