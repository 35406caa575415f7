package extract

import (
	"regexp"
	"strings"
)

var (
	headingLine    = regexp.MustCompile(`\n#+[ \t]+[^\n]*\n`)
	blankRuns      = regexp.MustCompile(`\n{2,}`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	capitalizedRun = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// connectorWords may appear inside a reconstructed definition phrase
// without contributing an initial, e.g. the "of" in
// "Federal Bureau of Investigation".
var connectorWords = map[string]struct{}{
	"of": {}, "and": {}, "for": {}, "in": {}, "on": {}, "at": {}, "to": {}, "the": {},
}

// Locator searches text for an explicit definition of a token using an
// ordered set of pattern strategies. The first confident match wins;
// there is no ranking across strategies.
type Locator struct{}

// NewLocator creates a definition locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Find returns the best definition for the token, or "" when none of the
// strategies produces a confident match.
func (l *Locator) Find(text, token string) string {
	text = preClean(text)
	quoted := regexp.QuoteMeta(token)

	if def := l.phraseThenToken(text, quoted); def != "" {
		return def
	}
	if def := l.tokenThenPhrase(text, quoted); def != "" {
		return def
	}
	if def := l.colonOrDash(text, quoted); def != "" {
		return def
	}
	if def := l.standsForOrMeans(text, quoted); def != "" {
		return def
	}
	// Last resort, lower precision.
	return l.firstLetterMatch(text, token)
}

// preClean strips markdown heading lines and collapses blank-line runs so
// section titles are not mistaken for definitions.
func preClean(text string) string {
	text = headingLine.ReplaceAllString(text, "\n")
	return blankRuns.ReplaceAllString(text, "\n")
}

// phraseThenToken matches "Capitalized Phrase (TOKEN)".
func (l *Locator) phraseThenToken(text, quoted string) string {
	re := regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z]?[a-z]+){0,7})\s*\(` + quoted + `\)`)
	if m := re.FindStringSubmatch(text); m != nil {
		return acceptPhrase(m[1])
	}
	return ""
}

// tokenThenPhrase matches "TOKEN (Capitalized Phrase)".
func (l *Locator) tokenThenPhrase(text, quoted string) string {
	re := regexp.MustCompile(quoted + `\s*\(([A-Z][a-z]+(?:\s+[A-Z]?[a-z]+){0,7})\)`)
	if m := re.FindStringSubmatch(text); m != nil {
		return acceptPhrase(m[1])
	}
	return ""
}

// colonOrDash matches "TOKEN: Definition" and "TOKEN - Definition" up to
// the next sentence boundary, truncated to ten words.
func (l *Locator) colonOrDash(text, quoted string) string {
	re := regexp.MustCompile(quoted + `\s*[:\-—]\s*([A-Z][^\n.]+?)(?:[\n.]|$)`)
	if m := re.FindStringSubmatch(text); m != nil {
		return acceptPhrase(truncateWords(m[1], 10))
	}
	return ""
}

// standsForOrMeans matches "TOKEN stands for Definition" and
// "TOKEN means Definition". The keyword is case-insensitive, the clause
// is not.
func (l *Locator) standsForOrMeans(text, quoted string) string {
	re := regexp.MustCompile(quoted + `\s+(?i:stands\s+for|means)\s+([A-Z][^\n.]+?)(?:[\n.]|$)`)
	if m := re.FindStringSubmatch(text); m != nil {
		return acceptPhrase(truncateWords(m[1], 10))
	}
	return ""
}

// acceptPhrase guards against capturing another acronym or a bare label.
func acceptPhrase(phrase string) string {
	phrase = strings.TrimSpace(phrase)
	if len(phrase) <= 3 || phrase == strings.ToUpper(phrase) {
		return ""
	}
	return phrase
}

func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// firstLetterMatch scans sentence by sentence for runs of capitalized
// words (connector words allowed between them) whose initials spell the
// token. It is inherently approximate and only consulted after the
// explicit pattern strategies fail.
func (l *Locator) firstLetterMatch(text, token string) string {
	if len(token) == 0 {
		return ""
	}

	for _, sentence := range sentenceSplit.Split(text, -1) {
		words := strings.Fields(sentence)
		cleaned := make([]string, len(words))
		for i, w := range words {
			cleaned[i] = strings.Trim(w, `,;:"'()[]`)
		}

		for start := range cleaned {
			if !capitalizedRun.MatchString(cleaned[start]) {
				continue
			}
			if phrase := matchInitialsFrom(cleaned, start, token); phrase != "" {
				return phrase
			}
		}
	}
	return ""
}

// matchInitialsFrom extends a phrase from start, taking initials from
// capitalized words only, and returns the phrase when the initials equal
// the token and the phrase is long enough to be meaningful.
func matchInitialsFrom(words []string, start int, token string) string {
	var initials strings.Builder
	end := start
	for i := start; i < len(words); i++ {
		w := words[i]
		if capitalizedRun.MatchString(w) {
			initials.WriteByte(w[0])
			end = i
			if initials.Len() == len(token) {
				break
			}
		} else if _, ok := connectorWords[w]; !ok {
			break
		}
	}

	if initials.String() != token {
		return ""
	}
	phrase := strings.Join(words[start:end+1], " ")
	if len(phrase) <= len(token)+2 {
		return ""
	}
	return phrase
}
