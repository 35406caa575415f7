package capability

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// EdlibSimilarity scores a token against a candidate definition using
// Jaro-Winkler string similarity. The definition is compared both
// directly and through the initials of its words, so "API" scores 1.0
// against "Application Programming Interface".
type EdlibSimilarity struct {
	algorithm edlib.Algorithm
}

// NewEdlibSimilarity creates a Jaro-Winkler backed similarity provider.
func NewEdlibSimilarity() *EdlibSimilarity {
	return &EdlibSimilarity{algorithm: edlib.JaroWinkler}
}

// Score implements Similarity.
func (e *EdlibSimilarity) Score(a, b string) (float64, error) {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0, nil
	}

	direct, err := edlib.StringsSimilarity(a, strings.ToUpper(b), e.algorithm)
	if err != nil {
		return 0, err
	}

	viaInitials, err := edlib.StringsSimilarity(a, initials(b), e.algorithm)
	if err != nil {
		return 0, err
	}

	score := float64(direct)
	if s := float64(viaInitials); s > score {
		score = s
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}

// initials concatenates the uppercase first letters of each word.
func initials(s string) string {
	var b strings.Builder
	for _, w := range strings.Fields(s) {
		r := rune(w[0])
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
