package extract

import (
	"regexp"
	"strings"

	"github.com/scoutdoc/scout/pkg/scout/capability"
)

// AcceptThreshold is the minimum confidence score a token/definition pair
// needs to be merged into the corpus.
const AcceptThreshold = 0.4

// earlyPositionFraction marks the leading part of a document where a
// first occurrence counts as an early introduction.
const earlyPositionFraction = 0.2

// Scorer combines heuristic signals into a confidence score in [0,1].
type Scorer struct {
	similarity capability.Similarity
}

// NewScorer creates a scorer. The similarity provider is optional; when
// nil the semantic term is omitted entirely.
func NewScorer(similarity capability.Similarity) *Scorer {
	return &Scorer{similarity: similarity}
}

// Score rates the belief that definition is the expansion of token.
// position is the byte offset of the token's first occurrence in the
// text; definition may be empty.
func (s *Scorer) Score(token, definition, text string, position int) float64 {
	score := 0.5

	if definition != "" {
		score += 0.3
		quoted := regexp.QuoteMeta(token)
		if regexp.MustCompile(`(?i)\b` + quoted + `\s+stands\s+for\b`).MatchString(text) {
			score += 0.15
		}
		if regexp.MustCompile(`(?i)\b` + quoted + `\s+means\b`).MatchString(text) {
			score += 0.15
		}
		if s.similarity != nil {
			if sim, err := s.similarity.Score(token, definition); err == nil {
				switch {
				case sim > 0.7:
					score += 0.2
				case sim > 0.5:
					score += 0.1
				}
			}
		}
	}

	if len(text) > 0 && position >= 0 && float64(position) < earlyPositionFraction*float64(len(text)) {
		score += 0.1
	}
	if strings.ContainsAny(token, "0123456789") {
		score += 0.1
	}

	n := len(stripSeparators(token))
	if n >= 2 && n <= 4 {
		score += 0.05
	}
	if n > 7 {
		score -= 0.2
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
