package extract

import (
	"math"
	"strings"
	"testing"
)

type fixedSimilarity struct {
	value float64
}

func (f fixedSimilarity) Score(a, b string) (float64, error) {
	return f.value, nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreBareShortToken(t *testing.T) {
	s := NewScorer(nil)
	text := "This sentence mentions the bare token XYZ near its end."
	pos := strings.Index(text, "XYZ")

	got := s.Score("XYZ", "", text, pos)

	// 0.5 baseline + 0.05 short length; no definition, late position.
	if !almostEqual(got, 0.55) {
		t.Errorf("Expected 0.55, got %.3f", got)
	}
	if got < AcceptThreshold {
		t.Error("Bare short token must clear the acceptance threshold")
	}
}

func TestScoreDefinitionRoundTrip(t *testing.T) {
	s := NewScorer(nil)
	text := "Application Programming Interface (API) is a contract."
	pos := strings.Index(text, "API")

	got := s.Score("API", "Application Programming Interface", text, pos)

	if got < 0.8 {
		t.Errorf("Deterministic definition case should score >= 0.8, got %.3f", got)
	}
}

func TestScoreStandsForBonusAndClamp(t *testing.T) {
	s := NewScorer(nil)
	text := "SLA stands for Service Level Agreement."

	// 0.5 + 0.3 + 0.15 + 0.1 early + 0.05 short, clamped to 1.
	got := s.Score("SLA", "Service Level Agreement", text, 0)
	if !almostEqual(got, 1.0) {
		t.Errorf("Expected clamp to 1.0, got %.3f", got)
	}
}

func TestScoreMeansBonus(t *testing.T) {
	s := NewScorer(nil)
	text := strings.Repeat("padding text ", 20) + "DNS means Domain Name System."
	pos := strings.Index(text, "DNS")

	got := s.Score("DNS", "Domain Name System", text, pos)

	// 0.5 + 0.3 definition + 0.15 means + 0.05 short, not early.
	if !almostEqual(got, 1.0) {
		t.Errorf("Expected 1.0, got %.3f", got)
	}
}

func TestScoreLongTokenPenalty(t *testing.T) {
	s := NewScorer(nil)
	text := strings.Repeat("filler ", 30) + "DATABASES appears here"
	pos := strings.Index(text, "DATABASES")

	got := s.Score("DATABASES", "", text, pos)

	// 0.5 - 0.2 length penalty; drops below the acceptance threshold.
	if !almostEqual(got, 0.3) {
		t.Errorf("Expected 0.3, got %.3f", got)
	}
	if got >= AcceptThreshold {
		t.Error("Penalized long token should fall below the threshold")
	}
}

func TestScoreDigitBonus(t *testing.T) {
	s := NewScorer(nil)
	text := strings.Repeat("filler ", 30) + "H2O appears here"
	pos := strings.Index(text, "H2O")

	got := s.Score("H2O", "", text, pos)

	// 0.5 + 0.1 digit + 0.05 short.
	if !almostEqual(got, 0.65) {
		t.Errorf("Expected 0.65, got %.3f", got)
	}
}

func TestScoreSimilarityTiers(t *testing.T) {
	text := strings.Repeat("filler ", 30) + "QRSXY (Quick Response System Extra Yard)"
	pos := strings.Index(text, "QRSXY")

	strong := NewScorer(fixedSimilarity{value: 0.9})
	weak := NewScorer(fixedSimilarity{value: 0.6})
	none := NewScorer(nil)

	def := "Quick Response System Extra Yard"
	base := none.Score("QRSXY", def, text, pos)
	withStrong := strong.Score("QRSXY", def, text, pos)
	withWeak := weak.Score("QRSXY", def, text, pos)

	if !almostEqual(withStrong-base, 0.2) {
		t.Errorf("Strong similarity should add 0.2, got delta %.3f", withStrong-base)
	}
	if !almostEqual(withWeak-base, 0.1) {
		t.Errorf("Moderate similarity should add 0.1, got delta %.3f", withWeak-base)
	}
}

func TestScoreEarlyPosition(t *testing.T) {
	s := NewScorer(nil)
	text := "RAM is introduced immediately. " + strings.Repeat("more text follows here ", 20)

	early := s.Score("RAM", "", text, 0)
	late := s.Score("RAM", "", text, len(text)-10)

	if !almostEqual(early-late, 0.1) {
		t.Errorf("Early introduction should add 0.1, got delta %.3f", early-late)
	}
}
