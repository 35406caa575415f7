package capability

import "testing"

func TestGazetteerTag(t *testing.T) {
	g := NewGazetteerTagger()
	g.Add(Person, []string{"Sam"})
	g.Add(Place, []string{"Oslo"})

	entities := g.Tag("SAM flew to Oslo last week.")

	found := make(map[EntityType]string)
	for _, e := range entities {
		found[e.Type] = e.Value
	}

	if found[Person] != "sam" {
		t.Errorf("Expected person entity 'sam', got %q", found[Person])
	}
	if found[Place] != "oslo" {
		t.Errorf("Expected place entity 'oslo', got %q", found[Place])
	}
}

func TestGazetteerWordBoundaries(t *testing.T) {
	g := NewGazetteerTagger()
	g.Add(Person, []string{"sam"})

	if entities := g.Tag("The samples were inconclusive."); len(entities) != 0 {
		t.Errorf("'sam' should not match inside 'samples', got %v", entities)
	}
}

func TestDefaultGazetteerNonEmpty(t *testing.T) {
	g := DefaultGazetteer()
	if entities := g.Tag("Tom studied the Iliad in Oslo."); len(entities) < 3 {
		t.Errorf("Expected person, work and place entities, got %v", entities)
	}
}

func TestEdlibSimilarityInitials(t *testing.T) {
	sim := NewEdlibSimilarity()

	score, err := sim.Score("API", "Application Programming Interface")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score < 0.9 {
		t.Errorf("Initials match should score near 1.0, got %.2f", score)
	}

	score, err = sim.Score("XYZ", "Quarterly Revenue Summary")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score > 0.5 {
		t.Errorf("Unrelated strings should score low, got %.2f", score)
	}
}

func TestEdlibSimilarityEmptyInputs(t *testing.T) {
	sim := NewEdlibSimilarity()
	if score, err := sim.Score("", "anything"); err != nil || score != 0 {
		t.Errorf("Empty input should score 0 without error, got %.2f %v", score, err)
	}
}
