package capability

import "strings"

// GazetteerTagger recognizes entities by keyword lookup against curated
// name lists. It is a deliberately simple tagger: no model loading, no
// I/O, deterministic output.
type GazetteerTagger struct {
	entries map[EntityType][]string
}

// NewGazetteerTagger creates an empty gazetteer.
func NewGazetteerTagger() *GazetteerTagger {
	return &GazetteerTagger{entries: make(map[EntityType][]string)}
}

// Add registers names under an entity type. Matching is case-insensitive.
func (g *GazetteerTagger) Add(t EntityType, names []string) {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			g.entries[t] = append(g.entries[t], strings.ToLower(n))
		}
	}
}

// Tag finds gazetteer entities mentioned in the text.
func (g *GazetteerTagger) Tag(text string) []Entity {
	var entities []Entity
	lower := strings.ToLower(text)

	for t, names := range g.entries {
		for _, name := range names {
			if containsWord(lower, name) {
				entities = append(entities, Entity{Type: t, Value: name})
			}
		}
	}
	return entities
}

// containsWord reports whether name occurs in text on word boundaries.
func containsWord(text, name string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], name)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isWordByte(text[i-1])
		end := i + len(name)
		after := end == len(text) || !isWordByte(text[end])
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// DefaultGazetteer returns a tagger preloaded with a small list of names,
// places, languages, and well-known works that tend to collide with
// all-caps tokens in document text.
func DefaultGazetteer() *GazetteerTagger {
	g := NewGazetteerTagger()
	g.Add(Person, []string{
		"ann", "bob", "dan", "eva", "ian", "jim", "joe", "kim", "lee",
		"max", "sam", "tom", "amy", "ben", "eli", "ken", "liz", "mia",
		"ned", "pam", "ray", "sue", "ted", "tim",
	})
	g.Add(Place, []string{
		"oslo", "cairo", "lima", "kiev", "bonn", "bern", "riga", "baku",
		"doha", "male", "suva", "apia",
	})
	g.Add(Language, []string{
		"thai", "urdu", "zulu", "igbo", "ewe", "twi",
	})
	g.Add(WorkOfArt, []string{
		"iliad", "aeneid", "hamlet",
	})
	return g
}
