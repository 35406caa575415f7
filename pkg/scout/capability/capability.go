// Package capability defines optional plug-in providers for the
// extraction pipeline. Both providers may be absent; consumers branch on
// a nil provider and proceed with the remaining signals.
package capability

// EntityType classifies a recognized entity.
type EntityType string

const (
	Person    EntityType = "person"
	Place     EntityType = "place"
	WorkOfArt EntityType = "work_of_art"
	Language  EntityType = "language"
)

// Entity is a recognized named entity in a text.
type Entity struct {
	Type  EntityType
	Value string
}

// EntityTagger recognizes named entities in text. Implementations must be
// safe for concurrent read-only use.
type EntityTagger interface {
	Tag(text string) []Entity
}

// Similarity scores the semantic closeness of two strings in [0,1].
// Implementations must be safe for concurrent read-only use.
type Similarity interface {
	Score(a, b string) (float64, error)
}
