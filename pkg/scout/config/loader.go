package config

import (
	"fmt"

	"github.com/scoutdoc/scout/pkg/scout/capability"
	"github.com/scoutdoc/scout/pkg/scout/exclusion"
)

// Loader builds initialized pipeline components from configuration.
type Loader struct {
	ConfigPath string
}

// Components holds everything a Scout instance needs at construction.
type Components struct {
	Config     Config
	Exclusions *exclusion.Set
	Tagger     capability.EntityTagger
	Similarity capability.Similarity
}

// Load reads the config file (or takes defaults when the path is empty)
// and constructs the shared read-only components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Config: Default()}

	if l.ConfigPath != "" {
		cfg, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		comp.Config = cfg
	}

	if comp.Config.ExclusionTerms != "" {
		set, err := exclusion.Load(comp.Config.ExclusionTerms)
		if err != nil {
			return nil, fmt.Errorf("load exclusion terms: %w", err)
		}
		comp.Exclusions = set
	} else {
		comp.Exclusions = exclusion.Builtin()
	}

	if comp.Config.EntityGuard {
		comp.Tagger = capability.DefaultGazetteer()
	}
	if comp.Config.SemanticSimilarity {
		comp.Similarity = capability.NewEdlibSimilarity()
	}

	return comp, nil
}
