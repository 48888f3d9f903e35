package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/5YPEXE/albion-objectives-bot/internal/domain"
)

//go:embed vocab.yaml
var defaultVocab []byte

// Vocabularies holds the fixed option lists for objective kinds and zones.
type Vocabularies struct {
	Objectives domain.Vocabulary `yaml:"objectives"`
	Zones      domain.Vocabulary `yaml:"zones"`
}

// LoadVocabularies reads the vocabulary lists from path, or from the
// embedded defaults when path is empty.
func LoadVocabularies(path string) (Vocabularies, error) {
	raw := defaultVocab
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Vocabularies{}, fmt.Errorf("read vocab file: %w", err)
		}
		raw = data
	}

	var v Vocabularies
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return Vocabularies{}, fmt.Errorf("parse vocab: %w", err)
	}
	if len(v.Objectives) == 0 || len(v.Zones) == 0 {
		return Vocabularies{}, domain.ErrEmptyVocabulary
	}
	return v, nil
}
