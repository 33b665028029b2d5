package phrasebook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vibr/internal/models"
)

// Overlay is the structure of a phrasebook YAML file.
//
//	categories:
//	  - id: football
//	    label: Football
//	    data:
//	      - keys: [win, goal]
//	        me: ...
//	        you: ...
type Overlay struct {
	Categories []models.CategoryTable `yaml:"categories"`
}

// LoadOverlay reads and parses an overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOverlay(data)
}

// ParseOverlay parses overlay YAML and validates every table in it.
func ParseOverlay(data []byte) (*Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse phrasebook: %w", err)
	}
	for i := range o.Categories {
		if err := Validate(&o.Categories[i]); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

// LoadWithOverlay returns the built-in book merged with the overlay at path.
// An empty path returns the built-in book.
func LoadWithOverlay(path string) (*Book, error) {
	base := Default()
	if path == "" {
		return base, nil
	}
	o, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	return base.Merge(o.Categories)
}
