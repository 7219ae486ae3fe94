// Package pricing computes deterministic cost estimates from an embedded
// feature catalog. No model output ever influences these numbers.
package pricing

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogFeature is one sellable feature with its fixed price and timeline.
type CatalogFeature struct {
	ID           string `yaml:"id"`
	Category     string `yaml:"category"`
	Price        int64  `yaml:"price"`
	TimelineDays int    `yaml:"timelineDays"`
	Complexity   string `yaml:"complexity"`
}

// Catalog is the priced feature inventory, loaded once at startup.
type Catalog struct {
	Categories []string
	features   []CatalogFeature
	byID       map[string]CatalogFeature
}

type catalogFile struct {
	Categories []string         `yaml:"categories"`
	Features   []CatalogFeature `yaml:"features"`
}

// LoadCatalog parses the embedded catalog and indexes features by id.
func LoadCatalog() (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(catalogYAML, &f); err != nil {
		return nil, fmt.Errorf("parse feature catalog: %w", err)
	}
	if len(f.Features) == 0 {
		return nil, fmt.Errorf("feature catalog is empty")
	}

	byID := make(map[string]CatalogFeature, len(f.Features))
	for _, feat := range f.Features {
		if feat.ID == "" || feat.Price < 0 {
			return nil, fmt.Errorf("invalid catalog entry %q", feat.ID)
		}
		if _, dup := byID[feat.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", feat.ID)
		}
		byID[feat.ID] = feat
	}

	return &Catalog{
		Categories: f.Categories,
		features:   f.Features,
		byID:       byID,
	}, nil
}

// Feature returns the catalog entry for id, if present.
func (c *Catalog) Feature(id string) (CatalogFeature, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// Features returns all catalog entries in catalog order.
func (c *Catalog) Features() []CatalogFeature {
	return c.features
}

func (c *Catalog) Len() int {
	return len(c.features)
}
