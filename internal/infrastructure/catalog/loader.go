package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/internal/domain/enum"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type file struct {
	Version       string   `yaml:"version"`
	SpecialItemID int      `yaml:"specialItemId"`
	Tables        []string `yaml:"tables"`
	Items         []item   `yaml:"items"`
}

type item struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	Prices   struct {
		Full   int64 `yaml:"full"`
		Half   int64 `yaml:"half"`
		Single int64 `yaml:"single"`
	} `yaml:"prices"`
	SingleLabel string `yaml:"singleLabel"` // defaults to Plate
	Bulk        bool   `yaml:"bulk"`
}

// Default returns the catalog shipped with the binary
func Default() *entity.Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file, falling back to the embedded default for an empty path
func Load(path string) (*entity.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog
func Parse(raw []byte) (*entity.Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]entity.MenuItem, 0, len(f.Items))
	for _, it := range f.Items {
		mi, err := it.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, mi)
	}

	return entity.NewCatalog(f.Version, items, f.SpecialItemID, f.Tables)
}

func (it item) toEntity() (entity.MenuItem, error) {
	category, ok := enum.ParseCategory(it.Category)
	if !ok {
		return entity.MenuItem{}, fmt.Errorf("menu item %d: unknown category %q", it.ID, it.Category)
	}
	diet, ok := enum.ParseDietType(it.Type)
	if !ok {
		return entity.MenuItem{}, fmt.Errorf("menu item %d: unknown type %q", it.ID, it.Type)
	}

	prices := make(map[string]int64, 2)
	if it.Prices.Full != 0 {
		prices[entity.VariantFull] = it.Prices.Full
	}
	if it.Prices.Half != 0 {
		prices[entity.VariantHalf] = it.Prices.Half
	}
	if it.Prices.Single != 0 {
		if len(prices) > 0 {
			return entity.MenuItem{}, fmt.Errorf("menu item %d: single price cannot be combined with full/half", it.ID)
		}
		label := it.SingleLabel
		if label == "" {
			label = entity.VariantPlate
		}
		prices[label] = it.Prices.Single
	}

	return entity.MenuItem{
		ID:            it.ID,
		Name:          it.Name,
		Category:      category,
		DietType:      diet,
		PriceVariants: prices,
		Bulk:          it.Bulk,
	}, nil
}
