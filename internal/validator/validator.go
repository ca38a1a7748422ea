package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/wqr11/test-10x/internal/card"
	"github.com/wqr11/test-10x/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	// CatalogPath is the catalog file to check; empty means the built-in catalog
	CatalogPath string
	Results     ValidationResults

	config CatalogConfig
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateCatalogToml(); err != nil {
		return v.Results, err
	}

	v.validateCards()
	v.validatePictures()
	v.validateBadgeColors()
	v.validateCategories()

	return v.Results, nil
}

func (v *Validator) validateCatalogToml() error {
	data := catalog.Embedded()
	if v.CatalogPath != "" {
		raw, err := os.ReadFile(v.CatalogPath)
		if err != nil {
			return fmt.Errorf("error reading catalog: %w", err)
		}
		data = string(raw)
	}

	if _, err := toml.Decode(data, &v.config); err != nil {
		return fmt.Errorf("error parsing catalog: %w", err)
	}

	if v.config.Catalog.ID == "" {
		v.Results.Warnings = append(v.Results.Warnings, "catalog.id is not set")
	}

	if len(v.config.Cards) == 0 {
		v.Results.Errors = append(v.Results.Errors, "catalog has no cards")
	}
	return nil
}

// validateCards checks the fields every card needs to render
func (v *Validator) validateCards() {
	titles := make(map[string]int)

	for i, c := range v.config.Cards {
		pos := i + 1

		if _, ok := card.CategoryByKey(c.Category); !ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: unknown category %q", pos, c.Category))
		}

		if _, ok := card.BadgeColorByName(c.BadgeColor); !ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: unknown badge_color %q", pos, c.BadgeColor))
		}

		if c.Title == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: title is required", pos))
		} else if first, ok := titles[c.Title]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d: duplicate title %q (first seen on card %d)", pos, c.Title, first))
		} else {
			titles[c.Title] = pos
		}

		if c.Author == "" {
			v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("card %d: author is empty", pos))
		}

		if c.Price < 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: price_usd must not be negative, got %d", pos, c.Price))
		}
	}
}

// validatePictures checks that picture ids run 1..N
func (v *Validator) validatePictures() {
	seen := make(map[int]int)

	for i, c := range v.config.Cards {
		pos := i + 1
		if c.Picture < 1 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: picture must be at least 1, got %d", pos, c.Picture))
			continue
		}
		if first, ok := seen[c.Picture]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d: picture %d already used by card %d", pos, c.Picture, first))
			continue
		}
		seen[c.Picture] = pos
	}

	for p := 1; p <= len(v.config.Cards); p++ {
		if _, ok := seen[p]; !ok && len(seen) > 0 {
			v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("picture %d is not used by any card", p))
		}
	}
}

// validateBadgeColors reports categories whose cards use different badge colors.
// Badge colors are cosmetic, so this is never an error.
func (v *Validator) validateBadgeColors() {
	colors := make(map[string]map[string]bool)

	for _, c := range v.config.Cards {
		if _, ok := card.CategoryByKey(c.Category); !ok {
			continue
		}
		if colors[c.Category] == nil {
			colors[c.Category] = make(map[string]bool)
		}
		colors[c.Category][c.BadgeColor] = true
	}

	for _, category := range card.Categories {
		used := colors[category.Key()]
		if len(used) <= 1 {
			continue
		}
		names := make([]string, 0, len(used))
		for name := range used {
			names = append(names, name)
		}
		sort.Strings(names)
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("category %s uses several badge colors: %v", category.Key(), names))
	}
}

// validateCategories reports tabs that would show no cards
func (v *Validator) validateCategories() {
	counts := make(map[string]int)
	for _, c := range v.config.Cards {
		counts[c.Category]++
	}

	for _, category := range card.Categories {
		if counts[category.Key()] == 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("category %s has no cards", category.Key()))
		}
	}
}

// Catalog configuration structures. Enum fields stay strings here so that
// bad values are reported instead of failing the decode.
type CatalogConfig struct {
	Catalog CatalogSection `toml:"catalog"`
	Cards   []CardSection  `toml:"cards"`
}

type CatalogSection struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type CardSection struct {
	Category   string `toml:"category"`
	Title      string `toml:"title"`
	Price      int    `toml:"price_usd"`
	Author     string `toml:"author"`
	BadgeColor string `toml:"badge_color"`
	Picture    int    `toml:"picture"`
}
