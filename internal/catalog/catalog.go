package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wqr11/test-10x/internal/card"
)

//go:embed cards.toml
var embeddedCards string

// ErrInvalidCard is returned when a catalog file holds a card that cannot be displayed
var ErrInvalidCard = errors.New("invalid card")

// Catalog is an immutable ordered list of cards
type Catalog struct {
	ID   string
	Name string
	Path string

	cards []card.Card
}

// File is the on-disk layout of a catalog TOML file
type File struct {
	Catalog Section     `toml:"catalog"`
	Cards   []card.Card `toml:"cards"`
}

// Section holds catalog metadata
type Section struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Embedded returns the TOML source of the built-in catalog
func Embedded() string {
	return embeddedCards
}

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	c, err := parse(embeddedCards, "")
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load loads a catalog from a TOML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	return parse(string(data), path)
}

// New builds a catalog from an in-memory card list
func New(cards []card.Card) (*Catalog, error) {
	for i, c := range cards {
		if err := check(c); err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
	}
	return &Catalog{cards: append([]card.Card(nil), cards...)}, nil
}

func parse(data, path string) (*Catalog, error) {
	var file File
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}

	c, err := New(file.Cards)
	if err != nil {
		return nil, err
	}
	c.ID = file.Catalog.ID
	c.Name = file.Catalog.Name
	c.Path = path
	return c, nil
}

// check enforces what rendering relies on; softer rules live in the validator
func check(c card.Card) error {
	if !c.Category.Valid() {
		return fmt.Errorf("%w: missing category", ErrInvalidCard)
	}
	if !c.BadgeColor.Valid() {
		return fmt.Errorf("%w: missing badge color", ErrInvalidCard)
	}
	if c.Price < 0 {
		return fmt.Errorf("%w: negative price %d", ErrInvalidCard, c.Price)
	}
	if c.Picture < 1 {
		return fmt.Errorf("%w: picture must be at least 1, got %d", ErrInvalidCard, c.Picture)
	}
	return nil
}

// Len returns the number of cards
func (c *Catalog) Len() int {
	return len(c.cards)
}

// All returns every card in catalog order
func (c *Catalog) All() []card.Card {
	return append([]card.Card(nil), c.cards...)
}

// CardsByCategory returns the cards of one category in catalog order.
// A nil category returns every card.
func (c *Catalog) CardsByCategory(category *card.Category) []card.Card {
	if category == nil {
		return c.All()
	}

	result := []card.Card{}
	for _, cd := range c.cards {
		if cd.Category == *category {
			result = append(result, cd)
		}
	}
	return result
}

// CardsByKey filters by a tab key such as "MARKETING".
// Unknown keys match nothing.
func (c *Catalog) CardsByKey(key string) []card.Card {
	category, ok := card.CategoryByKey(key)
	if !ok {
		return []card.Card{}
	}
	return c.CardsByCategory(&category)
}

// Search returns the cards whose title, author or category label contains
// query, ignoring case. An empty query matches every card.
func (c *Catalog) Search(query string) []card.Card {
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	result := []card.Card{}
	for _, cd := range c.cards {
		for _, field := range []string{cd.Title, cd.Author, cd.Category.Label()} {
			if strings.Contains(lower.String(field), needle) {
				result = append(result, cd)
				break
			}
		}
	}
	return result
}
