package card

import "fmt"

// Card represents a course card in the catalog
type Card struct {
	Category   Category   `toml:"category"`
	Title      string     `toml:"title"`
	Price      int        `toml:"price_usd"` // Whole US dollars
	Author     string     `toml:"author"`
	BadgeColor BadgeColor `toml:"badge_color"`
	Picture    int        `toml:"picture"` // Static asset identifier, 1..N
}

// Category is one of the fixed top-level card groupings
type Category int

const (
	Marketing Category = iota + 1
	Management
	HR
	Design
	Development
)

// Categories lists every category in tab order
var Categories = []Category{Marketing, Management, HR, Design, Development}

// Key returns the identifier used by tab data-category attributes
func (c Category) Key() string {
	switch c {
	case Marketing:
		return "MARKETING"
	case Management:
		return "MANAGEMENT"
	case HR:
		return "HR"
	case Design:
		return "DESIGN"
	case Development:
		return "DEVELOPMENT"
	}
	return ""
}

// Label returns the display text shown on badges
func (c Category) Label() string {
	switch c {
	case Marketing:
		return "Marketing"
	case Management:
		return "Management"
	case HR:
		return "HR & Recruiting"
	case Design:
		return "Design"
	case Development:
		return "Development"
	}
	return ""
}

func (c Category) String() string {
	if label := c.Label(); label != "" {
		return label
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	return c.Key() != ""
}

// CategoryByKey resolves a tab key such as "MARKETING"
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}

// CategoryByLabel resolves a badge label such as "HR & Recruiting"
func CategoryByLabel(label string) (Category, bool) {
	for _, c := range Categories {
		if c.Label() == label {
			return c, true
		}
	}
	return 0, false
}

// MarshalText encodes the category by key
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category: %d", int(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText decodes a category key
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := CategoryByKey(string(text))
	if !ok {
		return fmt.Errorf("unknown category: %q", string(text))
	}
	*c = parsed
	return nil
}

// BadgeColor is the cosmetic styling tag of a card badge
type BadgeColor int

const (
	Green BadgeColor = iota + 1
	Danger
	Blue
	Orange
	Purple
	Red
)

// BadgeColors lists every badge color
var BadgeColors = []BadgeColor{Green, Danger, Blue, Orange, Purple, Red}

// Name returns the CSS suffix of the badge color
func (b BadgeColor) Name() string {
	switch b {
	case Green:
		return "green"
	case Danger:
		return "danger"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Purple:
		return "purple"
	case Red:
		return "red"
	}
	return ""
}

// Hex returns the swatch color used when printing a badge to a terminal
func (b BadgeColor) Hex() string {
	switch b {
	case Green:
		return "#03cea4"
	case Danger:
		return "#ef233c"
	case Blue:
		return "#5a87fc"
	case Orange:
		return "#f89828"
	case Purple:
		return "#f52f6e"
	case Red:
		return "#d90429"
	}
	return "#808080"
}

func (b BadgeColor) String() string {
	if name := b.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("BadgeColor(%d)", int(b))
}

// Valid reports whether b is one of the known badge colors
func (b BadgeColor) Valid() bool {
	return b.Name() != ""
}

// BadgeColorByName resolves a badge color such as "green"
func BadgeColorByName(name string) (BadgeColor, bool) {
	for _, b := range BadgeColors {
		if b.Name() == name {
			return b, true
		}
	}
	return 0, false
}

// MarshalText encodes the badge color by name
func (b BadgeColor) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid badge color: %d", int(b))
	}
	return []byte(b.Name()), nil
}

// UnmarshalText decodes a badge color name
func (b *BadgeColor) UnmarshalText(text []byte) error {
	parsed, ok := BadgeColorByName(string(text))
	if !ok {
		return fmt.Errorf("unknown badge color: %q", string(text))
	}
	*b = parsed
	return nil
}
