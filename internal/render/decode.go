package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/wqr11/test-10x/internal/card"
	"github.com/wqr11/test-10x/internal/page"
)

// DecodeCard reads a card back from an element produced by RenderCard.
// It reports false when n is not a card element or a field is unreadable.
func DecodeCard(n *html.Node) (card.Card, bool) {
	var c card.Card
	if n.Type != html.ElementNode || !page.HasClass(n, CardClass) {
		return c, false
	}

	bg := findClass(n, "card__bg")
	badge := findClass(n, "card__badge")
	title := page.Find(n, func(el *html.Node) bool { return el != n && el.Data == "h6" })
	price := findClass(n, "card__price")
	author := findClass(n, "card__author")
	if bg == nil || badge == nil || title == nil || price == nil || author == nil {
		return c, false
	}

	var ok bool
	var err error

	if c.Picture, err = strconv.Atoi(dataPicture(bg)); err != nil {
		return c, false
	}
	if c.Category, ok = card.CategoryByLabel(strings.TrimSpace(textContent(badge))); !ok {
		return c, false
	}
	for _, class := range strings.Fields(classAttr(badge)) {
		if name, found := strings.CutPrefix(class, BadgeClassPrefix); found {
			c.BadgeColor, _ = card.BadgeColorByName(name)
		}
	}
	if !c.BadgeColor.Valid() {
		return c, false
	}

	c.Title = strings.TrimSpace(textContent(title))

	amount, found := strings.CutPrefix(strings.TrimSpace(textContent(price)), CurrencySign)
	if !found {
		return c, false
	}
	if c.Price, err = strconv.Atoi(amount); err != nil {
		return c, false
	}

	c.Author = strings.TrimPrefix(strings.TrimSpace(textContent(author)), "| by ")

	return c, true
}

func findClass(n *html.Node, class string) *html.Node {
	return page.Find(n, func(el *html.Node) bool { return el != n && page.HasClass(el, class) })
}

func dataPicture(n *html.Node) string {
	v, _ := page.Attr(n, "data-picture")
	return v
}

func classAttr(n *html.Node) string {
	v, _ := page.Attr(n, "class")
	return v
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
