// Package render builds the HTML markup for course cards.
package render

import (
	"bytes"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/wqr11/test-10x/internal/card"
)

const (
	// CardClass marks the container element of every rendered card
	CardClass = "card"
	// BadgeClassPrefix is combined with the badge color to form the badge modifier class
	BadgeClassPrefix = "card__badge--"
	// CurrencySign prefixes every price
	CurrencySign = "$"
)

// RenderCards builds one card element per card, in input order.
// Every call allocates fresh nodes.
func RenderCards(cards []card.Card) []*html.Node {
	nodes := make([]*html.Node, 0, len(cards))
	for _, c := range cards {
		nodes = append(nodes, RenderCard(c))
	}
	return nodes
}

// RenderCard builds the element for a single card
func RenderCard(c card.Card) *html.Node {
	container := element(atom.Div, CardClass)

	bg := element(atom.Div, "card__bg")
	bg.Attr = append(bg.Attr, html.Attribute{Key: "data-picture", Val: strconv.Itoa(c.Picture)})
	container.AppendChild(bg)

	content := element(atom.Div, "card__content")
	container.AppendChild(content)

	badge := element(atom.P, "text card__badge "+BadgeClassPrefix+c.BadgeColor.Name())
	badge.AppendChild(text(c.Category.Label()))
	content.AppendChild(badge)

	title := element(atom.H6, "text text--bold")
	title.AppendChild(text(c.Title))
	content.AppendChild(title)

	details := element(atom.P, "text")
	price := element(atom.Span, "card__price text--danger")
	price.AppendChild(text(CurrencySign + strconv.Itoa(c.Price)))
	details.AppendChild(price)
	details.AppendChild(text(" "))
	author := element(atom.Span, "card__author text--regular")
	author.AppendChild(text("| by " + c.Author))
	details.AppendChild(author)
	content.AppendChild(details)

	return container
}

// Serialize renders nodes back to markup, one after another
func Serialize(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// InnerHTML renders the children of n
func InnerHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
