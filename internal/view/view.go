// Package view wires tab, search and load interactions on a host page to the
// catalog and keeps the cards container in sync.
//
// A Controller is driven from a single goroutine and is not safe for
// concurrent use.
package view

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/wqr11/test-10x/internal/card"
	"github.com/wqr11/test-10x/internal/page"
	"github.com/wqr11/test-10x/internal/render"
)

// ErrMissingAnchor is returned when the host page lacks an element the view binds to
var ErrMissingAnchor = errors.New("missing anchor element")

const (
	tabClass          = "tab"
	tabActiveClass    = "tab--active"
	tabTextClass      = "tab__text"
	tabTextActive     = "tab__text--active"
	categoryAttribute = "data-category"
)

// Store is the read side of the catalog the view filters
type Store interface {
	CardsByCategory(category *card.Category) []card.Card
	CardsByKey(key string) []card.Card
	Search(query string) []card.Card
}

// Controller handles user interactions against one document
type Controller struct {
	doc    *page.Document
	store  Store
	logger *slog.Logger

	tabs   *html.Node
	cards  *html.Node
	search *html.Node
	load   *html.Node

	// markup of the cards container as of the last tab click or search
	cardNodes string
}

// New binds a controller to the anchors of doc
func New(doc *page.Document, store Store, logger *slog.Logger) (*Controller, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		doc:    doc,
		store:  store,
		logger: logger,
	}

	anchors := []struct {
		id   string
		node **html.Node
	}{
		{page.TabsID, &c.tabs},
		{page.CardsID, &c.cards},
		{page.SearchID, &c.search},
		{page.LoadID, &c.load},
	}
	for _, a := range anchors {
		*a.node = doc.ElementByID(a.id)
		if *a.node == nil {
			return nil, fmt.Errorf("%w: #%s", ErrMissingAnchor, a.id)
		}
	}

	snapshot, err := render.InnerHTML(c.cards)
	if err != nil {
		return nil, fmt.Errorf("error reading cards container: %w", err)
	}
	c.cardNodes = snapshot

	return c, nil
}

// Click routes a click on target to the interactive element it lands on.
// It reports false when target belongs to neither the load button nor a tab.
func (c *Controller) Click(target *html.Node) (bool, error) {
	if page.Contains(c.load, target) {
		return true, c.ClickLoad()
	}
	return c.ClickTab(target)
}

// ClickTab handles a click on target inside the page. Clicks that do not land
// on a tab within the tabs container are ignored and report false.
func (c *Controller) ClickTab(target *html.Node) (bool, error) {
	tab := page.Closest(target, tabClass)
	if tab == nil || !page.Contains(c.tabs, tab) {
		return false, nil
	}

	for _, el := range c.doc.ElementsByClass(tabActiveClass, tabTextActive) {
		page.RemoveClass(el, tabActiveClass, tabTextActive)
	}

	page.AddClass(tab, tabActiveClass)
	if text := page.Find(tab, func(n *html.Node) bool { return n != tab && page.HasClass(n, tabTextClass) }); text != nil {
		page.AddClass(text, tabTextActive)
	}

	var cards []card.Card
	key, ok := page.Attr(tab, categoryAttribute)
	if ok {
		cards = c.store.CardsByKey(key)
	} else {
		cards = c.store.CardsByCategory(nil)
	}

	c.logger.Debug("tab clicked", "category", key, "cards", len(cards))
	return true, c.show(cards)
}

// ClickTabKey clicks the tab whose category key is key. An empty key or
// "all" selects the tab without a category. It reports false when no such
// tab exists.
func (c *Controller) ClickTabKey(key string) (bool, error) {
	tab := c.Tab(key)
	if tab == nil {
		return false, nil
	}
	return c.ClickTab(tab)
}

// Tab returns the tab element for a category key, or nil
func (c *Controller) Tab(key string) *html.Node {
	wantAll := key == "" || strings.EqualFold(key, "all")
	return page.Find(c.tabs, func(n *html.Node) bool {
		if !page.HasClass(n, tabClass) {
			return false
		}
		v, ok := page.Attr(n, categoryAttribute)
		if wantAll {
			return !ok
		}
		return ok && v == key
	})
}

// Input handles the search field changing to value
func (c *Controller) Input(value string) error {
	page.SetAttr(c.search, "value", value)

	cards := c.store.Search(value)
	c.logger.Debug("search input", "query", value, "cards", len(cards))
	return c.show(cards)
}

// ClickLoad appends the snapshot taken at the last tab click or search to
// the cards container. It repeats what is already shown; nothing new is
// fetched.
func (c *Controller) ClickLoad() error {
	nodes, err := html.ParseFragment(strings.NewReader(c.cardNodes), c.cards)
	if err != nil {
		return fmt.Errorf("error parsing snapshot: %w", err)
	}
	page.AppendChildren(c.cards, nodes...)

	c.logger.Debug("load clicked", "appended", len(nodes))
	return nil
}

func (c *Controller) show(cards []card.Card) error {
	page.ReplaceChildren(c.cards, render.RenderCards(cards)...)

	snapshot, err := render.InnerHTML(c.cards)
	if err != nil {
		return fmt.Errorf("error reading cards container: %w", err)
	}
	c.cardNodes = snapshot
	return nil
}

// Snapshot returns the cached markup used by ClickLoad
func (c *Controller) Snapshot() string {
	return c.cardNodes
}

// CardsHTML returns the current markup of the cards container
func (c *Controller) CardsHTML() (string, error) {
	return render.InnerHTML(c.cards)
}

// ActiveTab returns the currently active tab element, or nil
func (c *Controller) ActiveTab() *html.Node {
	return page.Find(c.tabs, func(n *html.Node) bool { return page.HasClass(n, tabActiveClass) })
}

// DisplayedCards returns the cards currently in the container, in order.
// Elements that are not rendered cards are skipped.
func (c *Controller) DisplayedCards() []card.Card {
	var cards []card.Card
	for n := c.cards.FirstChild; n != nil; n = n.NextSibling {
		if cd, ok := render.DecodeCard(n); ok {
			cards = append(cards, cd)
		}
	}
	return cards
}

// DisplayedTitles returns the titles of the cards in the container, in order
func (c *Controller) DisplayedTitles() []string {
	var titles []string
	for _, cd := range c.DisplayedCards() {
		titles = append(titles, cd.Title)
	}
	return titles
}

// Document returns the document the controller is bound to
func (c *Controller) Document() *page.Document {
	return c.doc
}
