// Package page holds the host document the catalog is rendered into,
// together with the small set of DOM operations the view needs.
package page

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

//go:embed index.html
var indexHTML string

// Element ids the view binds to
const (
	TabsID   = "tabs"
	CardsID  = "cards"
	SearchID = "search__input"
	LoadID   = "load_button"
)

// Document is a parsed host page
type Document struct {
	Root *html.Node
}

// Parse parses a host page
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing document: %w", err)
	}
	return &Document{Root: root}, nil
}

// Default parses the page bundled with the binary
func Default() (*Document, error) {
	return Parse(strings.NewReader(indexHTML))
}

// Render writes the whole document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

// String renders the document, returning an empty string on failure
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// ElementByID returns the first element with the given id, or nil
func (d *Document) ElementByID(id string) *html.Node {
	return Find(d.Root, func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// ElementsByClass returns every element carrying any of the classes, in document order
func (d *Document) ElementsByClass(classes ...string) []*html.Node {
	return FindAll(d.Root, func(n *html.Node) bool {
		for _, class := range classes {
			if HasClass(n, class) {
				return true
			}
		}
		return false
	})
}

// Find returns the first element below or at n matching match, depth first
func Find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element below or at n matching match, depth first
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

// Closest walks from n up through its ancestors and returns the first
// element that has class, or nil
func Closest(n *html.Node, class string) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && HasClass(n, class) {
			return n
		}
	}
	return nil
}

// Contains reports whether n is ancestor itself or one of its descendants
func Contains(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Attr returns the value of an attribute and whether it is present
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether the element's class list contains class
func HasClass(n *html.Node, class string) bool {
	for _, c := range classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class to the element unless already present
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.Join(append(classes(n), class), " "))
}

// RemoveClass removes every given class from the element
func RemoveClass(n *html.Node, remove ...string) {
	current := classes(n)
	before := len(current)
	kept := current[:0]
	for _, c := range current {
		drop := false
		for _, r := range remove {
			if c == r {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	if len(kept) == before {
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// ReplaceChildren removes every child of n and appends nodes in order
func ReplaceChildren(n *html.Node, nodes ...*html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	AppendChildren(n, nodes...)
}

// AppendChildren appends nodes to n in order
func AppendChildren(n *html.Node, nodes ...*html.Node) {
	for _, c := range nodes {
		n.AppendChild(c)
	}
}
