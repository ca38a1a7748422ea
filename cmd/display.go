package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/wqr11/test-10x/internal/card"
)

// cardPrinter writes card listings to a terminal
type cardPrinter struct {
	w     io.Writer
	color bool
	width int
}

func newCardPrinter(w io.Writer, useColor bool) *cardPrinter {
	width := 80 // Default if we can't get terminal width
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	return &cardPrinter{w: w, color: useColor, width: width}
}

func (p *cardPrinter) paint(attr colorize.Attribute, format string, a ...interface{}) string {
	c := colorize.New(attr)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprintf(format, a...)
}

// printCards prints one numbered entry per card
func (p *cardPrinter) printCards(cards []card.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(p.w, "No cards.")
		return
	}

	indent := strings.Repeat(" ", 6)
	for i, c := range cards {
		header := fmt.Sprintf("%3d. %s %s", i+1, p.badge(c), p.paint(colorize.FgCyan, "%s", c.Category.Label()))
		fmt.Fprintln(p.w, header)

		for _, line := range wrapText(c.Title, p.width-len(indent)) {
			fmt.Fprintln(p.w, indent+p.paint(colorize.FgHiWhite, "%s", line))
		}

		fmt.Fprintln(p.w, indent+p.paint(colorize.FgRed, "$%d", c.Price)+" | by "+c.Author)
	}

	fmt.Fprintf(p.w, "\n%d cards\n", len(cards))
}

// badge returns a colored swatch for the card's badge color, or its name in brackets
func (p *cardPrinter) badge(c card.Card) string {
	if !p.color {
		return "[" + c.BadgeColor.Name() + "]"
	}

	col, err := colorful.Hex(c.BadgeColor.Hex())
	if err != nil {
		return "[" + c.BadgeColor.Name() + "]"
	}
	r, g, b := col.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
