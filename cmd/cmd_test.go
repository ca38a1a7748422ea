package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wqr11/test-10x/internal/card"
	"github.com/wqr11/test-10x/internal/catalog"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "coursecards-config")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// resetFlags restores every flag to its default so commands can run more
// than once in the same process
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COURSECARDS_NO_COLOR", "true")

	resetFlags(RootCmd)
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return out.String(), err
}

func TestListCategory(t *testing.T) {
	out, err := execute(t, "", "list", "--category", "MARKETING")
	require.NoError(t, err)

	assert.Contains(t, out, "The Ultimate Google Ads Training Course")
	assert.Contains(t, out, "Brand Management & PR Communications")
	assert.Contains(t, out, "[green] Marketing")
	assert.Contains(t, out, "$100 | by Jerome Bell")
	assert.Contains(t, out, "2 cards")
	assert.NotContains(t, out, "Graphic Design Basic")
}

func TestListAll(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "9 cards")
}

func TestListUnknownCategory(t *testing.T) {
	out, err := execute(t, "", "list", "-c", "ART")
	require.NoError(t, err)
	assert.Contains(t, out, `Unknown category "ART"`)
	assert.Contains(t, out, "No cards.")
}

func TestSearch(t *testing.T) {
	out, err := execute(t, "", "search", "design")
	require.NoError(t, err)
	assert.Contains(t, out, "Graphic Design Basic")
	assert.Contains(t, out, "2 cards")

	out, err = execute(t, "", "search", "JEROME")
	require.NoError(t, err)
	assert.Contains(t, out, "1 cards")
}

func TestRenderLoadDuplicates(t *testing.T) {
	out, err := execute(t, "", "render", "--category", "MARKETING", "--load", "1", "--cards-only")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, `<div class="card">`))
	assert.Equal(t, 2, strings.Count(out, "Brand Management &amp; PR Communications"))
}

func TestRenderPage(t *testing.T) {
	out, err := execute(t, "", "render", "--category", "DESIGN")
	require.NoError(t, err)
	assert.Contains(t, out, `<button class="tab tab--active" data-category="DESIGN">`)
	assert.Contains(t, out, `<span class="tab__text tab__text--active">Design</span>`)
	assert.Equal(t, 2, strings.Count(out, `<div class="card">`))
}

func TestRenderSearch(t *testing.T) {
	out, err := execute(t, "", "render", "--search", "Jerome", "--cards-only")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, `<div class="card">`))
}

func TestRenderDefaultShowsAll(t *testing.T) {
	out, err := execute(t, "", "render", "--cards-only")
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(out, `<div class="card">`))
}

func TestRenderUnknownTab(t *testing.T) {
	_, err := execute(t, "", "render", "--category", "ART")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tab for category: ART")
}

func TestBrowseSession(t *testing.T) {
	script := strings.Join([]string{
		"tab MARKETING",
		"load",
		"search design",
		"bogus",
		"quit",
		"tab HR",
	}, "\n")

	out, err := execute(t, script, "browse")
	require.NoError(t, err)

	assert.Contains(t, out, "9 cards")
	assert.Contains(t, out, "2 cards")
	assert.Contains(t, out, "4 cards")
	assert.Contains(t, out, `Unknown command "bogus"`)
	assert.Equal(t, 2, strings.Count(out, "\n2 cards\n"), "commands after quit are not run")
}

func TestBrowseHTML(t *testing.T) {
	out, err := execute(t, "tab DEVELOPMENT\nhtml\n", "browse")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="card__bg" data-picture="7"></div>`)
}

func TestBrowseUnknownTab(t *testing.T) {
	out, err := execute(t, "tab ART\n", "browse")
	require.NoError(t, err)
	assert.Contains(t, out, `No tab for category "ART".`)
}

func TestValidateBuiltIn(t *testing.T) {
	out, err := execute(t, "", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog 'built-in' is valid.")
}

func TestValidateInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[cards]]\ncategory = \"ART\"\ntitle = \"x\"\nbadge_color = \"red\"\npicture = 1\n"), 0644))

	out, err := execute(t, "", "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, `unknown category "ART"`)
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "", "validate", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.toml")
	data := "[[cards]]\ncategory = \"DEVELOPMENT\"\ntitle = \"Go in Practice\"\nprice_usd = 10\nauthor = \"Ada\"\nbadge_color = \"red\"\npicture = 1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	out, err := execute(t, "", "list", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Go in Practice")
	assert.Contains(t, out, "1 cards")
}

func TestConfigSetDefaultTab(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := execute(t, "", "config", "set-default-tab", "DESIGN")
	require.NoError(t, err)
	assert.Contains(t, out, "Default tab set to: DESIGN")

	out, err = execute(t, "", "render", "--cards-only")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, `<div class="card">`))

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Default tab: DESIGN")
	assert.Contains(t, out, "Catalog:     (built-in)")

	_, err = execute(t, "", "config", "set-default-tab", "ART")
	require.Error(t, err)
}

func TestPrinterColorSwatch(t *testing.T) {
	var out bytes.Buffer
	p := &cardPrinter{w: &out, color: true, width: 80}
	p.printCards(catalog.Default().CardsByKey("MARKETING"))

	assert.Contains(t, out.String(), "\x1b[48;2;3;206;164m  \x1b[0m")
}

func TestPrinterWrapsTitles(t *testing.T) {
	var out bytes.Buffer
	p := &cardPrinter{w: &out, width: 30}
	p.printCards([]card.Card{{
		Category:   card.Design,
		Title:      "User Experience. Human-centered Design",
		Author:     "Cody Fisher",
		Price:      240,
		BadgeColor: card.Blue,
		Picture:    9,
	}})

	assert.Contains(t, out.String(), "      User Experience.\n      Human-centered Design\n")
	assert.Contains(t, out.String(), "      $240 | by Cody Fisher\n")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("", 20))
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 10))
	assert.Equal(t, []string{"a b c"}, wrapText("a b c", 2), "narrow widths fall back to 40")
}
