package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryKeysRoundTrip(t *testing.T) {
	for _, c := range Categories {
		got, ok := CategoryByKey(c.Key())
		require.True(t, ok, "key %q", c.Key())
		assert.Equal(t, c, got)
		assert.NotEmpty(t, c.Label())
	}
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "HR & Recruiting", HR.Label())
	assert.Equal(t, "HR", HR.Key())
	assert.Equal(t, "Marketing", Marketing.String())
}

func TestCategoryByKeyUnknown(t *testing.T) {
	_, ok := CategoryByKey("Marketing")
	assert.False(t, ok, "labels are not keys")

	_, ok = CategoryByKey("")
	assert.False(t, ok)
}

func TestZeroValuesAreInvalid(t *testing.T) {
	var c Category
	var b BadgeColor
	assert.False(t, c.Valid())
	assert.False(t, b.Valid())
	assert.Equal(t, "Category(0)", c.String())

	_, err := c.MarshalText()
	assert.Error(t, err)
}

func TestUnmarshalText(t *testing.T) {
	var c Category
	require.NoError(t, c.UnmarshalText([]byte("DESIGN")))
	assert.Equal(t, Design, c)
	assert.Error(t, c.UnmarshalText([]byte("ART")))

	var b BadgeColor
	require.NoError(t, b.UnmarshalText([]byte("purple")))
	assert.Equal(t, Purple, b)
	assert.Error(t, b.UnmarshalText([]byte("teal")))
}

func TestBadgeColorNames(t *testing.T) {
	for _, b := range BadgeColors {
		got, ok := BadgeColorByName(b.Name())
		require.True(t, ok)
		assert.Equal(t, b, got)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, b.Hex())
	}
}

func TestCategoryByLabel(t *testing.T) {
	c, ok := CategoryByLabel("HR & Recruiting")
	require.True(t, ok)
	assert.Equal(t, HR, c)

	_, ok = CategoryByLabel("HR")
	assert.False(t, ok)
}
