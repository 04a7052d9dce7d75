package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoadEmbeddedCatalog(t *testing.T) {
	c := mustLoad(t)
	assert.Len(t, c.Cards(), 8)
	assert.Len(t, c.Roster(), 10)

	star, ok := c.Card(17)
	require.True(t, ok)
	assert.Equal(t, "The Star", star.Title.In("en"))
	assert.Equal(t, "별", star.Title.In("ko"))
	assert.Equal(t, "0017-ALPHA", star.Code())

	_, ok = c.Card(99)
	assert.False(t, ok)
}

func TestLocalizedFallback(t *testing.T) {
	l := Localized{"en": "hello", "ja": "こんにちは"}
	assert.Equal(t, "こんにちは", l.In("ja"))
	assert.Equal(t, "hello", l.In("ko"))
	assert.Equal(t, "only", Localized{"ja": "only"}.In("ko"))
	assert.Equal(t, "", Localized{}.In("en"))
}

func TestVariantsOf(t *testing.T) {
	c := mustLoad(t)
	assert.Len(t, c.VariantsOf(13), 3)
	assert.Len(t, c.VariantsOf(1), 2)
	assert.Len(t, c.VariantsOf(0), 1)
	assert.Empty(t, c.VariantsOf(21), "a card nobody has drawn yet")
}

func TestGrid(t *testing.T) {
	c := mustLoad(t)

	t.Run("all lists every variant in card order", func(t *testing.T) {
		grid := c.Grid(SortAll, "en")
		require.Len(t, grid, 10)
		last := -1
		for _, e := range grid {
			require.NotNil(t, e.Variant)
			assert.Equal(t, e.Variant.CardID, e.Card.ID)
			assert.GreaterOrEqual(t, e.Card.ID, last)
			last = e.Card.ID
		}
		assert.Equal(t, "Nova Vale", grid[0].Label("en"))
	})

	t.Run("id lists cards by number", func(t *testing.T) {
		grid := c.Grid(SortID, "en")
		require.Len(t, grid, 8)
		ids := make([]int, 0, len(grid))
		for _, e := range grid {
			assert.Nil(t, e.Variant)
			ids = append(ids, e.Card.ID)
		}
		assert.Equal(t, []int{0, 1, 2, 6, 10, 13, 17, 21}, ids)
	})

	t.Run("name sorts by localized title", func(t *testing.T) {
		en := c.Grid(SortName, "en")
		assert.Equal(t, "Death", en[0].Label("en"))
		assert.Equal(t, "Wheel of Fortune", en[len(en)-1].Label("en"))

		ko := c.Grid(SortName, "ko")
		assert.Equal(t, "마법사", ko[0].Label("ko"))
		assert.Equal(t, "죽음", ko[len(ko)-1].Label("ko"))
	})
}

func TestSortCycle(t *testing.T) {
	assert.Equal(t, SortID, SortAll.Next())
	assert.Equal(t, SortName, SortID.Next())
	assert.Equal(t, SortAll, SortName.Next())

	assert.Equal(t, SortAll, ParseSort("ALL"))
	assert.Equal(t, SortName, ParseSort("name"))
	assert.Equal(t, SortID, ParseSort("bogus"))
}

func TestSearch(t *testing.T) {
	c := mustLoad(t)

	got := c.Search("auditor", "en")
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, 13, e.Card.ID)
	}

	assert.Len(t, c.Search("  ", "en"), 10, "blank queries list everything")
	assert.Empty(t, c.Search("zzzzzz", "en"))

	byPen := c.Search("sofialind", "en")
	require.NotEmpty(t, byPen)
	assert.Equal(t, "Lumen", byPen[0].Label("en"))
}

func TestParseRejectsBrokenCatalogs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "invalid yaml", doc: "cards: [\n"},
		{name: "duplicate card", doc: "cards:\n  - id: 1\n  - id: 1\n"},
		{name: "orphan variant", doc: "cards:\n  - id: 1\nvariants:\n  - no: 1\n    card: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
