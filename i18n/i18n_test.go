package i18n

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

func TestEveryLanguageHasTheSameKeys(t *testing.T) {
	c := mustLoad(t)
	en := c.tables[Default]
	for _, code := range Supported {
		tbl, ok := c.tables[code]
		require.True(t, ok, code)
		for key := range tbl.Strings {
			_, known := en.Strings[key]
			assert.True(t, known, "%s has key %s missing from %s", code, key, Default)
		}
		assert.Len(t, tbl.Lists["assistant_steps"], len(en.Lists["assistant_steps"]), code)
		assert.NotEmpty(t, tbl.Lists["cat_lines"], code)
	}
}

func TestMatch(t *testing.T) {
	c := mustLoad(t)
	tests := []struct {
		pref string
		want string
	}{
		{pref: "ko", want: "ko"},
		{pref: "ko-KR", want: "ko"},
		{pref: "ja_JP.UTF-8", want: "ja"},
		{pref: "en_US.UTF-8", want: "en"},
		{pref: "fr", want: "en"},
		{pref: "C", want: "en"},
		{pref: "", want: "en"},
		{pref: "not a tag!", want: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.pref, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Match(tt.pref))
		})
	}
}

func TestTFallsBack(t *testing.T) {
	c := mustLoad(t)
	assert.Equal(t, "CARD ARCHIVE", c.T("win_archive"))

	c.SetLanguage("ko")
	assert.Equal(t, "카드 보관소", c.T("win_archive"))
	assert.Equal(t, "DISTORTION OS", c.T("brand"), "ko has no brand of its own")
	assert.Equal(t, "no_such_key", c.T("no_such_key"))
}

func TestTIsIdempotent(t *testing.T) {
	c := mustLoad(t)
	c.SetLanguage("ja")
	first := c.T("login_title")
	assert.Equal(t, first, c.T("login_title"))
}

func TestListFallsBack(t *testing.T) {
	c, err := Parse([]byte("en:\n  lists:\n    cat_lines: [meow]\nko:\n  strings:\n    brand: x\n"))
	require.NoError(t, err)
	c.SetLanguage("ko")
	assert.Equal(t, []string{"meow"}, c.List("cat_lines"))
	assert.Nil(t, c.List("missing"))
}

func TestNextCyclesLanguages(t *testing.T) {
	c := mustLoad(t)
	var seen []string
	for i := 0; i < 3; i++ {
		seen = append(seen, c.SetLanguage(c.Next()))
	}
	assert.Equal(t, []string{"ko", "ja", "en"}, seen)
}

func TestParseRequiresDefault(t *testing.T) {
	_, err := Parse([]byte("ko:\n  strings:\n    brand: x\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("[not a map"))
	assert.Error(t, err)
}
