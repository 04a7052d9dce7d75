// Package i18n holds the localized strings of the desktop.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed strings.yaml
var stringsYAML []byte

// Default is the language every other table falls back to.
const Default = "en"

// Supported lists the languages in switcher order.
var Supported = []string{"en", "ko", "ja"}

type table struct {
	Strings map[string]string   `yaml:"strings"`
	Lists   map[string][]string `yaml:"lists"`
}

// Catalog looks up strings in the current language.
type Catalog struct {
	tables  map[string]table
	lang    string
	matcher language.Matcher
	tags    []language.Tag
}

// Load parses the embedded string tables.
func Load() (*Catalog, error) {
	return Parse(stringsYAML)
}

// Parse reads string tables from YAML, one top-level key per language.
// The default language must be present.
func Parse(data []byte) (*Catalog, error) {
	tables := map[string]table{}
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse string tables: %w", err)
	}
	if _, ok := tables[Default]; !ok {
		return nil, fmt.Errorf("string tables have no %q table", Default)
	}
	c := &Catalog{tables: tables, lang: Default}
	for _, code := range Supported {
		if _, ok := tables[code]; ok {
			c.tags = append(c.tags, language.Make(code))
		}
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Language returns the current language code.
func (c *Catalog) Language() string {
	return c.lang
}

// SetLanguage switches to the table best matching pref, e.g. "ko-KR" or
// "ja_JP.UTF-8", and returns the code it picked.
func (c *Catalog) SetLanguage(pref string) string {
	c.lang = c.Match(pref)
	return c.lang
}

// Match returns the supported language closest to pref, or the default.
func (c *Catalog) Match(pref string) string {
	pref = normalize(pref)
	if pref == "" {
		return Default
	}
	tag, err := language.Parse(pref)
	if err != nil {
		return Default
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	base, _ := c.tags[idx].Base()
	return base.String()
}

// normalize turns POSIX locale names such as "ko_KR.UTF-8" into BCP 47.
func normalize(pref string) string {
	if i := strings.IndexAny(pref, ".@"); i >= 0 {
		pref = pref[:i]
	}
	pref = strings.ReplaceAll(strings.TrimSpace(pref), "_", "-")
	if pref == "C" || pref == "POSIX" {
		return ""
	}
	return pref
}

// Next returns the language after the current one in switcher order.
func (c *Catalog) Next() string {
	for i, code := range Supported {
		if code == c.lang {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Default
}

// T returns the string for key in the current language. Missing keys fall
// back to the default language, then to the key itself.
func (c *Catalog) T(key string) string {
	if s, ok := c.tables[c.lang].Strings[key]; ok {
		return s
	}
	if s, ok := c.tables[Default].Strings[key]; ok {
		return s
	}
	return key
}

// List returns the list for key in the current language, falling back to the
// default language.
func (c *Catalog) List(key string) []string {
	if l, ok := c.tables[c.lang].Lists[key]; ok && len(l) > 0 {
		return l
	}
	return c.tables[Default].Lists[key]
}
