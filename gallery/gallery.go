// Package gallery is the card archive: tarot cards and the artist variants
// drawn for each of them.
package gallery

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var cardsYAML []byte

// FallbackLanguage is used when a text has no translation for the requested
// language.
const FallbackLanguage = "en"

// Localized maps a language code to text.
type Localized map[string]string

// In returns the text for lang, falling back to English and then to any
// translation at all.
func (l Localized) In(lang string) string {
	if s, ok := l[lang]; ok && s != "" {
		return s
	}
	if s, ok := l[FallbackLanguage]; ok {
		return s
	}
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if l[k] != "" {
			return l[k]
		}
	}
	return ""
}

// Card is one tarot card of the archive.
type Card struct {
	ID          int       `yaml:"id"`
	Numeral     string    `yaml:"numeral"`
	Image       string    `yaml:"image"`
	Title       Localized `yaml:"title"`
	Description Localized `yaml:"description"`
}

// Code is the archive code shown in the viewer, e.g. "0017-ALPHA".
func (c Card) Code() string {
	return fmt.Sprintf("00%d-ALPHA", c.ID)
}

// Social is a link to an artist's profile.
type Social struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

// Variant is one artist's take on a card.
type Variant struct {
	No      int       `yaml:"no"`
	CardID  int       `yaml:"card"`
	Image   string    `yaml:"image"`
	Char    Localized `yaml:"char"`
	Artist  string    `yaml:"artist"`
	Pen     string    `yaml:"pen"`
	Role    Localized `yaml:"role"`
	Socials []Social  `yaml:"socials"`
}

// Catalog holds every card and variant.
type Catalog struct {
	cards    []Card
	variants []Variant
	byID     map[int]int
}

type document struct {
	Cards    []Card    `yaml:"cards"`
	Variants []Variant `yaml:"variants"`
}

// Load parses the embedded archive.
func Load() (*Catalog, error) {
	return Parse(cardsYAML)
}

// Parse reads a catalog from YAML. Card ids must be unique and every variant
// must point at a known card.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse card catalog: %w", err)
	}
	c := &Catalog{cards: doc.Cards, variants: doc.Variants, byID: make(map[int]int, len(doc.Cards))}
	for i, card := range c.cards {
		if _, dup := c.byID[card.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %d", card.ID)
		}
		c.byID[card.ID] = i
	}
	for _, v := range c.variants {
		if _, ok := c.byID[v.CardID]; !ok {
			return nil, fmt.Errorf("variant %d refers to unknown card %d", v.No, v.CardID)
		}
	}
	return c, nil
}

// Cards returns the cards in archive order.
func (c *Catalog) Cards() []Card {
	return append([]Card(nil), c.cards...)
}

// Card returns the card with the given id.
func (c *Catalog) Card(id int) (Card, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// VariantsOf returns the variants drawn for a card, in roster order.
func (c *Catalog) VariantsOf(cardID int) []Variant {
	var out []Variant
	for _, v := range c.variants {
		if v.CardID == cardID {
			out = append(out, v)
		}
	}
	return out
}

// Roster returns every variant in roster order.
func (c *Catalog) Roster() []Variant {
	return append([]Variant(nil), c.variants...)
}

// Sort selects how the archive grid is laid out.
type Sort string

const (
	// SortAll lists every variant, in card order.
	SortAll Sort = "all"
	// SortID lists cards by tarot number.
	SortID Sort = "id"
	// SortName lists cards by their title in the display language.
	SortName Sort = "name"
)

// ParseSort maps a name to a Sort. Unknown names mean SortID.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(s)) {
	case SortAll:
		return SortAll
	case SortName:
		return SortName
	default:
		return SortID
	}
}

// Next cycles through the sort orders.
func (s Sort) Next() Sort {
	switch s {
	case SortAll:
		return SortID
	case SortID:
		return SortName
	default:
		return SortAll
	}
}

// Entry is one tile of the archive grid. Variant is nil for card tiles.
type Entry struct {
	Card    Card
	Variant *Variant
}

// Label is the tile caption.
func (e Entry) Label(lang string) string {
	if e.Variant != nil {
		return e.Variant.Char.In(lang)
	}
	return e.Card.Title.In(lang)
}

// Grid lays out the archive for the given sort order and language.
func (c *Catalog) Grid(s Sort, lang string) []Entry {
	if s == SortAll {
		variants := c.Roster()
		sort.SliceStable(variants, func(i, j int) bool { return variants[i].CardID < variants[j].CardID })
		out := make([]Entry, 0, len(variants))
		for i := range variants {
			card, _ := c.Card(variants[i].CardID)
			out = append(out, Entry{Card: card, Variant: &variants[i]})
		}
		return out
	}

	cards := c.Cards()
	if s == SortName {
		col := collate.New(matchLanguage(lang))
		sort.SliceStable(cards, func(i, j int) bool {
			return col.CompareString(cards[i].Title.In(lang), cards[j].Title.In(lang)) < 0
		})
	} else {
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	}
	out := make([]Entry, 0, len(cards))
	for _, card := range cards {
		out = append(out, Entry{Card: card})
	}
	return out
}

func matchLanguage(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	return tag
}

// haystack is what the archive search matches against for a variant.
type haystack struct {
	entries []Entry
	lang    string
}

func (h haystack) String(i int) string {
	e := h.entries[i]
	return strings.Join([]string{
		e.Variant.Char.In(h.lang),
		e.Card.Title.In(h.lang),
		e.Variant.Artist,
		e.Variant.Pen,
	}, " ")
}

func (h haystack) Len() int { return len(h.entries) }

// Search fuzzy-matches query against character names, card titles, artists
// and pen names. Results are variant tiles, best match first. An empty query
// returns the SortAll grid.
func (c *Catalog) Search(query, lang string) []Entry {
	all := c.Grid(SortAll, lang)
	query = strings.TrimSpace(query)
	if query == "" {
		return all
	}
	matches := fuzzy.FindFrom(query, haystack{entries: all, lang: lang})
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out
}
