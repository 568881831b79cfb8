package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/mushikago/internal/card"
	"github.com/arcanaland/mushikago/internal/log"
)

//go:embed cards.json
var defaultCards []byte

// ErrUnsupportedFormat is returned for catalog files that are not JSON, YAML or TOML
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Catalog holds every known card, normalized, with an index by ID.
// It is built once and never mutated.
type Catalog struct {
	cards []card.CardMeta
	byID  map[string]*card.CardMeta
}

// tomlCatalog is the TOML layout: an array of [[cards]] tables
type tomlCatalog struct {
	Cards []card.LegacyCardMeta `toml:"cards"`
}

// New normalizes the records and indexes them by ID. On duplicate IDs the last
// record wins the index.
func New(records []card.LegacyCardMeta) *Catalog {
	c := &Catalog{
		cards: make([]card.CardMeta, len(records)),
		byID:  make(map[string]*card.CardMeta, len(records)),
	}
	for i, r := range records {
		c.cards[i] = card.NormalizeCard(r)
	}
	for i := range c.cards {
		if _, dup := c.byID[c.cards[i].ID]; dup {
			log.Warnw("Duplicate card ID in catalog", "id", c.cards[i].ID)
		}
		c.byID[c.cards[i].ID] = &c.cards[i]
	}
	return c
}

// Default returns the catalog embedded in the binary
func Default() *Catalog {
	return New(DefaultRecords())
}

// DefaultRecords returns the raw records of the embedded catalog
func DefaultRecords() []card.LegacyCardMeta {
	records, err := decodeJSON(defaultCards)
	if err != nil {
		// The embedded file is part of the build
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return records
}

// Load reads a catalog file and normalizes it
func Load(path string) (*Catalog, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d card record(s) from %s", len(records), path)
	return New(records), nil
}

// ReadRecords reads the raw records of a catalog file. The format is chosen
// by file extension.
func ReadRecords(path string) ([]card.LegacyCardMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	var records []card.LegacyCardMeta
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		records, err = decodeJSON(data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	case ".toml":
		var tc tomlCatalog
		_, err = toml.Decode(string(data), &tc)
		records = tc.Cards
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog %s: %w", path, err)
	}

	return records, nil
}

func decodeJSON(data []byte) ([]card.LegacyCardMeta, error) {
	var records []card.LegacyCardMeta
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// Card looks a card up by ID
func (c *Catalog) Card(id string) (*card.CardMeta, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Len returns the number of records, duplicates included
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Cards returns the cards in catalog order
func (c *Catalog) Cards() []card.CardMeta {
	return slices.Clone(c.cards)
}

// Sorted returns the cards in deck order
func (c *Catalog) Sorted() []card.CardMeta {
	sorted := c.Cards()
	slices.SortStableFunc(sorted, func(a, b card.CardMeta) int {
		return card.CompareForDeck(&a, &b)
	})
	return sorted
}
