package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arcanaland/mushikago/internal/card"
	"github.com/arcanaland/mushikago/internal/log"
)

func init() {
	logger := zap.NewExample()
	log.SetLogger(logger.Sugar())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NotZero(t, c.Len())

	kabuto, ok := c.Card("MK1-001")
	require.True(t, ok)
	assert.Equal(t, card.ColorRed, kabuto.Color)
	assert.Equal(t, []card.Type{card.TypeBug}, kabuto.Types)

	uka, ok := c.Card("MK1-015")
	require.True(t, ok)
	assert.Equal(t, []card.Type{card.TypeSpell, card.TypeBoost}, uka.Types)

	kago, ok := c.Card("MK2-008")
	require.True(t, ok)
	assert.Empty(t, kago.Types)

	_, ok = c.Card("nope")
	assert.False(t, ok)
}

func TestNew_LastDuplicateWins(t *testing.T) {
	c := New([]card.LegacyCardMeta{
		{ID: "a", Name: "first", Type: "虫"},
		{ID: "a", Name: "second", Type: "術"},
	})

	assert.Equal(t, 2, c.Len())
	a, ok := c.Card("a")
	require.True(t, ok)
	assert.Equal(t, "second", a.Name)
}

func TestSorted(t *testing.T) {
	c := New([]card.LegacyCardMeta{
		{ID: "s", Type: "術", Cost: 9},
		{ID: "none", Cost: 9},
		{ID: "b-blue", Type: "虫", Color: "青", Cost: 2},
		{ID: "b-red", Type: "虫", Color: "赤", Cost: 2},
		{ID: "b-big", Types: []string{"bug"}, Color: "green", Cost: 8},
	})

	var ids []string
	for _, m := range c.Sorted() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"b-big", "b-red", "b-blue", "s", "none"}, ids)

	// catalog order untouched
	assert.Equal(t, "s", c.Cards()[0].ID)
}

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()

	jsonPath := writeFile(t, dir, "cards.json",
		`[{"id":"j1","name":"J","color":"赤","cost":1,"set":"S","rarelity":"N","type":"虫"}]`)
	yamlPath := writeFile(t, dir, "cards.yaml", `
- id: y1
  name: Y
  color: 青
  cost: 2
  set: S
  rarelity: R
  types: [術, 強化]
`)
	tomlPath := writeFile(t, dir, "cards.toml", `
[[cards]]
id = "t1"
name = "T"
color = "緑"
cost = 3
set = "S"
rarelity = "SR"
type = "術・強化"
`)

	tests := []struct {
		path  string
		id    string
		color string
		types []card.Type
	}{
		{jsonPath, "j1", card.ColorRed, []card.Type{card.TypeBug}},
		{yamlPath, "y1", card.ColorBlue, []card.Type{card.TypeSpell, card.TypeBoost}},
		{tomlPath, "t1", card.ColorGreen, []card.Type{card.TypeSpell, card.TypeBoost}},
	}

	for _, tt := range tests {
		t.Run(filepath.Ext(tt.path), func(t *testing.T) {
			c, err := Load(tt.path)
			require.NoError(t, err)
			m, ok := c.Card(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.color, m.Color)
			assert.Equal(t, tt.types, m.Types)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "cards.csv", "id,name"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(writeFile(t, dir, "broken.json", "[{"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
