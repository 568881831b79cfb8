package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTypes(t *testing.T) {
	tests := []struct {
		name   string
		legacy LegacyCardMeta
		want   []Type
	}{
		{"list kept", LegacyCardMeta{Types: []string{"bug"}}, []Type{TypeBug}},
		{"list filtered", LegacyCardMeta{Types: []string{"spell", "trap", "boost"}}, []Type{TypeSpell, TypeBoost}},
		{"list wins over legacy", LegacyCardMeta{Types: []string{"boost"}, Type: "虫"}, []Type{TypeBoost}},
		{"list all unknown", LegacyCardMeta{Types: []string{"trap"}, Type: "虫"}, []Type{}},
		{"empty list falls back", LegacyCardMeta{Types: []string{}, Type: "術"}, []Type{TypeSpell}},
		{"no type", LegacyCardMeta{}, []Type{}},
		{"compound", LegacyCardMeta{Type: CompoundSpellBoost}, []Type{TypeSpell, TypeBoost}},
		{"japanese single", LegacyCardMeta{Type: "虫"}, []Type{TypeBug}},
		{"english single", LegacyCardMeta{Type: "boost"}, []Type{TypeBoost}},
		{"unknown single", LegacyCardMeta{Type: "土地"}, []Type{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTypes(tt.legacy))
		})
	}
}

func TestNormalizeCard(t *testing.T) {
	c := NormalizeCard(LegacyCardMeta{
		ID:       "BT1-001",
		Name:     "カブトムシ",
		Color:    "赤",
		Cost:     4,
		Set:      "BT1",
		Rarelity: "SR",
		Type:     "虫",
	})

	assert.Equal(t, CardMeta{
		ID:       "BT1-001",
		Name:     "カブトムシ",
		Color:    ColorRed,
		Cost:     4,
		Set:      "BT1",
		Rarelity: "SR",
		Types:    []Type{TypeBug},
	}, c)
	assert.True(t, c.HasType(TypeBug))
	assert.False(t, c.HasType(TypeSpell))

	assert.Equal(t, "purple", NormalizeColor("purple"))
}

func TestGroupPriority(t *testing.T) {
	assert.Equal(t, 0, GroupPriority(&CardMeta{Types: []Type{TypeSpell, TypeBug}}))
	assert.Equal(t, 1, GroupPriority(&CardMeta{Types: []Type{TypeSpell, TypeBoost}}))
	assert.Equal(t, Unranked, GroupPriority(&CardMeta{}))
}

func TestCompareForDeck_Example(t *testing.T) {
	a1 := &CardMeta{ID: "a1", Types: []Type{TypeBug}, Cost: 3, Color: ColorRed, Rarelity: "R"}
	a2 := &CardMeta{ID: "a2", Types: []Type{TypeSpell}, Cost: 5, Color: ColorBlue, Rarelity: "SR"}

	assert.Negative(t, CompareForDeck(a1, a2))
	assert.Positive(t, CompareForDeck(a2, a1))
}

func TestCompareForDeck_Keys(t *testing.T) {
	bug := func(id string, cost int, color, rarelity string) *CardMeta {
		return &CardMeta{ID: id, Types: []Type{TypeBug}, Cost: cost, Color: color, Rarelity: rarelity}
	}
	spell := func(id string, cost int, color, rarelity string) *CardMeta {
		return &CardMeta{ID: id, Types: []Type{TypeSpell}, Cost: cost, Color: color, Rarelity: rarelity}
	}

	// red before blue among equal-cost bugs
	assert.Negative(t, CompareForDeck(bug("x", 2, ColorRed, "N"), bug("a", 2, ColorBlue, "UR")))
	// higher cost first
	assert.Negative(t, CompareForDeck(bug("x", 5, ColorGreen, "N"), bug("a", 2, ColorRed, "UR")))
	// unknown color after colorless
	assert.Negative(t, CompareForDeck(bug("x", 1, ColorColorless, "N"), bug("a", 1, "purple", "N")))
	// color is ignored outside the bug group
	assert.Negative(t, CompareForDeck(spell("x", 1, ColorGreen, "UR"), spell("a", 1, ColorRed, "SR")))
	// rarity, then id
	assert.Negative(t, CompareForDeck(spell("x", 1, ColorRed, "LR"), spell("a", 1, ColorRed, "N")))
	assert.Negative(t, CompareForDeck(spell("a", 1, ColorRed, "??"), spell("b", 1, ColorRed, "??")))
	// typeless last
	assert.Negative(t, CompareForDeck(spell("z", 0, "", ""), &CardMeta{ID: "a", Cost: 9, Rarelity: "UR"}))
	// identical
	assert.Zero(t, CompareForDeck(bug("a", 1, ColorRed, "N"), bug("a", 1, ColorRed, "N")))
}

func TestCompareForDeck_TotalOrder(t *testing.T) {
	var cards []*CardMeta
	colors := []string{ColorRed, ColorBlue, "", "purple"}
	rarities := []string{"UR", "N", "X"}
	typeSets := [][]Type{{TypeBug}, {TypeSpell}, {TypeSpell, TypeBoost}, {}}
	n := 0
	for _, types := range typeSets {
		for cost := 0; cost < 2; cost++ {
			for _, color := range colors {
				for _, r := range rarities {
					n++
					cards = append(cards, &CardMeta{
						ID:       string(rune('あ'+n%7)) + string(rune('A'+n)),
						Types:    types,
						Cost:     cost,
						Color:    color,
						Rarelity: r,
					})
				}
			}
		}
	}

	sign := func(v int) int {
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}
		return 0
	}

	for _, a := range cards {
		assert.Zero(t, CompareForDeck(a, a))
		for _, b := range cards {
			if a == b {
				continue
			}
			ab := sign(CompareForDeck(a, b))
			assert.NotZero(t, ab, "%s vs %s", a.ID, b.ID)
			assert.Equal(t, -ab, sign(CompareForDeck(b, a)), "%s vs %s", a.ID, b.ID)
			for _, c := range cards {
				if ab < 0 && sign(CompareForDeck(b, c)) < 0 {
					assert.Negative(t, CompareForDeck(a, c), "%s < %s < %s", a.ID, b.ID, c.ID)
				}
			}
		}
	}
}

func TestCompareIDs(t *testing.T) {
	assert.Zero(t, CompareIDs("c1", "c1"))
	assert.Negative(t, CompareIDs("a", "b"))
	assert.Negative(t, CompareIDs("あ", "い"))
	// width variants never compare equal
	assert.NotZero(t, CompareIDs("A", "Ａ"))
	assert.Equal(t, -CompareIDs("A", "Ａ"), CompareIDs("Ａ", "A"))
}
