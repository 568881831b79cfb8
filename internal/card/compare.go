package card

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Unranked is the priority of anything the fixed orders do not know
const Unranked = 99

var typePriority = map[Type]int{
	TypeBug:   0,
	TypeSpell: 1,
	TypeBoost: 1,
}

var colorPriority = map[string]int{
	ColorRed:       0,
	ColorBlue:      1,
	ColorGreen:     2,
	ColorColorless: 3,
}

var rarelityPriority = map[string]int{
	"UR": 0,
	"LR": 1,
	"SR": 2,
	"R":  3,
	"N":  4,
}

// collate.Collator keeps internal buffers and is not safe for concurrent use.
var (
	collatorMu sync.Mutex
	jaCollator = collate.New(language.Japanese)
)

// GroupPriority returns the lowest priority among the card's types, or Unranked
// for a card without types.
func GroupPriority(c *CardMeta) int {
	if len(c.Types) == 0 {
		return Unranked
	}
	group := Unranked
	for _, t := range c.Types {
		if p, ok := typePriority[t]; ok && p < group {
			group = p
		}
	}
	return group
}

func ColorPriority(color string) int {
	return priority(colorPriority, color)
}

func RarelityPriority(rarelity string) int {
	return priority(rarelityPriority, rarelity)
}

func priority(order map[string]int, key string) int {
	if p, ok := order[key]; ok {
		return p
	}
	return Unranked
}

// CompareForDeck orders cards for display in a deck: bugs, then spells and
// boosts, then typeless cards; higher cost first; bugs by color; then rarity;
// then ID.
func CompareForDeck(a, b *CardMeta) int {
	groupA := GroupPriority(a)
	groupB := GroupPriority(b)
	if groupA != groupB {
		return groupA - groupB
	}

	if a.Cost != b.Cost {
		return b.Cost - a.Cost
	}

	if groupA == 0 {
		if diff := ColorPriority(a.Color) - ColorPriority(b.Color); diff != 0 {
			return diff
		}
	}

	if diff := RarelityPriority(a.Rarelity) - RarelityPriority(b.Rarelity); diff != 0 {
		return diff
	}

	return CompareIDs(a.ID, b.ID)
}

// CompareIDs compares IDs with Japanese collation. IDs the collator considers
// equal but that differ byte-wise fall back to a plain string comparison, so
// only identical IDs compare as 0.
func CompareIDs(a, b string) int {
	if a == b {
		return 0
	}

	collatorMu.Lock()
	c := jaCollator.CompareString(a, b)
	collatorMu.Unlock()

	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
