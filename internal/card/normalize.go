package card

// CompoundSpellBoost is the legacy type value for cards that are both spell and boost
const CompoundSpellBoost = "術・強化"

// typeAliases maps every accepted spelling to its canonical tag.
// The source catalog is Japanese.
var typeAliases = map[string]Type{
	"bug":   TypeBug,
	"spell": TypeSpell,
	"boost": TypeBoost,
	"虫":     TypeBug,
	"術":     TypeSpell,
	"強化":    TypeBoost,
}

var colorAliases = map[string]string{
	"赤": ColorRed,
	"青": ColorBlue,
	"緑": ColorGreen,
	"無": ColorColorless,
}

// ParseType resolves a type tag spelling
func ParseType(s string) (Type, bool) {
	t, ok := typeAliases[s]
	return t, ok
}

// NormalizeColor maps Japanese color names to canonical ones; other values pass through.
func NormalizeColor(s string) string {
	if c, ok := colorAliases[s]; ok {
		return c
	}
	return s
}

// NormalizeCard converts a catalog record to its canonical form
func NormalizeCard(legacy LegacyCardMeta) CardMeta {
	return CardMeta{
		ID:       legacy.ID,
		Name:     legacy.Name,
		Color:    NormalizeColor(legacy.Color),
		Cost:     legacy.Cost,
		Set:      legacy.Set,
		Rarelity: legacy.Rarelity,
		Types:    NormalizeTypes(legacy),
	}
}

// NormalizeTypes picks the canonical tag list for a record.
//
// A non-empty Types list wins and is filtered to known tags. Otherwise the legacy
// Type string is mapped: the compound value yields spell and boost, a single known
// tag yields itself, and anything else yields no tags.
func NormalizeTypes(legacy LegacyCardMeta) []Type {
	if len(legacy.Types) > 0 {
		types := make([]Type, 0, len(legacy.Types))
		for _, raw := range legacy.Types {
			if t, ok := ParseType(raw); ok {
				types = append(types, t)
			}
		}
		return types
	}

	if legacy.Type == "" {
		return []Type{}
	}

	if legacy.Type == CompoundSpellBoost {
		return []Type{TypeSpell, TypeBoost}
	}

	if t, ok := ParseType(legacy.Type); ok {
		return []Type{t}
	}

	return []Type{}
}
