package card

// Type is a canonical card type tag
type Type string

const (
	TypeBug   Type = "bug"
	TypeSpell Type = "spell"
	TypeBoost Type = "boost"
)

// Canonical color names. Any other value is kept verbatim and ranks last.
const (
	ColorRed       = "red"
	ColorBlue      = "blue"
	ColorGreen     = "green"
	ColorColorless = "colorless"
)

// CardMeta represents a normalized catalog card
type CardMeta struct {
	ID       string // Unique catalog ID
	Name     string // Display name
	Color    string // red, blue, green, colorless or an unrecognized value
	Cost     int
	Set      string
	Rarelity string // UR, LR, SR, R, N or an unrecognized value
	Types    []Type // Possibly empty
}

// HasType reports whether the card carries the given tag
func (c *CardMeta) HasType(t Type) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// LegacyCardMeta is a catalog record as stored on disk.
//
// Older records carry a single Type string (possibly the compound spell-and-boost
// value) instead of a Types list. Records are only ever read through NormalizeCard.
type LegacyCardMeta struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Color    string   `json:"color" yaml:"color" toml:"color"`
	Cost     int      `json:"cost" yaml:"cost" toml:"cost"`
	Set      string   `json:"set" yaml:"set" toml:"set"`
	Rarelity string   `json:"rarelity" yaml:"rarelity" toml:"rarelity"`
	Type     string   `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Types    []string `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
}
