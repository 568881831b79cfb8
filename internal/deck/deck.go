package deck

import (
	"slices"

	"github.com/arcanaland/mushikago/internal/card"
	"github.com/arcanaland/mushikago/internal/log"
)

// MaxCards is the number of slots in a deck
const MaxCards = 20

// MsgDeckFull is shown when a card is added to a full deck
const MsgDeckFull = "デッキがいっぱいです。カードを削除してから追加してください。"

// Deck is a fixed row of slots holding card IDs; "" marks an empty slot.
type Deck [MaxCards]string

// Cards returns the non-empty slots in order
func (d Deck) Cards() []string {
	cards := make([]string, 0, MaxCards)
	for _, id := range d {
		if id != "" {
			cards = append(cards, id)
		}
	}
	return cards
}

// Len returns the number of non-empty slots
func (d Deck) Len() int {
	n := 0
	for _, id := range d {
		if id != "" {
			n++
		}
	}
	return n
}

// Lookup resolves card IDs; *catalog.Catalog satisfies it
type Lookup interface {
	Card(id string) (*card.CardMeta, bool)
}

// SortAndPad sorts up to MaxCards IDs in deck order and pads the result with
// empty slots. IDs known to lookup come first; unknown IDs are ordered by ID.
func SortAndPad(lookup Lookup, ids []string) Deck {
	sorted := slices.Clone(ids)
	slices.SortStableFunc(sorted, func(idA, idB string) int {
		cardA, okA := lookup.Card(idA)
		cardB, okB := lookup.Card(idB)

		switch {
		case okA && okB:
			return card.CompareForDeck(cardA, cardB)
		case okA:
			return -1
		case okB:
			return 1
		}
		return card.CompareIDs(idA, idB)
	})

	var d Deck
	copy(d[:], sorted)
	return d
}

// Manager owns a deck and keeps its location in sync with it
type Manager struct {
	lookup   Lookup
	location Location
	notifier Notifier
	deck     Deck
}

// NewManager returns a manager holding an empty deck
func NewManager(lookup Lookup, location Location, notifier Notifier) *Manager {
	return &Manager{
		lookup:   lookup,
		location: location,
		notifier: notifier,
	}
}

// Deck returns a copy of the current slots
func (m *Manager) Deck() Deck {
	return m.deck
}

// Cards returns the non-empty slots in order
func (m *Manager) Cards() []string {
	return m.deck.Cards()
}

// Len returns the number of cards in the deck
func (m *Manager) Len() int {
	return m.deck.Len()
}

// InitializeFromLocation replaces the whole deck with the slots found in the
// location's query. When the query holds no deck key the deck is left alone.
func (m *Manager) InitializeFromLocation() {
	d, found := Decode(m.location.Search())
	if !found {
		log.Debug("No deck in location")
		return
	}
	m.deck = d
	log.Debugw("Deck loaded from location", "cards", d.Len())
}

// AddCard adds a card and re-sorts the deck. A full deck is left untouched,
// the user is alerted and false is returned.
func (m *Manager) AddCard(id string) bool {
	cards := m.deck.Cards()
	if len(cards) >= MaxCards {
		log.Debugw("Deck full, card rejected", "id", id)
		m.notifier.Alert(MsgDeckFull)
		return false
	}

	m.commit(SortAndPad(m.lookup, append(cards, id)))
	log.Debugw("Card added", "id", id, "cards", m.deck.Len())
	return true
}

// RemoveCard removes the card at slot index. An empty slot or an index out
// of range removes nothing, but the deck is still re-sorted and synced.
func (m *Manager) RemoveCard(index int) {
	cards := make([]string, 0, MaxCards)
	for i, id := range m.deck {
		if i != index && id != "" {
			cards = append(cards, id)
		}
	}

	m.commit(SortAndPad(m.lookup, cards))
	log.Debugw("Card removed", "index", index, "cards", m.deck.Len())
}

// ClearDeck empties every slot
func (m *Manager) ClearDeck() {
	m.commit(Deck{})
	log.Debug("Deck cleared")
}

func (m *Manager) commit(d Deck) {
	m.deck = d
	m.location.ReplaceSearch(Sync(m.location.Search(), d))
}
