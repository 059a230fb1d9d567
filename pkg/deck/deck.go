package deck

import (
	"blackjack/internal/rng"
	"fmt"
)

// cardsInDeck is the size of the virtual deck each draw samples from
const cardsInDeck = 52

// Source deals cards
type Source interface {
	// Draw returns a new card, dealt face down if hidden is true
	Draw(hidden bool) *Card
}

// RandomSource is an infinite deck
// Every draw samples uniformly from a full 52-card deck with replacement,
// so nothing is ever depleted
type RandomSource struct {
	rng rng.Generator
}

// NewRandomSource returns a new infinite deck backed by the generator
func NewRandomSource(g rng.Generator) *RandomSource {
	return &RandomSource{rng: g}
}

// Draw will draw a random card
func (r *RandomSource) Draw(hidden bool) *Card {
	card := CardFromIndex(r.rng.Intn(cardsInDeck))
	card.Hidden = hidden

	return card
}

// CardFromIndex maps a position in a 52-card deck to a card
// index % 13 picks the rank (1 is an ace, 11-12 are jack and queen, 0 is a king)
// and index / 13 picks the suit
func CardFromIndex(index int) *Card {
	if index < 0 || index >= cardsInDeck {
		panic(fmt.Sprintf("card index out of range: %d", index))
	}

	var rank Rank
	switch n := index % 13; n {
	case 0:
		rank = King
	case 1:
		rank = Ace
	default:
		// 2-10 are their numeral, 11 and 12 line up with Jack and Queen
		rank = Rank(n)
	}

	return &Card{
		Rank: rank,
		Suit: Suits[index/13],
	}
}

// StackedSource deals a predetermined sequence of cards
// It's used to replay rounds and by tests
type StackedSource struct {
	Cards []*Card
}

// NewStackedSource returns a source that deals the cards in order
func NewStackedSource(cards []*Card) *StackedSource {
	return &StackedSource{Cards: cards}
}

// Draw deals the next card
// Panics if the stack is empty
func (s *StackedSource) Draw(hidden bool) *Card {
	if len(s.Cards) == 0 {
		panic("stacked source is out of cards")
	}

	card := *s.Cards[0]
	s.Cards = s.Cards[1:]
	card.Hidden = hidden

	return &card
}

// CardsLeft returns the number of cards left in the stack
func (s *StackedSource) CardsLeft() int {
	return len(s.Cards)
}
