package blackjack

import "blackjack/pkg/deck"

// Participant identifies who owns a hand
type Participant string

// Participant constants
const (
	Player Participant = "player"
	Dealer Participant = "dealer"
)

// Name is the display name of the participant
func (p Participant) Name() string {
	switch p {
	case Player:
		return "Player"
	case Dealer:
		return "Dealer"
	}

	return string(p)
}

// StartingHand draws the two starting cards
// The dealer's second card is dealt face down
func (p Participant) StartingHand(src deck.Source) deck.Hand {
	hand := make(deck.Hand, 0, 2)
	hand.AddCard(src.Draw(false))
	hand.AddCard(src.Draw(p == Dealer))

	return hand
}
