package blackjack

import (
	"blackjack/pkg/deck"
	"fmt"
)

// Outcome is the result of a round from the player's point of view
type Outcome string

// Outcome constants
const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// Resolve determines the outcome from the final totals
// Busting takes precedence over comparing totals, and if both bust it's a draw
func Resolve(playerTotal, dealerTotal int) Outcome {
	playerBust := playerTotal > deck.BustLimit
	dealerBust := dealerTotal > deck.BustLimit

	switch {
	case playerBust && dealerBust:
		return OutcomeDraw
	case playerBust:
		return OutcomeLoss
	case dealerBust:
		return OutcomeWin
	case playerTotal > dealerTotal:
		return OutcomeWin
	case playerTotal < dealerTotal:
		return OutcomeLoss
	}

	return OutcomeDraw
}

// Payout returns how many chips are returned for an escrowed bet
func (o Outcome) Payout(bet int) int {
	switch o {
	case OutcomeWin:
		return bet * 2
	case OutcomeDraw:
		return bet
	case OutcomeLoss:
		return 0
	}

	panic(fmt.Sprintf("unknown outcome: %q", string(o)))
}

// verdict narrates how the round was decided
func verdict(playerTotal, dealerTotal int) []string {
	playerBust := playerTotal > deck.BustLimit
	dealerBust := dealerTotal > deck.BustLimit

	switch {
	case playerBust && dealerBust:
		return []string{"Both players busted. It's a tie!"}
	case playerBust:
		return []string{"Player busted. You lost!"}
	case dealerBust:
		return []string{"Dealer busted. You win!"}
	}

	compare := fmt.Sprintf("Dealer has %d, Player has %d", dealerTotal, playerTotal)
	switch Resolve(playerTotal, dealerTotal) {
	case OutcomeWin:
		return []string{compare, "Player wins!"}
	case OutcomeLoss:
		return []string{compare, "Dealer wins!"}
	}

	return []string{compare, "It's a tie!"}
}
