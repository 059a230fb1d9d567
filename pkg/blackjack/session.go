package blackjack

// Session is the player's chip balance carried from round to round
// It is a value; every operation returns the updated session
type Session struct {
	Chips int `json:"chips"`
}

// NewSession starts a session with the given chips
func NewSession(chips int) Session {
	return Session{Chips: chips}
}

// PlaceBet debits the bet before the round is played
func (s Session) PlaceBet(bet int) Session {
	s.Chips -= bet
	return s
}

// Settle credits the payout for an escrowed bet
func (s Session) Settle(bet int, outcome Outcome) Session {
	s.Chips += outcome.Payout(bet)
	return s
}

// IsBroke returns true once the balance is zero or below
func (s Session) IsBroke() bool {
	return s.Chips <= 0
}
