package deck

// BustLimit is the highest total a hand can have without busting
const BustLimit = 21

// Hand represents an ordered collection of cards
// A hand only grows; cards are never removed or reordered
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Reveal turns the card at index i face up
// Returns false if there is no card at that index
func (h Hand) Reveal(i int) bool {
	if i < 0 || i >= len(h) {
		return false
	}

	h[i].Reveal()
	return true
}

// HiddenIndex returns the index of the first hidden card, or -1
func (h Hand) HiddenIndex() int {
	for i, c := range h {
		if c.Hidden {
			return i
		}
	}

	return -1
}

// TotalValue returns the blackjack total of the hand
// Every ace starts at 11 and is demoted to 1, one at a time, until the
// total is no longer over 21 or there are no aces left to demote
func (h Hand) TotalValue() int {
	total, _ := h.total(false)
	return total
}

// VisibleTotal returns the total of the face-up cards only
func (h Hand) VisibleTotal() int {
	total, _ := h.total(true)
	return total
}

// IsSoft returns true if at least one ace is still counted as 11
func (h Hand) IsSoft() bool {
	_, soft := h.total(false)
	return soft
}

// IsBust returns true if the hand is over 21
func (h Hand) IsBust() bool {
	return h.TotalValue() > BustLimit
}

func (h Hand) total(visibleOnly bool) (int, bool) {
	total := 0
	aces := 0
	for _, c := range h {
		if visibleOnly && c.Hidden {
			continue
		}

		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for total > BustLimit && aces > 0 {
		total -= 10
		aces--
	}

	return total, aces > 0
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
