package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
// The suit is cosmetic only and never affects scoring
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
)

// Suits is every suit in the order used to map a card index to a suit
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// Glyph returns the printable symbol for the suit
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	}

	panic(fmt.Sprintf("unknown suit: %q", string(s)))
}

// IsRed returns true for diamonds and hearts
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank is the rank of a card
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks is every valid rank
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// IsValid returns true if the rank is one of the thirteen ranks
func (r Rank) IsValid() bool {
	return r >= Two && r <= Ace
}

// Symbol returns the short name of the rank (A, 2-10, J, Q, K)
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	if !r.IsValid() {
		panic(fmt.Sprintf("unknown rank: %d", int(r)))
	}

	return strconv.Itoa(int(r))
}

// Value returns the blackjack value of the rank
// An ace is always 11 here; Hand.TotalValue() demotes it when needed
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack && r <= King:
		return 10
	case r.IsValid():
		return int(r)
	}

	panic(fmt.Sprintf("unknown rank: %d", int(r)))
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`

	// Hidden cards are dealt face down
	Hidden bool `json:"hidden"`
}

func (c *Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.Symbol(), c.Suit.Glyph())
}

// Reveal turns the card face up
func (c *Card) Reveal() {
	c.Hidden = false
}

// Value returns the blackjack value of the card
func (c *Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^(!)?(a|j|q|k|[2-9]|10)([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is one of A, 2-10, J, Q, K and suit in [cdhs].
// A leading ! marks the card as hidden.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank Rank
	switch strings.ToUpper(match[2]) {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(match[2])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}

		rank = Rank(n)
	}

	var suit Suit
	switch strings.ToLower(match[3]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank:   rank,
		Suit:   suit,
		Hidden: match[1] == "!",
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (Ac)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	hidden := ""
	if card.Hidden {
		hidden = "!"
	}

	return fmt.Sprintf("%s%s%s", hidden, card.Rank.Symbol(), string(card.Suit)[:1])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,Ks,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
