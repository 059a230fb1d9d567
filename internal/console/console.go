package console

import (
	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"
	"fmt"
	"github.com/pterm/pterm"
	"io"
	"strings"
)

const (
	cardEdge   = "|--------|"
	cardHidden = "XXXXXXXX"
)

// Console renders the game on a terminal
type Console struct {
	w io.Writer
}

// New returns a console that writes to w
func New(w io.Writer) *Console {
	return &Console{w: w}
}

// Println writes a line of narration
func (c *Console) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.w, a...)
}

// Printf writes a formatted line of narration
func (c *Console) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.w, format+"\n", a...)
}

// Success writes good news
func (c *Console) Success(format string, a ...interface{}) {
	c.Println(pterm.LightGreen(fmt.Sprintf(format, a...)))
}

// Warning writes bad news
func (c *Console) Warning(format string, a ...interface{}) {
	c.Println(pterm.LightRed(fmt.Sprintf(format, a...)))
}

// Observe renders a round as it is played
func (c *Console) Observe(r *blackjack.Round, msg *blackjack.LogMessage) {
	switch msg.Event {
	case blackjack.EventDealt:
		c.Println(RenderHand(blackjack.Dealer, r.Dealer))
		c.Println(RenderHand(blackjack.Player, r.Player))
	case blackjack.EventPlayerDrew:
		c.Println(RenderHand(blackjack.Player, r.Player))
		c.narrateDraw(msg)
	case blackjack.EventDealerDrew:
		c.Println(RenderHand(blackjack.Dealer, r.Dealer))
		c.narrateDraw(msg)
	case blackjack.EventResolved:
		switch r.Outcome {
		case blackjack.OutcomeWin:
			c.Success("%s", msg.Message)
		case blackjack.OutcomeLoss:
			c.Warning("%s", msg.Message)
		default:
			c.Println(pterm.LightYellow(msg.Message))
		}
	default:
		c.Println(msg.Message)
	}
}

func (c *Console) narrateDraw(msg *blackjack.LogMessage) {
	switch {
	case msg.Total == deck.BustLimit:
		c.Success("%s", msg.Message)
	case msg.Total > deck.BustLimit:
		c.Warning("%s", msg.Message)
	default:
		c.Println(msg.Message)
	}
}

// RenderHand draws the participant's cards side by side
// Hidden cards are drawn face down no matter what they are
func RenderHand(p blackjack.Participant, h deck.Hand) string {
	edges := make([]string, len(h))
	faces := make([]string, len(h))
	for i, card := range h {
		edges[i] = "  " + cardEdge
		faces[i] = "  " + renderFace(card)
	}

	lines := []string{
		pterm.LightCyan(p.Name()),
		strings.Join(edges, ""),
		strings.Join(faces, ""),
		strings.Join(edges, ""),
	}

	return strings.Join(lines, "\n")
}

func renderFace(card *deck.Card) string {
	if card.Hidden {
		return "|" + pterm.Gray(cardHidden) + "|"
	}

	glyph := card.Suit.Glyph()
	if card.Suit.IsRed() {
		glyph = pterm.LightRed(glyph)
	}

	symbol := card.Rank.Symbol()
	// one less space when the rank is two digits
	pad := strings.Repeat(" ", 5-len(symbol))

	return fmt.Sprintf("| %s%s%s |", glyph, pad, symbol)
}
