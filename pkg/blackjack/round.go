package blackjack

import (
	"blackjack/pkg/deck"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateDealingStart is before any cards have been dealt
	RoundStateDealingStart RoundState = "dealing-start"

	// RoundStatePlayerTurn means the player is deciding whether to draw
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the player is done and the dealer draws automatically
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateResolved means the outcome has been determined
	RoundStateResolved RoundState = "resolved"
)

// Decider makes the player's draw decisions
type Decider interface {
	// DrawCard returns true if the player wants another card
	DrawCard(r *Round) (bool, error)
}

// DeciderFunc adapts a function to a Decider
type DeciderFunc func(r *Round) (bool, error)

// DrawCard calls f(r)
func (f DeciderFunc) DrawCard(r *Round) (bool, error) {
	return f(r)
}

// Round is a single round of blackjack between the player and the dealer
type Round struct {
	UUID    string
	Player  deck.Hand
	Dealer  deck.Hand
	State   RoundState
	Outcome Outcome

	options  Options
	source   deck.Source
	logger   logrus.FieldLogger
	observer Observer
	log      []*LogMessage
}

// NewRound returns a new Round object
func NewRound(opts Options, src deck.Source, logger logrus.FieldLogger) *Round {
	id := uuid.New().String()
	return &Round{
		UUID:    id,
		Player:  deck.Hand{},
		Dealer:  deck.Hand{},
		State:   RoundStateDealingStart,
		options: opts,
		source:  src,
		logger:  logger.WithField("round", id),
	}
}

// SetObserver sets who is notified of log messages
func (r *Round) SetObserver(o Observer) {
	r.observer = o
}

// Log returns the log messages for the round in the order they happened
func (r *Round) Log() []*LogMessage {
	return r.log
}

// Hand returns the participant's hand
func (r *Round) Hand(p Participant) deck.Hand {
	if p == Dealer {
		return r.Dealer
	}

	return r.Player
}

// Result returns the outcome once the round has been resolved
func (r *Round) Result() (Outcome, error) {
	if r.State != RoundStateResolved {
		return "", ErrRoundNotOver
	}

	return r.Outcome, nil
}

// Play runs the round from the deal to the outcome
// The decider is asked whether to draw until the player stands, busts, or reaches 21
func (r *Round) Play(d Decider) (Outcome, error) {
	if err := r.Deal(); err != nil {
		return "", err
	}

	for r.State == RoundStatePlayerTurn {
		draw, err := d.DrawCard(r)
		if err != nil {
			return "", err
		}

		if !draw {
			if err := r.Stand(); err != nil {
				return "", err
			}

			break
		}

		if err := r.Hit(); err != nil {
			return "", err
		}
	}

	if err := r.PlayDealer(); err != nil {
		return "", err
	}

	return r.Result()
}

// Deal deals both starting hands
// The dealer's second card is dealt face down
func (r *Round) Deal() error {
	if err := r.checkState("deal", RoundStateDealingStart); err != nil {
		return err
	}

	r.Player = Player.StartingHand(r.source)
	r.Dealer = Dealer.StartingHand(r.source)

	r.logger.WithFields(logrus.Fields{
		"player": r.Player.String(),
		"dealer": r.Dealer.String(),
	}).Debug("starting hands dealt")

	r.sendLogMessage(EventDealt, "", nil, r.Player.TotalValue(), "Starting hands dealt")
	r.State = RoundStatePlayerTurn
	return nil
}

// Hit draws a face up card for the player
// Reaching 21 or busting ends the player's turn
func (r *Round) Hit() error {
	if err := r.checkState("hit", RoundStatePlayerTurn); err != nil {
		return err
	}

	card := r.source.Draw(false)
	r.Player.AddCard(card)
	total := r.Player.TotalValue()

	r.logger.WithFields(logrus.Fields{
		"participant": Player,
		"card":        deck.CardToString(card),
		"total":       total,
	}).Debug("card drawn")

	switch {
	case total == deck.BustLimit:
		r.sendLogMessage(EventPlayerDrew, Player, card, total, "You reached 21!")
		r.State = RoundStateDealerTurn
	case total > deck.BustLimit:
		r.sendLogMessage(EventPlayerDrew, Player, card, total, "Player busts!")
		r.State = RoundStateDealerTurn
	default:
		r.sendLogMessage(EventPlayerDrew, Player, card, total, "Your total is now %d", total)
	}

	return nil
}

// Stand ends the player's turn
func (r *Round) Stand() error {
	if err := r.checkState("stand", RoundStatePlayerTurn); err != nil {
		return err
	}

	total := r.Player.TotalValue()
	r.logger.WithFields(logrus.Fields{
		"participant": Player,
		"total":       total,
	}).Debug("player stands")

	r.sendLogMessage(EventPlayerStood, Player, nil, total, "Player stands on %d", total)
	r.State = RoundStateDealerTurn
	return nil
}

// PlayDealer reveals the dealer's face down card and plays the dealer's hand
// The dealer always draws at least once, then keeps drawing while under the stand threshold
func (r *Round) PlayDealer() error {
	if err := r.checkState("play the dealer", RoundStateDealerTurn); err != nil {
		return err
	}

	if i := r.Dealer.HiddenIndex(); i >= 0 {
		r.Dealer.Reveal(i)
		card := r.Dealer[i]
		r.sendLogMessage(EventDealerRevealed, Dealer, card, r.Dealer.TotalValue(), "Dealer reveals %s", card.String())
	}

	threshold := r.options.standThreshold()
	for {
		card := r.source.Draw(false)
		r.Dealer.AddCard(card)
		total := r.Dealer.TotalValue()

		r.logger.WithFields(logrus.Fields{
			"participant": Dealer,
			"card":        deck.CardToString(card),
			"total":       total,
		}).Debug("card drawn")

		switch {
		case total == deck.BustLimit:
			r.sendLogMessage(EventDealerDrew, Dealer, card, total, "Dealer reached 21!")
		case total > deck.BustLimit:
			r.sendLogMessage(EventDealerDrew, Dealer, card, total, "Dealer busts!")
		default:
			r.sendLogMessage(EventDealerDrew, Dealer, card, total, "Total for %s is %d", Dealer.Name(), total)
		}

		if total >= threshold || total >= deck.BustLimit {
			break
		}
	}

	r.resolve()
	return nil
}

// resolve must only be called from PlayDealer()
func (r *Round) resolve() {
	playerTotal := r.Player.TotalValue()
	dealerTotal := r.Dealer.TotalValue()
	r.Outcome = Resolve(playerTotal, dealerTotal)
	r.State = RoundStateResolved

	lines := verdict(playerTotal, dealerTotal)
	for _, line := range lines[:len(lines)-1] {
		r.sendLogMessage(EventCompared, "", nil, 0, "%s", line)
	}

	r.sendLogMessage(EventResolved, "", nil, 0, "%s", lines[len(lines)-1])

	r.logger.WithFields(logrus.Fields{
		"playerTotal": playerTotal,
		"dealerTotal": dealerTotal,
		"outcome":     r.Outcome,
	}).Debug("round resolved")
}

func (r *Round) checkState(action string, want RoundState) error {
	if r.State == RoundStateResolved {
		return ErrRoundIsOver
	}

	if r.State != want {
		return fmt.Errorf("cannot %s from state: %s", action, r.State)
	}

	return nil
}
