package game

import (
	"blackjack/internal/console"
	"blackjack/internal/prompt"
	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"
	"fmt"
	"github.com/sirupsen/logrus"
)

// prompts
const (
	questionPlay        = "Would you like to play a game of blackjack? Y/N"
	questionPlayAgain   = "Would you like to play another game? Y/N"
	questionStartChips  = "How many chips would you like to start off?"
	questionBet         = "How many chips would you like to bet?"
	questionDraw        = "Draw a card? Y/N"
	questionAnotherHand = "You now have %d chips. Would you like to play another round? Y/N"
)

// Game is the terminal game: it runs sessions of rounds against the dealer
type Game struct {
	prompter *prompt.Prompter
	console  *console.Console
	source   deck.Source
	options  blackjack.Options
	logger   logrus.FieldLogger
}

// New returns a new Game
func New(p *prompt.Prompter, c *console.Console, src deck.Source, opts blackjack.Options, logger logrus.FieldLogger) *Game {
	return &Game{
		prompter: p,
		console:  c,
		source:   src,
		options:  opts,
		logger:   logger,
	}
}

// Run asks to play and plays sessions until the player says no
// An error is only returned if the input fails
func (g *Game) Run() error {
	play, err := g.prompter.YesNo(questionPlay)
	if err != nil {
		return err
	}

	for play {
		if _, err := g.PlaySession(); err != nil {
			return err
		}

		if play, err = g.prompter.YesNo(questionPlayAgain); err != nil {
			return err
		}
	}

	g.console.Println("Alright, see you later!")
	return nil
}

// PlaySession plays rounds until the player stops or runs out of chips
// The returned session has the final balance
func (g *Game) PlaySession() (blackjack.Session, error) {
	chips, err := g.prompter.Int(questionStartChips)
	if err != nil {
		return blackjack.Session{}, err
	}

	session := blackjack.NewSession(chips)
	log := g.logger.WithField("startingChips", chips)
	log.Debug("session started")

	for {
		bet, err := g.prompter.Int(questionBet)
		if err != nil {
			return session, err
		}

		session = session.PlaceBet(bet)
		g.console.Printf("Betting %d chips, you now have %d chips.", bet, session.Chips)

		outcome, err := g.PlayRound()
		if err != nil {
			return session, err
		}

		session = session.Settle(bet, outcome)
		log.WithFields(logrus.Fields{
			"bet":     bet,
			"outcome": outcome,
			"chips":   session.Chips,
		}).Debug("round settled")

		if session.IsBroke() {
			g.console.Warning("You're all outta chips!")
			return session, nil
		}

		again, err := g.prompter.YesNo(fmt.Sprintf(questionAnotherHand, session.Chips))
		if err != nil {
			return session, err
		}

		if !again {
			g.console.Success("You finished with %d chips!", session.Chips)
			return session, nil
		}
	}
}

// PlayRound plays a single round and returns the outcome
func (g *Game) PlayRound() (blackjack.Outcome, error) {
	r := blackjack.NewRound(g.options, g.source, g.logger)
	r.SetObserver(g.console)

	return r.Play(blackjack.DeciderFunc(func(*blackjack.Round) (bool, error) {
		return g.prompter.YesNo(questionDraw)
	}))
}
