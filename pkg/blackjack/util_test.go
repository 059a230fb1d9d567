package blackjack

import (
	"blackjack/pkg/deck"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func createTestRound(cards string, opts ...Options) (*Round, *deck.StackedSource) {
	options := DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	logger, _ := test.NewNullLogger()
	src := deck.NewStackedSource(deck.CardsFromString(cards))
	return NewRound(options, src, logger), src
}

// scriptedDecider answers draw prompts in order and stands once it runs out
func scriptedDecider(answers ...bool) Decider {
	return DeciderFunc(func(r *Round) (bool, error) {
		if len(answers) == 0 {
			return false, nil
		}

		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	})
}

func debugLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}
