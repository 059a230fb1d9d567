package blackjack

import "errors"

// ErrRoundIsOver is an error when an action is attempted on a resolved round
var ErrRoundIsOver = errors.New("the round is over")

// ErrRoundNotOver is an error when the outcome is requested before the round is resolved
var ErrRoundNotOver = errors.New("the round is not over")
