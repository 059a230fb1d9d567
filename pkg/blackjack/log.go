package blackjack

import (
	"blackjack/pkg/deck"
	"fmt"
	"github.com/google/uuid"
	"time"
)

// Event is what happened in a log message
type Event string

// Event constants
const (
	EventDealt          Event = "dealt"
	EventPlayerDrew     Event = "player-drew"
	EventPlayerStood    Event = "player-stood"
	EventDealerRevealed Event = "dealer-revealed"
	EventDealerDrew     Event = "dealer-drew"
	EventCompared       Event = "compared"
	EventResolved       Event = "resolved"
)

// LogMessage is a single entry in the round log
// If Participant is empty, it's a general statement about the round
type LogMessage struct {
	UUID        string       `json:"uuid"`
	Event       Event        `json:"event"`
	Participant Participant  `json:"participant"`
	Cards       []*deck.Card `json:"cards"`
	Total       int          `json:"total"`
	Message     string       `json:"message"`
	Time        time.Time    `json:"time"`
}

// Observer is notified of every log message as it happens
type Observer interface {
	Observe(r *Round, msg *LogMessage)
}

// ObserverFunc adapts a function to an Observer
type ObserverFunc func(r *Round, msg *LogMessage)

// Observe calls f(r, msg)
func (f ObserverFunc) Observe(r *Round, msg *LogMessage) {
	f(r, msg)
}

func (r *Round) sendLogMessage(event Event, participant Participant, card *deck.Card, total int, format string, a ...interface{}) {
	var cards []*deck.Card
	if card != nil {
		cards = []*deck.Card{card}
	}

	msg := &LogMessage{
		UUID:        uuid.New().String(),
		Event:       event,
		Participant: participant,
		Cards:       cards,
		Total:       total,
		Message:     fmt.Sprintf(format, a...),
		Time:        time.Now(),
	}

	r.log = append(r.log, msg)
	if r.observer != nil {
		r.observer.Observe(r, msg)
	}
}
