package match

import (
	"time"

	"github.com/lox/roshambo/internal/game"
)

// EventType identifies a match event
type EventType string

const (
	EventTypeMatchStart     EventType = "match_start"
	EventTypeRoundStart     EventType = "round_start"
	EventTypeRoundPlayed    EventType = "round_played"
	EventTypeMatchEnd       EventType = "match_end"
	EventTypeMatchAbandoned EventType = "match_abandoned"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything published while a match runs
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// MatchStartEvent is published once before the first round
type MatchStartEvent struct {
	MatchID    string
	ScoreToWin int
	Players    [2]string
	Strategies [2]string
	timestamp  time.Time
}

func (e MatchStartEvent) EventType() EventType { return EventTypeMatchStart }
func (e MatchStartEvent) Timestamp() time.Time { return e.timestamp }

// RoundStartEvent is published before choices are requested
type RoundStartEvent struct {
	MatchID   string
	Index     int
	Scores    [2]int
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// RoundPlayedEvent carries the resolved round and the scores after it
type RoundPlayedEvent struct {
	MatchID   string
	Round     game.Round
	Scores    [2]int
	timestamp time.Time
}

func (e RoundPlayedEvent) EventType() EventType { return EventTypeRoundPlayed }
func (e RoundPlayedEvent) Timestamp() time.Time { return e.timestamp }

// MatchEndEvent is published when a player reaches the winning score
type MatchEndEvent struct {
	MatchID    string
	Winner     game.PlayerIndex
	WinnerName string
	FinalRound game.Round
	Scores     [2]int
	timestamp  time.Time
}

func (e MatchEndEvent) EventType() EventType { return EventTypeMatchEnd }
func (e MatchEndEvent) Timestamp() time.Time { return e.timestamp }

// MatchAbandonedEvent is published when the driver stops before a winner
type MatchAbandonedEvent struct {
	MatchID   string
	Reason    string
	Rounds    int
	Scores    [2]int
	timestamp time.Time
}

func (e MatchAbandonedEvent) EventType() EventType { return EventTypeMatchAbandoned }
func (e MatchAbandonedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives published events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus fans events out to subscribers in subscription order.
type EventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates an empty bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *EventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *EventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish delivers event to every subscriber synchronously
func (bus *EventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
