package game

import (
	"slices"
	"time"
)

// EventType represents a tournament event type with type safety
type EventType string

const (
	EventTypeGameStart  EventType = "game_start"
	EventTypeRoundEnd   EventType = "round_end"
	EventTypeGameEnd    EventType = "game_end"
	EventTypeTourneyEnd EventType = "tourney_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything the Engine publishes while playing
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// DealtHand records the cards a player was dealt
type DealtHand struct {
	Name  string
	Cards []int
}

// GameStartEvent is published after the deck has been dealt
type GameStartEvent struct {
	Game      int
	Kitty     []int
	Hands     []DealtHand
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent copies the kitty and every hand off the table
func NewGameStartEvent(game int, table *Table, ts time.Time) GameStartEvent {
	hands := make([]DealtHand, len(table.Players))
	for i, p := range table.Players {
		hands[i] = DealtHand{Name: p.Name, Cards: slices.Clone(p.Hand.Cards)}
	}
	return GameStartEvent{
		Game:      game,
		Kitty:     slices.Clone(table.Kitty.Cards),
		Hands:     hands,
		timestamp: ts,
	}
}

// RoundEndEvent is published once a round's winner is known, before the
// score is applied.
type RoundEndEvent struct {
	Game      int
	Round     int
	PrizeCard int
	Bids      []Bid
	Winner    string
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(game, round, prizeCard int, bids []Bid, winner string, ts time.Time) RoundEndEvent {
	return RoundEndEvent{
		Game:      game,
		Round:     round,
		PrizeCard: prizeCard,
		Bids:      slices.Clone(bids),
		Winner:    winner,
		timestamp: ts,
	}
}

// GameEndEvent carries standings as they were before the per-game counters
// were reset.
type GameEndEvent struct {
	Game      int
	Winner    string
	Standings []Standing
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(game int, winner string, standings []Standing, ts time.Time) GameEndEvent {
	return GameEndEvent{
		Game:      game,
		Winner:    winner,
		Standings: standings,
		timestamp: ts,
	}
}

// TourneyEndEvent is published when the last game has been applied
type TourneyEndEvent struct {
	Result    TourneyResult
	timestamp time.Time
}

func (e TourneyEndEvent) EventType() EventType { return EventTypeTourneyEnd }
func (e TourneyEndEvent) Timestamp() time.Time { return e.timestamp }

// NewTourneyEndEvent creates a new tournament end event
func NewTourneyEndEvent(result TourneyResult, ts time.Time) TourneyEndEvent {
	return TourneyEndEvent{Result: result, timestamp: ts}
}

// EventSubscriber can subscribe to engine events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event Event)

func (f EventSubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus delivers events synchronously in subscription order. It is
// not safe for concurrent use.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Func subscribers cannot be compared and
// stay subscribed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, isFunc := subscriber.(EventSubscriberFunc); isFunc {
		return
	}
	for i, sub := range bus.subscribers {
		if _, isFunc := sub.(EventSubscriberFunc); isFunc {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
