package obj

import "github.com/jakecoffman/cp"

// EventKind identifies a notification raised during a level update.
type EventKind string

const (
	EventJump          EventKind = "jump"
	EventPlayerKilled  EventKind = "player_killed"
	EventPowerUp       EventKind = "power_up"
	EventEnemyKilled   EventKind = "enemy_killed"
	EventGemCollected  EventKind = "gem_collected"
	EventGemStored     EventKind = "gem_stored"
	EventTileBroken    EventKind = "tile_broken"
	EventExitReached   EventKind = "exit_reached"
	EventRecordChanged EventKind = "record_changed"
)

// Effect hints tell a particle collaborator what to spawn.
const (
	EffectNone      = ""
	EffectSparkle   = "sparkle"
	EffectDebris    = "debris"
	EffectFireworks = "fireworks"
	EffectPoof      = "poof"
)

// Event is a notification produced while the level steps. Position is in
// world pixels. Data carries one of the *Event payload types below, or
// nil.
type Event struct {
	Kind     EventKind
	Position cp.Vector
	Effect   string
	Data     any
}

// PlayerKilledEvent reports how the player died.
type PlayerKilledEvent struct {
	Cause  DeathCause
	Killer *Enemy
}

// GemCollectedEvent is raised the frame a gem starts homing.
type GemCollectedEvent struct {
	Value   int
	PowerUp bool
}

// TileBrokenEvent names the grid cell that was destroyed.
type TileBrokenEvent struct {
	X, Y       int
	Appearance string
}

// RecordChangedEvent carries a new best run for the persistence
// collaborator to store.
type RecordChangedEvent struct {
	Level  string
	Record Record
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
