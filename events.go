package escape

// EventType identifies a kind of game event.
type EventType uint8

const (
	EventSpawn     EventType = iota // an enemy entered at the top edge
	EventPrune                      // an enemy left through the bottom edge
	EventCollision                  // an enemy overlapped the player
	EventGameOver                   // the game entered StateLost
	EventWin                        // the game entered StateWon
	EventRestart                    // the game returned to StateRunning
)

// String returns the event type's name.
func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventPrune:
		return "prune"
	case EventCollision:
		return "collision"
	case EventGameOver:
		return "game-over"
	case EventWin:
		return "win"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event carries what happened and where. Enemy is the zero value for
// events that do not concern a single enemy.
type Event struct {
	Type   EventType
	Tick   uint64
	Enemy  Enemy
	Player Vec2
}

// EventStore receives game events as they happen. Implementations must not
// call back into the Game synchronously.
type EventStore interface {
	EmitEvent(event Event)
}

// EventStoreFunc adapts a function to EventStore.
type EventStoreFunc func(Event)

// EmitEvent calls f(event).
func (f EventStoreFunc) EmitEvent(event Event) { f(event) }

type multiStore []EventStore

func (m multiStore) EmitEvent(event Event) {
	for _, s := range m {
		s.EmitEvent(event)
	}
}

// MultiStore fans events out to every non-nil store in order.
func MultiStore(stores ...EventStore) EventStore {
	var m multiStore
	for _, s := range stores {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}
