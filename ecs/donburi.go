package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/escape"
)

// GameEventType is the Donburi event type for escape game events.
// Subscribe to this in your ECS systems to receive spawns, prunes,
// collisions and state changes.
var GameEventType = events.NewEventType[escape.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Game events are published to GameEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) escape.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event escape.Event) {
	GameEventType.Publish(s.world, event)
}
