package ecs

import (
	"fmt"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/escape"
)

// Stats counts game events delivered through GameEventType. Counters only
// move when the world's events are processed.
type Stats struct {
	Spawned    int
	Pruned     int
	Collisions int
	Losses     int
	Wins       int
	Restarts   int
	// LastTick is the simulation tick of the most recent event.
	LastTick uint64
}

// NewStats creates a Stats subscribed to world.
func NewStats(world donburi.World) *Stats {
	s := &Stats{}
	GameEventType.Subscribe(world, s.handle)
	return s
}

func (s *Stats) handle(_ donburi.World, e escape.Event) {
	switch e.Type {
	case escape.EventSpawn:
		s.Spawned++
	case escape.EventPrune:
		s.Pruned++
	case escape.EventCollision:
		s.Collisions++
	case escape.EventGameOver:
		s.Losses++
	case escape.EventWin:
		s.Wins++
	case escape.EventRestart:
		s.Restarts++
	}
	s.LastTick = e.Tick
}

// String formats the counters as a single HUD line.
func (s *Stats) String() string {
	return fmt.Sprintf("spawned %d  pruned %d  hits %d  restarts %d",
		s.Spawned, s.Pruned, s.Collisions, s.Restarts)
}

// StatusLine joins the counters with the number of mirrored enemies, for
// frontends that show one line of ECS state.
func StatusLine(s *Stats, m *Mirror) string {
	return fmt.Sprintf("%s  live %d", s, m.Count())
}
