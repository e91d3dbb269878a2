package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/escape"
)

func TestMirrorTracksEnemies(t *testing.T) {
	world := donburi.NewWorld()
	mirror := NewMirror(world)
	store := NewDonburiStore(world)

	store.EmitEvent(escape.Event{Type: escape.EventSpawn, Tick: 1, Enemy: escape.Enemy{ID: 1, X: 10}})
	store.EmitEvent(escape.Event{Type: escape.EventSpawn, Tick: 2, Enemy: escape.Enemy{ID: 2, X: 20}})
	store.EmitEvent(escape.Event{Type: escape.EventSpawn, Tick: 3, Enemy: escape.Enemy{ID: 3, X: 30}})
	events.ProcessAllEvents(world)
	if mirror.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", mirror.Count())
	}

	store.EmitEvent(escape.Event{Type: escape.EventPrune, Enemy: escape.Enemy{ID: 2}})
	// Unknown IDs are ignored.
	store.EmitEvent(escape.Event{Type: escape.EventPrune, Enemy: escape.Enemy{ID: 99}})
	events.ProcessAllEvents(world)

	got := map[uint32]EnemyData{}
	mirror.Each(func(d EnemyData) { got[d.ID] = d })
	if len(got) != 2 {
		t.Fatalf("mirrored = %v, want IDs 1 and 3", got)
	}
	if d := got[3]; d.X != 30 || d.SpawnTick != 3 {
		t.Errorf("enemy 3 = %+v", d)
	}
	if _, ok := got[2]; ok {
		t.Error("pruned enemy 2 still mirrored")
	}

	store.EmitEvent(escape.Event{Type: escape.EventGameOver})
	events.ProcessAllEvents(world)
	if mirror.Count() != 2 {
		t.Errorf("Count() = %d after game over, want 2", mirror.Count())
	}

	store.EmitEvent(escape.Event{Type: escape.EventRestart})
	events.ProcessAllEvents(world)
	if mirror.Count() != 0 {
		t.Errorf("Count() = %d after restart, want 0", mirror.Count())
	}
}
