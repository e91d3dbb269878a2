package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/escape"
)

// EnemyData is the component stored on every mirrored enemy entity.
type EnemyData struct {
	ID uint32
	// X is the spawn column; enemies never move sideways.
	X float64
	// SpawnTick is the tick the enemy appeared on.
	SpawnTick uint64
}

// Enemy is the component type carried by mirrored enemy entities.
var Enemy = donburi.NewComponentType[EnemyData]()

var enemyQuery = donburi.NewQuery(filter.Contains(Enemy))

// Mirror keeps one Donburi entity per live enemy, driven by spawn, prune
// and restart events. Enemies that are still on screen when the game ends
// stay mirrored until the next restart.
type Mirror struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewMirror creates a Mirror subscribed to world.
func NewMirror(world donburi.World) *Mirror {
	m := &Mirror{world: world, entities: make(map[uint32]donburi.Entity)}
	GameEventType.Subscribe(world, m.handle)
	return m
}

func (m *Mirror) handle(w donburi.World, e escape.Event) {
	switch e.Type {
	case escape.EventSpawn:
		ent := w.Create(Enemy)
		Enemy.SetValue(w.Entry(ent), EnemyData{ID: e.Enemy.ID, X: e.Enemy.X, SpawnTick: e.Tick})
		m.entities[e.Enemy.ID] = ent
	case escape.EventPrune:
		if ent, ok := m.entities[e.Enemy.ID]; ok {
			w.Remove(ent)
			delete(m.entities, e.Enemy.ID)
		}
	case escape.EventRestart:
		for id, ent := range m.entities {
			w.Remove(ent)
			delete(m.entities, id)
		}
	}
}

// Count returns the number of enemy entities in the world.
func (m *Mirror) Count() int {
	return enemyQuery.Count(m.world)
}

// Each calls fn for every mirrored enemy.
func (m *Mirror) Each(fn func(EnemyData)) {
	enemyQuery.Each(m.world, func(entry *donburi.Entry) {
		fn(*Enemy.Get(entry))
	})
}
