// Package ecs bridges escape game events into a Donburi world.
//
// NewDonburiStore returns an escape.EventStore that publishes every game
// event as a GameEventType event. Systems subscribe with
// GameEventType.Subscribe and drain the queue with events.ProcessAllEvents,
// typically once per frame:
//
//	world := donburi.NewWorld()
//	stats := ecs.NewStats(world)
//	game.SetEventStore(ecs.NewDonburiStore(world))
//	...
//	events.ProcessAllEvents(world)
//	fmt.Println(stats)
package ecs
