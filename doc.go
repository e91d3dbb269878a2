// Package escape is the simulation core of Space Escape, a small arcade game
// in which a player-controlled square dodges squares falling from the top of
// a fixed-size canvas until one of them hits it.
//
// The core knows nothing about windows, terminals or drawing. A [Game] owns
// all state and runs on an injected [Scheduler], which plays the part of a
// browser's setInterval and requestAnimationFrame:
//
//	clock := escape.NewClock()
//	game, err := escape.NewGame(escape.DefaultConfig(), clock)
//	if err != nil {
//		log.Fatal(err)
//	}
//	game.Start()
//	for {
//		clock.Advance(time.Second / 60) // fires spawns, then one Tick
//		draw(game.Snapshot())
//	}
//
// # Simulation
//
// [Game.Spawn] runs every [Config.EnemyInterval] and drops one enemy at a
// random x on the top edge. [Game.Tick] runs once per frame: each enemy falls
// by [Config.EnemySpeed], is tested against the player's box with a strict
// overlap test, and is dropped once its top edge is below the canvas. The
// first collision moves the game to [StateLost] and cancels the spawn timer.
// [StateWon] exists for presentation but no rule ever enters it.
//
// # Input
//
// [Game.Move] steps the player by [Config.PlayerSpeed] in one of eight
// directions; a step that would leave the canvas is not applied on that axis.
// [Game.MoveTo] centers the player on a pointer position, clamped to the
// canvas. [Game.Restart] brings a finished game back to [StateRunning] with a
// single freshly armed spawn timer.
//
// # Frontends
//
// Package canvas renders with Ebitengine, package tty renders into a
// terminal with tcell. Package audio plays cues through beep and package ecs
// forwards events into a Donburi world. Both consume events through
// [EventStore].
package escape
