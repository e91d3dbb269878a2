// Package canvas runs an escape.Game in an Ebitengine window.
//
// [App] implements [ebiten.Game]. Every Update advances the game's
// [escape.Clock] by one tick period, so spawn timers and the frame loop run
// exactly as they would under a browser's setInterval and
// requestAnimationFrame. Draw paints the player and enemies as solid
// squares and, once the game is over, a banner that fades in with a
// restart button below it.
//
//	clock := escape.NewClock()
//	game, _ := escape.NewGame(escape.DefaultConfig(), clock)
//	app, _ := canvas.NewApp(game, clock)
//	if err := canvas.Run(app, canvas.RunConfig{Title: "Space Escape"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Input
//
// Arrow keys and WASD move the player; held keys repeat after
// [RepeatDelay] frames and two held axes move diagonally. Holding the left
// mouse button or a finger centers the player under the pointer. After a
// collision, R, Enter or a click on the button restarts.
//
// # Scripted runs
//
// [App.InjectKey], [App.InjectPointer], [App.InjectDrag] and
// [App.InjectRestart] queue synthetic input consumed one frame at a time.
// [LoadTestScript] sequences injections, waits and [App.Screenshot] calls
// from a JSON file:
//
//	{"steps": [
//		{"action": "key", "dir": "left", "frames": 30},
//		{"action": "wait", "frames": 400},
//		{"action": "screenshot", "label": "game-over"},
//		{"action": "restart"}
//	]}
package canvas
