// Package audio plays short synthesized cues for escape game events through
// the beep speaker.
//
// A Sounder is an escape.EventStore. Wire it next to any other store with
// escape.MultiStore; it is silent until Init succeeds, so a machine without
// an audio device runs the game unchanged.
package audio
