package escape

import (
	"fmt"
	"math/rand/v2"
)

// Enemy is a falling square. Its position is the top-left corner.
type Enemy struct {
	ID uint32
	X  float64
	Y  float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Config  Config
	State   State
	Tick    uint64
	Player  Vec2
	Enemies []Enemy
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithRand sets the random source used for enemy placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithEventStore sets the sink for game events.
func WithEventStore(store EventStore) Option {
	return func(g *Game) { g.store = store }
}

// Game owns the complete simulation state: the player, the live enemies, the
// terminal flags and the spawn timer. All methods must be called from the
// goroutine that drives the Scheduler.
type Game struct {
	cfg   Config
	sched Scheduler
	rng   *rand.Rand
	store EventStore

	player  Vec2
	enemies []Enemy
	nextID  uint32
	tick    uint64

	lost bool
	won  bool

	spawnTimer TimerHandle
	armed      bool
	started    bool
	loopGen    uint64
}

// NewGame creates a game in StateRunning with the player at its start
// position. Nothing is scheduled until Start.
func NewGame(cfg Config, sched Scheduler, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if sched == nil {
		return nil, fmt.Errorf("new game: nil scheduler")
	}
	g := &Game{
		cfg:    cfg,
		sched:  sched,
		player: cfg.PlayerStart(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g, nil
}

// Config returns the game's configuration.
func (g *Game) Config() Config {
	return g.cfg
}

// SetEventStore replaces the event sink. Pass nil to drop events.
func (g *Game) SetEventStore(store EventStore) {
	g.store = store
}

// Start arms the spawn timer and begins the per-frame loop. Calling Start
// again is a no-op until Stop.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	if !g.State().Terminal() {
		g.arm()
	}
	g.loopGen++
	g.scheduleLoop(g.loopGen)
	debugf("start: state=%s", g.State())
}

// Stop cancels the spawn timer and ends the frame loop.
func (g *Game) Stop() {
	if !g.started {
		return
	}
	g.started = false
	g.loopGen++
	g.disarm()
	debugf("stop")
}

// scheduleLoop queues one frame that ticks and re-queues itself for as long
// as gen is the current loop generation.
func (g *Game) scheduleLoop(gen uint64) {
	g.sched.ScheduleFrame(func() {
		if gen != g.loopGen {
			return
		}
		g.Tick()
		g.scheduleLoop(gen)
	})
}

// State returns the current state.
func (g *Game) State() State {
	switch {
	case g.lost:
		return StateLost
	case g.won:
		return StateWon
	default:
		return StateRunning
	}
}

// Player returns the player's top-left corner.
func (g *Game) Player() Vec2 {
	return g.player
}

// Enemies returns a copy of the live enemies.
func (g *Game) Enemies() []Enemy {
	out := make([]Enemy, len(g.enemies))
	copy(out, g.enemies)
	return out
}

// TickCount returns the number of ticks that advanced the simulation.
func (g *Game) TickCount() uint64 {
	return g.tick
}

// Snapshot copies the state a renderer draws from.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Config:  g.cfg,
		State:   g.State(),
		Tick:    g.tick,
		Player:  g.player,
		Enemies: g.Enemies(),
	}
}

// PlayerRect returns the player's bounding box.
func (g *Game) PlayerRect() Rect {
	return Square(g.player, g.cfg.PlayerSize)
}

// Spawn appends one enemy at y = 0 with x uniform in [0, width-size).
// Ignored in a terminal state.
func (g *Game) Spawn() {
	if g.State().Terminal() {
		return
	}
	g.nextID++
	e := Enemy{
		ID: g.nextID,
		X:  g.rng.Float64() * (g.cfg.CanvasWidth - g.cfg.EnemySize),
		Y:  0,
	}
	g.enemies = append(g.enemies, e)
	g.emit(EventSpawn, e)
}

// Tick advances the simulation one step: every enemy falls by EnemySpeed,
// is tested against the player, and is dropped once it is below the bottom
// edge. A collision moves the game to StateLost and cancels the spawn timer.
// Tick does nothing in a terminal state.
func (g *Game) Tick() {
	if g.State().Terminal() {
		return
	}
	g.tick++

	player := g.PlayerRect()
	live := g.enemies[:0]
	for _, e := range g.enemies {
		e.Y += g.cfg.EnemySpeed

		if Square(Vec2{e.X, e.Y}, g.cfg.EnemySize).Overlaps(player) {
			if !g.lost {
				debugf("collision: enemy %d at (%.1f, %.1f) tick %d", e.ID, e.X, e.Y, g.tick)
			}
			g.lost = true
			g.emit(EventCollision, e)
		}

		if e.Y > g.cfg.CanvasHeight {
			g.emit(EventPrune, e)
			continue
		}
		live = append(live, e)
	}
	clear(g.enemies[len(live):])
	g.enemies = live

	switch {
	case g.lost:
		g.halt(EventGameOver)
	case g.won:
		g.halt(EventWin)
	}
}

// halt cancels the spawn timer and announces the terminal state. Tick only
// reaches it on the tick that leaves StateRunning.
func (g *Game) halt(t EventType) {
	g.disarm()
	debugf("halt: %s after %d ticks, %d enemies live", t, g.tick, len(g.enemies))
	g.emit(t, Enemy{})
}

// Move steps the player one PlayerSpeed in dir. On each axis the step is
// skipped if it would put the player outside the canvas; the other axis of
// a diagonal still moves. Ignored in a terminal state.
func (g *Game) Move(dir Direction) {
	if g.State().Terminal() {
		return
	}
	dx, dy := dir.Delta()
	step := g.cfg.PlayerSpeed
	if dx != 0 {
		if x := g.player.X + float64(dx)*step; x >= 0 && x+g.cfg.PlayerSize <= g.cfg.CanvasWidth {
			g.player.X = x
		}
	}
	if dy != 0 {
		if y := g.player.Y + float64(dy)*step; y >= 0 && y+g.cfg.PlayerSize <= g.cfg.CanvasHeight {
			g.player.Y = y
		}
	}
}

// MoveTo centers the player on the pointer position (x, y), clamped so the
// player stays on the canvas. Ignored in a terminal state.
func (g *Game) MoveTo(x, y float64) {
	if g.State().Terminal() {
		return
	}
	half := g.cfg.PlayerSize / 2
	g.player.X = clamp(x-half, 0, g.cfg.CanvasWidth-g.cfg.PlayerSize)
	g.player.Y = clamp(y-half, 0, g.cfg.CanvasHeight-g.cfg.PlayerSize)
}

// Restart returns a finished game to StateRunning: the player goes back to
// the start, enemies are cleared and the spawn timer is armed again. It
// reports whether anything happened; a running game is left alone.
func (g *Game) Restart() bool {
	if !g.State().Terminal() {
		return false
	}
	g.player = g.cfg.PlayerStart()
	clear(g.enemies)
	g.enemies = g.enemies[:0]
	g.lost = false
	g.won = false
	if g.started {
		g.arm()
	}
	debugf("restart")
	g.emit(EventRestart, Enemy{})
	return true
}

// arm starts the spawn timer, replacing any timer still armed.
func (g *Game) arm() {
	g.disarm()
	g.spawnTimer = g.sched.ScheduleRepeating(g.cfg.EnemyInterval, g.Spawn)
	g.armed = true
	if c, ok := g.sched.(*Clock); ok {
		debugCheckTimers(c)
	}
}

// disarm cancels the spawn timer once.
func (g *Game) disarm() {
	if !g.armed {
		return
	}
	g.sched.Cancel(g.spawnTimer)
	g.spawnTimer = 0
	g.armed = false
}

// SpawnTimerArmed reports whether the spawn timer is currently running.
func (g *Game) SpawnTimerArmed() bool {
	return g.armed
}

func (g *Game) emit(t EventType, e Enemy) {
	if g.store == nil {
		return
	}
	g.store.EmitEvent(Event{Type: t, Tick: g.tick, Enemy: e, Player: g.player})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
