package obj

import (
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/prefabs"
)

// GameTime is the timing information for one simulation step.
type GameTime struct {
	// Elapsed is the time since the previous step.
	Elapsed time.Duration
	// Total is the time since the game started.
	Total time.Duration
}

// Level is one playthrough of a level description. It owns the tile grid
// and every entity on it, and is stepped once per frame by Update.
type Level struct {
	name   string
	tuning prefabs.Tuning
	logger *log.Logger

	grid    *TileGrid
	player  *Player
	gems    []*Gem
	enemies []*Enemy
	camera  *Camera

	start    cp.Vector
	exit     cp.Vector
	exitCell image.Point

	score         int
	timeTaken     time.Duration
	finishTime    time.Duration
	gemsCollected int
	totalGems     int

	reachedExit   bool
	exitAnnounced bool
	saved         bool
	paused        bool

	record    Record
	hasRecord bool
	newRecord bool

	events  EventQueue
	records RecordLoader
}

// Option configures a Level at construction.
type Option func(*Level)

// WithTuning replaces the default gameplay constants.
func WithTuning(t prefabs.Tuning) Option {
	return func(l *Level) { l.tuning = t }
}

// WithLogger sets the logger used for load-time diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Level) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRecords sets where the level's previous best run is read from.
func WithRecords(r RecordLoader) Option {
	return func(l *Level) { l.records = r }
}

// NewLevel parses a level description from r. Any malformed description
// fails with a *LoadError and no level is returned.
func NewLevel(name string, r io.Reader, opts ...Option) (*Level, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil level reader", ErrInvalidArgument)
	}

	l := &Level{
		name:   name,
		tuning: prefabs.DefaultTuning(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.loadTiles(r); err != nil {
		return nil, err
	}

	l.totalGems = len(l.gems)
	l.player = NewPlayer(l.grid, &l.events, l.start, l.tuning.Player)
	l.camera = NewCamera(
		l.tuning.Level.ViewportWidth,
		l.tuning.Level.ViewportHeight,
		l.tuning.Level.ViewMargin,
		l.grid.PixelWidth(),
	)
	l.camera.Scroll(l.start.X)

	if l.records != nil {
		rec, ok, err := l.records.LoadRecord(name)
		switch {
		case err != nil:
			l.logger.Warn("record read failed", "level", name, "error", err)
		case ok:
			l.record = rec
			l.hasRecord = true
		}
	}

	l.logger.Debug("level loaded",
		"level", name,
		"width", l.grid.Width(),
		"height", l.grid.Height(),
		"gems", l.totalGems,
		"enemies", len(l.enemies),
	)
	return l, nil
}

func (l *Level) Name() string              { return l.name }
func (l *Level) Grid() *TileGrid           { return l.grid }
func (l *Level) Player() *Player           { return l.player }
func (l *Level) Enemies() []*Enemy         { return l.enemies }
func (l *Level) Gems() []*Gem              { return l.gems }
func (l *Level) Camera() *Camera           { return l.camera }
func (l *Level) CameraOffset() float64     { return l.camera.Offset() }
func (l *Level) Score() int                { return l.score }
func (l *Level) TimeTaken() time.Duration  { return l.timeTaken }
func (l *Level) FinishTime() time.Duration { return l.finishTime }
func (l *Level) MaxTime() time.Duration    { return secondsToDuration(l.tuning.Level.MaxTime) }
func (l *Level) ReachedExit() bool         { return l.reachedExit }
func (l *Level) GemsCollected() int        { return l.gemsCollected }
func (l *Level) TotalGems() int            { return l.totalGems }
func (l *Level) Start() cp.Vector          { return l.start }
func (l *Level) Exit() cp.Vector           { return l.exit }
func (l *Level) ExitCell() image.Point     { return l.exitCell }
func (l *Level) NewRecord() bool           { return l.newRecord }
func (l *Level) Paused() bool              { return l.paused }
func (l *Level) SetPaused(paused bool)     { l.paused = paused }
func (l *Level) Tuning() prefabs.Tuning    { return l.tuning }

// BestRecord returns the stored best run, if the level was completed
// before.
func (l *Level) BestRecord() (Record, bool) { return l.record, l.hasRecord }

// DrainEvents returns the notifications raised since the last call.
func (l *Level) DrainEvents() []Event { return l.events.Drain() }

// StartNewLife puts the player back at the start without reloading the
// level.
func (l *Level) StartNewLife() {
	l.player.Reset(l.start)
}

// HomingTarget is the world point collected gems fly toward: the HUD gem
// counter, which moves with the camera.
func (l *Level) HomingTarget() cp.Vector {
	return cp.Vector{
		X: l.camera.Offset() + l.tuning.Level.HUDAnchorX,
		Y: l.tuning.Level.HUDAnchorY,
	}
}

// Update advances the level by one frame. ready is false while intro or
// HUD transitions are still playing; the player and enemies hold still
// until it is set.
func (l *Level) Update(gt *GameTime, in *InputSnapshot, orientation Orientation, ready bool) error {
	if gt == nil {
		return fmt.Errorf("%w: nil game time", ErrInvalidArgument)
	}
	if in == nil {
		return fmt.Errorf("%w: nil input snapshot", ErrInvalidArgument)
	}
	dt := gt.Elapsed.Seconds()

	if l.reachedExit {
		l.updateExitBonus(dt)
	} else {
		l.updateGems(gt.Total, dt)

		if ready {
			if l.player.IsAlive() {
				l.timeTaken += gt.Elapsed
			}
			l.player.Update(dt, in, orientation)
			l.camera.Scroll(l.player.Position().X)
			l.updateEnemies(dt)
			l.checkExit()
		}
	}

	if maxTime := l.MaxTime(); l.timeTaken > maxTime {
		l.timeTaken = maxTime
	}
	return nil
}

// updateGems animates every gem, collects the ones the player touches and
// drops the ones that finished flying to the HUD.
func (l *Level) updateGems(total time.Duration, dt float64) {
	target := l.HomingTarget()
	bounds := l.player.BoundingRect()

	for _, gem := range l.gems {
		gem.Update(total, dt, target)
		if gem.State() == GemWaiting && l.player.IsAlive() && gem.BoundingCircle().Intersects(bounds) {
			l.onGemCollected(gem)
		}
	}

	kept := l.gems[:0]
	for _, gem := range l.gems {
		if gem.State() != GemCollected {
			kept = append(kept, gem)
			continue
		}
		l.events.Push(Event{Kind: EventGemStored, Position: gem.Position(), Effect: EffectSparkle})
	}
	clear(l.gems[len(kept):])
	l.gems = kept
}

func (l *Level) onGemCollected(gem *Gem) {
	if !gem.Collect() {
		return
	}
	l.gemsCollected++
	l.score += gem.Value
	if gem.PowerUp {
		l.player.PowerUp()
	}
	l.events.Push(Event{
		Kind:     EventGemCollected,
		Position: gem.Position(),
		Effect:   EffectSparkle,
		Data:     GemCollectedEvent{Value: gem.Value, PowerUp: gem.PowerUp},
	})
}

// updateEnemies moves every enemy and settles contact with the player: a
// powered-up player kills what it touches, otherwise the enemy wins.
func (l *Level) updateEnemies(dt float64) {
	for _, enemy := range l.enemies {
		enemy.Update(dt, l.paused)

		if !enemy.IsAlive() || !l.player.IsAlive() {
			continue
		}
		if !enemy.BoundingRect().Intersects(l.player.BoundingRect()) {
			continue
		}

		if l.player.IsPoweredUp() {
			if enemy.OnKilled() {
				l.events.Push(Event{Kind: EventEnemyKilled, Position: enemy.Position(), Effect: EffectPoof, Data: enemy})
			}
		} else {
			l.player.OnKilled(enemy)
		}
	}
}

func (l *Level) checkExit() {
	p := l.player
	if !p.IsAlive() || !p.IsOnGround() || !p.BoundingRect().Contains(l.exit) {
		return
	}
	l.reachedExit = true
	l.finishTime = l.timeTaken
	p.OnReachedExit()
	l.logger.Debug("exit reached", "level", l.name, "time", l.finishTime, "gems", l.gemsCollected)
}

// updateExitBonus turns the time left on the clock into score, a few
// seconds per frame, and offers the run up as a new record.
func (l *Level) updateExitBonus(dt float64) {
	if !l.exitAnnounced {
		l.exitAnnounced = true
		l.events.Push(Event{Kind: EventExitReached, Position: l.player.Position(), Effect: EffectFireworks})
	}

	if !l.paused {
		remaining := l.MaxTime() - l.timeTaken
		if remaining > 0 {
			seconds := int(math.Round(dt * l.tuning.Level.BonusRate))
			seconds = min(seconds, int(math.Ceil(remaining.Seconds())))
			l.timeTaken += time.Duration(seconds) * time.Second
			l.score += seconds * l.tuning.Level.PointsPerSecond
		}
	}

	l.offerRecord()
}

// offerRecord raises a record notification at most once per attempt, and
// only for runs that collected every gem faster than the stored best.
func (l *Level) offerRecord() {
	if l.saved {
		return
	}
	l.saved = true

	if l.gemsCollected < l.totalGems {
		return
	}
	if l.hasRecord && !l.record.BeatenBy(l.finishTime) {
		return
	}

	l.newRecord = true
	l.record = Record{BestTime: l.finishTime, GemsCollected: l.gemsCollected}
	l.hasRecord = true
	l.events.Push(Event{
		Kind:     EventRecordChanged,
		Position: l.player.Position(),
		Data:     RecordChangedEvent{Level: l.name, Record: l.record},
	})
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
