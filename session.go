package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

// phase is where the player is in the flow around a level attempt.
type phase int

const (
	phaseIntro phase = iota
	phasePlaying
	phaseDead
	phaseWon
	phaseTimeUp
)

func (p phase) String() string {
	switch p {
	case phaseIntro:
		return "intro"
	case phasePlaying:
		return "playing"
	case phaseDead:
		return "dead"
	case phaseWon:
		return "won"
	case phaseTimeUp:
		return "time_up"
	}
	return "unknown"
}

// recordStore reads and writes best runs. *storage.Store satisfies it.
type recordStore interface {
	obj.RecordLoader
	SaveRecord(level string, rec obj.Record) (bool, error)
}

type soundPlayer interface {
	Play(name string)
}

type effectSpawner interface {
	Spawn(effect string, pos cp.Vector)
}

// levelSource returns the description of a named level.
type levelSource func(name string) ([]byte, error)

// controls is one frame of driver input on top of the movement snapshot.
type controls struct {
	obj.InputSnapshot
	// Continue is an edge-triggered confirm press (jump or enter).
	Continue bool
	// Pause toggles the pause menu.
	Pause bool
}

// session runs the level sequence: intro, play, death and respawn, win and
// advance. It owns no ebiten state so it can be stepped from tests.
type session struct {
	names  []string
	index  int
	source levelSource
	tuning prefabs.Tuning
	logger *log.Logger

	records recordStore
	sounds  soundPlayer
	effects effectSpawner

	level  *obj.Level
	phase  phase
	paused bool
	total  time.Duration
}

var errNoLevels = errors.New("no levels to play")

func newSession(names []string, start string, source levelSource, tuning prefabs.Tuning, logger *log.Logger) (*session, error) {
	if len(names) == 0 {
		return nil, errNoLevels
	}
	if source == nil {
		source = levels.Load
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &session{names: names, source: source, tuning: tuning, logger: logger}
	if start != "" {
		s.index = -1
		for i, n := range names {
			if n == start {
				s.index = i
				break
			}
		}
		if s.index < 0 {
			return nil, fmt.Errorf("unknown level %q", start)
		}
	}
	return s, nil
}

// Load (re)starts the current level from its description.
func (s *session) Load() error {
	name := s.names[s.index]
	data, err := s.source(name)
	if err != nil {
		return err
	}

	opts := []obj.Option{obj.WithTuning(s.tuning), obj.WithLogger(s.logger)}
	if s.records != nil {
		opts = append(opts, obj.WithRecords(s.records))
	}
	lvl, err := obj.NewLevel(name, bytes.NewReader(data), opts...)
	if err != nil {
		return err
	}

	s.level = lvl
	s.phase = phaseIntro
	s.paused = false
	s.logger.Info("level started", "level", name, "gems", lvl.TotalGems(), "enemies", len(lvl.Enemies()))
	return nil
}

// Retune swaps in new constants and restarts the current level.
func (s *session) Retune(t prefabs.Tuning) error {
	s.tuning = t
	return s.Load()
}

func (s *session) Level() *obj.Level { return s.level }
func (s *session) Phase() phase      { return s.phase }
func (s *session) Paused() bool      { return s.paused }
func (s *session) LevelName() string { return s.names[s.index] }

// SetPaused opens or closes the pause menu.
func (s *session) SetPaused(paused bool) {
	s.paused = paused
	if s.level != nil {
		s.level.SetPaused(paused)
	}
}

// Update steps one frame of dt.
func (s *session) Update(dt time.Duration, c controls) error {
	if s.level == nil {
		if err := s.Load(); err != nil {
			return err
		}
	}
	if c.Pause {
		s.SetPaused(!s.paused)
	}

	if !s.paused && c.Continue {
		if err := s.advance(); err != nil {
			return err
		}
	}

	s.total += dt
	ready := !s.paused && s.phase != phaseIntro
	gt := &obj.GameTime{Elapsed: dt, Total: s.total}
	// Once an attempt is over the player only falls and settles.
	in := c.InputSnapshot
	if s.phase != phasePlaying {
		in = obj.InputSnapshot{}
	}
	if err := s.level.Update(gt, &in, obj.LandscapeRight, ready); err != nil {
		return err
	}

	s.dispatch(s.level.DrainEvents())
	s.checkPhase()
	return nil
}

// advance handles a confirm press in the current phase.
func (s *session) advance() error {
	switch s.phase {
	case phaseIntro:
		s.phase = phasePlaying
	case phaseDead:
		s.level.StartNewLife()
		s.phase = phasePlaying
	case phaseWon:
		s.index = (s.index + 1) % len(s.names)
		return s.Load()
	case phaseTimeUp:
		return s.Load()
	}
	return nil
}

func (s *session) checkPhase() {
	if s.phase != phasePlaying {
		return
	}
	l := s.level
	switch {
	case !l.Player().IsAlive():
		s.phase = phaseDead
	case l.ReachedExit() && l.TimeTaken() >= l.MaxTime():
		s.phase = phaseWon
	case !l.ReachedExit() && l.TimeTaken() >= l.MaxTime():
		s.phase = phaseTimeUp
	}
}

// dispatch routes level notifications to sound, particles and the record
// store.
func (s *session) dispatch(events []obj.Event) {
	for _, e := range events {
		if s.effects != nil && e.Effect != obj.EffectNone {
			s.effects.Spawn(e.Effect, e.Position)
		}
		if name := soundFor(e); name != "" && s.sounds != nil {
			s.sounds.Play(name)
		}

		if e.Kind == obj.EventRecordChanged {
			s.saveRecord(e)
		}
	}
}

func (s *session) saveRecord(e obj.Event) {
	data, ok := e.Data.(obj.RecordChangedEvent)
	if !ok {
		return
	}
	s.logger.Info("new record", "level", data.Level, "time", data.Record.BestTime, "gems", data.Record.GemsCollected)
	if s.records == nil {
		return
	}
	if _, err := s.records.SaveRecord(data.Level, data.Record); err != nil {
		s.logger.Error("record save failed", "level", data.Level, "error", err)
	}
}

// soundFor names the tuning sound an event plays, or "" for silent events.
func soundFor(e obj.Event) string {
	switch e.Kind {
	case obj.EventPlayerKilled:
		if data, ok := e.Data.(obj.PlayerKilledEvent); ok && data.Cause == obj.DeathFall {
			return "player_fell"
		}
		return "player_killed"
	case obj.EventJump, obj.EventPowerUp, obj.EventEnemyKilled, obj.EventGemCollected,
		obj.EventTileBroken, obj.EventExitReached:
		return string(e.Kind)
	}
	return ""
}
