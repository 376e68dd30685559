package obj

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

var quietLogger = log.New(io.Discard)

func loadLevel(t *testing.T, rows ...string) *Level {
	t.Helper()
	l, err := NewLevel("test", strings.NewReader(strings.Join(rows, "\n")), WithLogger(quietLogger))
	require.NoError(t, err)
	return l
}

// clock hands out consecutive 60 Hz game times.
type clock struct {
	total time.Duration
}

func (c *clock) tick() *GameTime {
	c.total += frame
	return &GameTime{Elapsed: frame, Total: c.total}
}

func step(t *testing.T, l *Level, c *clock, in InputSnapshot, ready bool) {
	t.Helper()
	require.NoError(t, l.Update(c.tick(), &in, LandscapeRight, ready))
}

// gridFrom builds a bare grid using the loader's collision characters.
func gridFrom(rows ...string) *TileGrid {
	g := NewTileGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				g.Set(x, y, Tile{Appearance: "Tiles/BlockA0", Collision: Impassable})
			case '-':
				g.Set(x, y, Tile{Appearance: "Tiles/Platform", Collision: Platform})
			case ';':
				g.Set(x, y, Tile{Appearance: "Tiles/BlockBreakable", Collision: Breakable})
			}
		}
	}
	return g
}

func newTestPlayer(g *TileGrid, pos cp.Vector) (*Player, *EventQueue) {
	events := &EventQueue{}
	return NewPlayer(g, events, pos, prefabs.DefaultTuning().Player), events
}

func eventsOf(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
