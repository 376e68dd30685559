package obj

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"math/rand"
	"strings"
)

var (
	ErrLineLength      = errors.New("obj: line length differs from the preceding lines")
	ErrNoStart         = errors.New("obj: level must have a starting point")
	ErrDuplicateStart  = errors.New("obj: level may only have one starting point")
	ErrNoExit          = errors.New("obj: level must have an exit")
	ErrDuplicateExit   = errors.New("obj: level may only have one exit")
	ErrUnknownTile     = errors.New("obj: unsupported tile character")
	ErrInvalidArgument = errors.New("obj: invalid argument")
)

// LoadError describes why a level description was rejected. Line is the
// zero-based row the problem was found on, or -1 when it concerns the
// whole level. X, Y and Char are set when a single cell is at fault.
type LoadError struct {
	Level string
	Line  int
	X, Y  int
	Char  rune
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Char != 0:
		return fmt.Sprintf("load level %q: %v: %q at (%d, %d)", e.Level, e.Err, e.Char, e.X, e.Y)
	case e.Line >= 0:
		return fmt.Sprintf("load level %q: line %d: %v", e.Level, e.Line, e.Err)
	}
	return fmt.Sprintf("load level %q: %v", e.Level, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// readLines splits a level description into rows of equal length.
func readLines(name string, r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(lines) > 0 && len(line) != len(lines[0]) {
			return nil, &LoadError{Level: name, Line: len(lines), Err: ErrLineLength}
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load level %q: read: %w", name, err)
	}
	return lines, nil
}

// loadTiles builds the grid and places every entity marker found in the
// description.
func (l *Level) loadTiles(r io.Reader) error {
	lines, err := readLines(l.name, r)
	if err != nil {
		return err
	}

	width := 0
	if len(lines) > 0 {
		width = len(lines[0])
	}
	l.grid = NewTileGrid(width, len(lines))
	// Fixed seed so the same description always gets the same tile art.
	random := rand.New(rand.NewSource(l.tuning.Level.RandomSeed))

	hasStart, hasExit := false, false
	for y, line := range lines {
		for x, ch := range []byte(line) {
			tile, err := l.loadTile(rune(ch), x, y, random, &hasStart, &hasExit)
			if err != nil {
				return err
			}
			l.grid.Set(x, y, tile)
		}
	}

	if !hasStart {
		return &LoadError{Level: l.name, Line: -1, Err: ErrNoStart}
	}
	if !hasExit {
		return &LoadError{Level: l.name, Line: -1, Err: ErrNoExit}
	}
	return nil
}

func (l *Level) loadTile(ch rune, x, y int, random *rand.Rand, hasStart, hasExit *bool) (Tile, error) {
	cellErr := func(err error) error {
		return &LoadError{Level: l.name, Line: y, X: x, Y: y, Char: ch, Err: err}
	}
	bounds := l.grid.Bounds(x, y)

	switch ch {
	case '.':
		return Tile{}, nil

	case 'X':
		if *hasExit {
			return Tile{}, cellErr(ErrDuplicateExit)
		}
		*hasExit = true
		l.exitCell = image.Point{X: x, Y: y}
		l.exit = bounds.Center()
		return Tile{Appearance: "Tiles/Exit", Collision: Passable}, nil

	case '1', '2', '3', '4':
		kind, _ := l.tuning.Gem.Kind(ch)
		l.gems = append(l.gems, NewGem(bounds.Center(), kind, l.tuning.Gem))
		return Tile{}, nil

	case '-':
		return Tile{Appearance: "Tiles/Platform", Collision: Platform}, nil

	case 'A', 'B', 'C', 'D':
		variant := "Monster" + string(ch)
		l.enemies = append(l.enemies, NewEnemy(l.grid, bounds.BottomCenter(), variant, l.tuning.Enemy))
		return Tile{}, nil

	case '~':
		return varietyTile(random, "Tiles/BlockB", 2, Platform), nil
	case ':':
		return varietyTile(random, "Tiles/BlockB", 2, Passable), nil
	case '#':
		return varietyTile(random, "Tiles/BlockA", 7, Impassable), nil

	case ';':
		return Tile{Appearance: "Tiles/BlockBreakable", Collision: Breakable}, nil

	case 'P':
		if *hasStart {
			return Tile{}, cellErr(ErrDuplicateStart)
		}
		*hasStart = true
		l.start = bounds.BottomCenter()
		return Tile{}, nil
	}

	return Tile{}, cellErr(ErrUnknownTile)
}

// varietyTile picks one of count numbered appearances of base.
func varietyTile(random *rand.Rand, base string, count int, collision Collision) Tile {
	index := random.Intn(count)
	return Tile{Appearance: fmt.Sprintf("%s%d", base, index), Collision: collision}
}
