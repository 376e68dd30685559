package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func openField(rows int) []string {
	out := make([]string, 0, rows)
	for i := 0; i < rows-1; i++ {
		out = append(out, "......")
	}
	return append(out, "######")
}

func TestPlayerSpawnsOnGround(t *testing.T) {
	p, events := newTestPlayer(gridFrom(openField(10)...), cp.Vector{X: 60, Y: 288})

	assert.True(t, p.IsAlive())
	assert.True(t, p.IsOnGround())
	assert.Equal(t, "grounded", p.State())
	assert.Equal(t, common.Rect{X: 47, Y: 237, Width: 25, Height: 51}, p.BoundingRect())
	assert.Zero(t, events.Len())

	for i := 0; i < 30; i++ {
		p.Update(dt, &InputSnapshot{}, LandscapeRight)
	}
	assert.Equal(t, cp.Vector{X: 60, Y: 288}, p.Position())
	assert.Equal(t, cp.Vector{}, p.Velocity())
	assert.Equal(t, AnimIdle, p.Animation())
}

func TestPlayerSpawnsInAir(t *testing.T) {
	p, _ := newTestPlayer(gridFrom(openField(10)...), cp.Vector{X: 60, Y: 200})
	assert.False(t, p.IsOnGround())
	assert.Equal(t, "falling", p.State())
}

func TestPlayerJump(t *testing.T) {
	cases := []struct {
		name string
		hold int
		apex float64
	}{
		{name: "tap", hold: 6, apex: 163},
		{name: "full_hold", hold: 18, apex: 154},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, events := newTestPlayer(gridFrom(openField(10)...), cp.Vector{X: 60, Y: 288})

			apex := p.Position().Y
			sawAscending := false
			for i := 0; i < 120; i++ {
				p.Update(dt, &InputSnapshot{Jump: i < c.hold}, LandscapeRight)
				apex = min(apex, p.Position().Y)
				if p.State() == "ascending" {
					sawAscending = true
					assert.Equal(t, AnimJump, p.Animation())
				}
			}

			assert.True(t, sawAscending)
			assert.Equal(t, c.apex, apex)
			assert.Len(t, eventsOf(events.Drain(), EventJump), 1)

			assert.True(t, p.IsAlive(), "a jump is never a lethal fall")
			assert.True(t, p.IsOnGround())
			assert.Equal(t, "grounded", p.State())
			assert.Equal(t, 288.0, p.Position().Y)
		})
	}
}

func TestPlayerHoldingJumpDoesNotRepeat(t *testing.T) {
	p, events := newTestPlayer(gridFrom(openField(10)...), cp.Vector{X: 60, Y: 288})

	for i := 0; i < 120; i++ {
		p.Update(dt, &InputSnapshot{Jump: true}, LandscapeRight)
	}
	assert.Len(t, eventsOf(events.Drain(), EventJump), 1)
	assert.True(t, p.IsOnGround())
}

func TestPlayerFallDamage(t *testing.T) {
	cases := []struct {
		name  string
		fromY float64
		alive bool
	}{
		{name: "short_drop", fromY: 224, alive: true},
		{name: "at_safe_distance", fromY: 160, alive: true},
		{name: "long_drop", fromY: 64, alive: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, events := newTestPlayer(gridFrom(openField(11)...), cp.Vector{X: 60, Y: c.fromY})
			require.Equal(t, "falling", p.State())

			for i := 0; i < 240; i++ {
				p.Update(dt, &InputSnapshot{}, LandscapeRight)
			}

			assert.Equal(t, 320.0, p.Position().Y)
			assert.Equal(t, c.alive, p.IsAlive())

			killed := eventsOf(events.Drain(), EventPlayerKilled)
			if c.alive {
				assert.Empty(t, killed)
				return
			}
			require.Len(t, killed, 1)
			assert.Equal(t, PlayerKilledEvent{Cause: DeathFall}, killed[0].Data)
			assert.Equal(t, DeathFall, p.DeathCause())
			assert.Nil(t, p.Killer())
			assert.Equal(t, AnimDie, p.Animation())
		})
	}
}

func TestPlayerFallsOutOfWorld(t *testing.T) {
	p, events := newTestPlayer(gridFrom("......", "......", "......"), cp.Vector{X: 60, Y: 64})

	for i := 0; i < 120 && p.IsAlive(); i++ {
		p.Update(dt, &InputSnapshot{}, LandscapeRight)
	}

	require.False(t, p.IsAlive())
	assert.GreaterOrEqual(t, p.BoundingRect().Top(), 96.0)
	assert.Equal(t, DeathFall, p.DeathCause())

	p.Update(dt, &InputSnapshot{}, LandscapeRight)
	assert.Len(t, eventsOf(events.Drain(), EventPlayerKilled), 1, "dies once")
}

func TestPlayerJumpsThroughPlatform(t *testing.T) {
	rows := openField(10)
	rows[6] = "------"
	p, _ := newTestPlayer(gridFrom(rows...), cp.Vector{X: 60, Y: 288})

	apex := p.Position().Y
	for i := 0; i < 120; i++ {
		p.Update(dt, &InputSnapshot{Jump: i < 20}, LandscapeRight)
		apex = min(apex, p.Position().Y)
	}

	assert.Less(t, apex, 192.0, "head went through the platform")
	assert.Equal(t, 192.0, p.Position().Y, "landed on top of the platform")
	assert.True(t, p.IsOnGround())
	assert.True(t, p.IsAlive())
}

func TestPlayerStopsAtWall(t *testing.T) {
	rows := openField(10)
	rows[8] = "..#..."
	p, _ := newTestPlayer(gridFrom(rows...), cp.Vector{X: 20, Y: 288})

	for i := 0; i < 60; i++ {
		p.Update(dt, &InputSnapshot{Right: true}, LandscapeRight)
	}

	assert.Equal(t, cp.Vector{X: 68, Y: 288}, p.Position())
	assert.Zero(t, p.Velocity().X)
	assert.Equal(t, FaceRight, p.Facing())
	assert.Equal(t, 80.0, p.BoundingRect().Right())
}

func TestPlayerHandleCollisionsPushesOutOfWall(t *testing.T) {
	p, _ := newTestPlayer(gridFrom(
		"....",
		"..#.",
		"..#.",
		"####",
	), cp.Vector{X: 71, Y: 96})
	p.SetPreviousBottom(96)

	p.HandleCollisions()

	assert.Equal(t, cp.Vector{X: 68, Y: 96}, p.Position())
}

func TestPlayerBreaksBlockFromBelow(t *testing.T) {
	g := gridFrom(
		".....",
		".;...",
		".....",
		".....",
		".....",
	)
	p, events := newTestPlayer(g, cp.Vector{X: 60, Y: 111})
	p.SetVelocity(cp.Vector{Y: -300})
	p.SetPreviousBottom(115)

	p.HandleCollisions()

	assert.Equal(t, Passable, g.CollisionAt(1, 1))
	broken := eventsOf(events.Drain(), EventTileBroken)
	require.Len(t, broken, 1)
	assert.Equal(t, TileBrokenEvent{X: 1, Y: 1, Appearance: "Tiles/BlockBreakable"}, broken[0].Data)
	assert.Equal(t, cp.Vector{X: 60, Y: 48}, broken[0].Position)
	assert.Equal(t, EffectDebris, broken[0].Effect)
	assert.Equal(t, cp.Vector{X: 60, Y: 111}, p.Position(), "breaking does not push the player")

	p.HandleCollisions()
	assert.Empty(t, eventsOf(events.Drain(), EventTileBroken))
}

func TestPlayerStandsOnBreakable(t *testing.T) {
	g := gridFrom(
		"......",
		"......",
		";;;;;;",
	)
	p, events := newTestPlayer(g, cp.Vector{X: 60, Y: 64})
	require.True(t, p.IsOnGround())

	for i := 0; i < 30; i++ {
		p.Update(dt, &InputSnapshot{}, LandscapeRight)
	}

	assert.True(t, p.IsOnGround())
	assert.Equal(t, 64.0, p.Position().Y)
	assert.Equal(t, Breakable, g.CollisionAt(1, 2))
	assert.Empty(t, eventsOf(events.Drain(), EventTileBroken))
}

func TestPlayerNeverRestsInsideSolidTiles(t *testing.T) {
	grid := gridFrom(
		"..........",
		"..........",
		"....##....",
		"..........",
		".#......#.",
		".#..--..#.",
		".#......#.",
		"##########",
	)
	spec := prefabs.DefaultTuning().Player
	spec.SafeFallDistance = 1e9
	p := NewPlayer(grid, &EventQueue{}, cp.Vector{X: 120, Y: 224}, spec)

	moves := []float64{1, -1, 0, 1, 1, -1}
	for i := 0; i < 1200; i++ {
		in := InputSnapshot{StickX: moves[(i/37)%len(moves)], Jump: (i/23)%3 == 0}
		p.Update(dt, &in, LandscapeRight)
		require.True(t, p.IsAlive(), "frame %d", i)

		bounds := p.BoundingRect()
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				if grid.CollisionAt(x, y) != Impassable {
					continue
				}
				depth := common.IntersectionDepth(bounds, grid.Bounds(x, y))
				require.Equal(t, cp.Vector{}, depth, "frame %d overlaps (%d, %d) at %v", i, x, y, p.Position())
			}
		}
	}
}

func TestPlayerInput(t *testing.T) {
	cases := []struct {
		name        string
		in          InputSnapshot
		orientation Orientation
		want        FaceDirection
		moves       bool
	}{
		{name: "idle", in: InputSnapshot{}, moves: false},
		{name: "left_key", in: InputSnapshot{Left: true}, want: FaceLeft, moves: true},
		{name: "right_key", in: InputSnapshot{Right: true}, want: FaceRight, moves: true},
		{name: "key_beats_stick", in: InputSnapshot{StickX: 1, Left: true}, want: FaceLeft, moves: true},
		{name: "stick_in_dead_zone", in: InputSnapshot{StickX: 0.3}, moves: false},
		{name: "stick_right", in: InputSnapshot{StickX: 0.8}, want: FaceRight, moves: true},
		{name: "tilt_in_dead_zone", in: InputSnapshot{Tilt: 0.05}, moves: false},
		{name: "tilt_right", in: InputSnapshot{Tilt: 0.5}, want: FaceRight, moves: true},
		{name: "tilt_mirrored", in: InputSnapshot{Tilt: 0.5}, orientation: LandscapeLeft, want: FaceLeft, moves: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, _ := newTestPlayer(gridFrom(openField(10)...), cp.Vector{X: 120, Y: 288})
			p.Update(dt, &c.in, c.orientation)

			if !c.moves {
				assert.Zero(t, p.Velocity().X)
				assert.Equal(t, 120.0, p.Position().X)
				return
			}
			assert.Equal(t, c.want, p.Facing())
			assert.Equal(t, float64(c.want), common.Sign(p.Velocity().X))
			assert.Equal(t, AnimRun, p.Animation())
		})
	}
}

func TestPlayerPowerUpExpires(t *testing.T) {
	p, events := newTestPlayer(gridFrom(openField(10)...), cp.Vector{X: 60, Y: 288})

	p.PowerUp()
	assert.True(t, p.IsPoweredUp())
	assert.Len(t, eventsOf(events.Drain(), EventPowerUp), 1)

	for i := 0; i < 5*60; i++ {
		p.Update(dt, &InputSnapshot{}, LandscapeRight)
	}
	assert.True(t, p.IsPoweredUp())

	for i := 0; i < 61; i++ {
		p.Update(dt, &InputSnapshot{}, LandscapeRight)
	}
	assert.False(t, p.IsPoweredUp())
	assert.Zero(t, p.PowerUpTime())
}

func TestPlayerResetRevives(t *testing.T) {
	p, events := newTestPlayer(gridFrom(openField(10)...), cp.Vector{X: 60, Y: 288})
	enemy := NewEnemy(p.grid, cp.Vector{X: 60, Y: 288}, "MonsterA", prefabs.DefaultTuning().Enemy)

	p.OnKilled(enemy)
	p.OnKilled(nil)
	require.False(t, p.IsAlive())
	assert.Equal(t, DeathEnemy, p.DeathCause())
	assert.Same(t, enemy, p.Killer())
	assert.Len(t, eventsOf(events.Drain(), EventPlayerKilled), 1)

	p.Reset(cp.Vector{X: 100, Y: 288})
	assert.True(t, p.IsAlive())
	assert.Equal(t, DeathNone, p.DeathCause())
	assert.Nil(t, p.Killer())
	assert.Equal(t, cp.Vector{X: 100, Y: 288}, p.Position())
	assert.True(t, p.IsOnGround())
	assert.Equal(t, AnimIdle, p.Animation())
}
