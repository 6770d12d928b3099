package terminal

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/polyhop/internal/application/replay"
	"github.com/younwookim/polyhop/internal/application/session"
	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/domain/pose"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

func createTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func createTestSession(cfg *config.GameConfig) *session.Session {
	level := func(i int) *entity.Level {
		return &entity.Level{
			Index:       i,
			Width:       2000,
			GroundLevel: 400,
			Spawn:       entity.Vector2{X: 100, Y: 400 - entity.CharacterHeight},
			Platforms: []entity.Platform{
				{AABB: entity.AABB{X: 300, Y: 250, Width: 100, Height: 20}, Kind: entity.PlatformFloating},
			},
			Enemies: []*entity.Enemy{entity.NewEnemy(1, 600, 400-entity.SlimeSize, 0)},
			Coins:   []*entity.Coin{entity.NewCoin(2, 500, 200)},
		}
	}
	sim := simulation.New(cfg, rand.New(rand.NewSource(12345)),
		simulation.WithLevelSource(simulation.LevelSourceFunc(level)))
	return session.New(sim, system.NewIntentMapper(&cfg.Mapper))
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func contains(screen tcell.Screen, glyph rune) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.ContainsRune(row(screen, y), glyph) {
			return true
		}
	}
	return false
}

func TestRenderer_DrawsWorldAndHUD(t *testing.T) {
	screen := createTestScreen(t)
	cfg := config.Default()
	sess := createTestSession(cfg)
	snap, _ := sess.Tick(replay.Input{})

	NewRenderer(screen, &cfg.Display).Draw(snap, nil)

	hud := row(screen, 0)
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "Lives: 3")
	assert.Contains(t, hud, "Level: 1")
	for _, glyph := range []rune{'@', 'S', 'o', '=', '#'} {
		assert.True(t, contains(screen, glyph), "missing %q", glyph)
	}

	_, h := screen.Size()
	assert.Equal(t, strings.Repeat("#", 80), row(screen, h-1))
}

func TestRenderer_MovementLogAndOverlay(t *testing.T) {
	screen := createTestScreen(t)
	cfg := config.Default()
	snap := simulation.Snapshot{
		State:       state.StateGameOver,
		LevelWidth:  2000,
		GroundLevel: 400,
		Character:   *entity.NewCharacter(100, 352, 100),
	}
	moves := []system.MovementEntry{{Tick: 3, Label: system.LabelJump, Confidence: 0.9}}

	NewRenderer(screen, &cfg.Display).Draw(snap, moves)

	assert.Contains(t, row(screen, hudRows), "jump   90%")
	assert.Contains(t, row(screen, 12), "GAME OVER")
}

func TestRenderer_ClipsOffscreen(t *testing.T) {
	screen := createTestScreen(t)
	cfg := config.Default()
	snap := simulation.Snapshot{
		LevelWidth:  2000,
		GroundLevel: 400,
		Character:   *entity.NewCharacter(1950, 352, 100),
		Camera:      entity.Vector2{X: 0},
	}
	assert.NotPanics(t, func() {
		NewRenderer(screen, &cfg.Display).Draw(snap, nil)
	})
	assert.False(t, contains(screen, '@'))
}

func TestKeyboard_HoldsPress(t *testing.T) {
	k := NewKeyboard(3)
	k.Handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))

	for i := 0; i < 3; i++ {
		intent, _ := k.Next()
		assert.True(t, intent.MoveRight, "tick %d", i)
		assert.Equal(t, 1.0, intent.Confidence)
	}
	intent, _ := k.Next()
	assert.True(t, intent.IsIdle())
	assert.Zero(t, intent.Confidence)
}

func TestKeyboard_LatestDirectionWins(t *testing.T) {
	k := NewKeyboard(5)
	k.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	k.Next()
	k.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	intent, _ := k.Next()
	assert.True(t, intent.MoveRight)
	assert.False(t, intent.MoveLeft)
}

func TestKeyboard_ActionIsOneShot(t *testing.T) {
	k := NewKeyboard(0)
	k.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	_, action := k.Next()
	assert.True(t, action)
	_, action = k.Next()
	assert.False(t, action)
}

func TestKeyboard_Controls(t *testing.T) {
	tests := []struct {
		name  string
		key   tcell.Key
		ch    rune
		check func(system.Intent) bool
	}{
		{"w jumps", tcell.KeyRune, 'w', func(i system.Intent) bool { return i.Jump }},
		{"up jumps", tcell.KeyUp, 0, func(i system.Intent) bool { return i.Jump }},
		{"s ducks", tcell.KeyRune, 's', func(i system.Intent) bool { return i.Duck }},
		{"down ducks", tcell.KeyDown, 0, func(i system.Intent) bool { return i.Duck }},
		{"a moves left", tcell.KeyRune, 'a', func(i system.Intent) bool { return i.MoveLeft }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeyboard(DefaultKeyHold)
			k.Handle(tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone))
			intent, _ := k.Next()
			assert.True(t, tt.check(intent))
		})
	}
}

func TestKeyboard_Quit(t *testing.T) {
	k := NewKeyboard(DefaultKeyHold)
	k.Handle(tcell.NewEventResize(80, 24))
	assert.False(t, k.Quit())
	k.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, k.Quit())
}

type fixedSensor struct {
	sample *pose.Sample
	taken  int
}

func (f *fixedSensor) Take() *pose.Sample {
	f.taken++
	return f.sample
}

func TestHost_TickUsesSensor(t *testing.T) {
	screen := createTestScreen(t)
	cfg := config.Default()
	sess := createTestSession(cfg)
	sensor := &fixedSensor{sample: pose.Standing().Shift(-0.2, 0)}

	h := NewHost(screen, &cfg.Display, sess, sensor, 60)
	h.tick()
	h.tick()

	assert.Equal(t, 2, sensor.taken)
	assert.Positive(t, sess.Snapshot().Character.Vel.X)
	assert.Equal(t, system.LabelRight, sess.MovementLog()[0].Label)
	assert.Contains(t, row(screen, 0), "Track: 100%")
}

func TestHost_KeyboardOnlyHidesTracking(t *testing.T) {
	screen := createTestScreen(t)
	cfg := config.Default()
	h := NewHost(screen, &cfg.Display, createTestSession(cfg), nil, 60)
	h.tick()

	assert.Contains(t, row(screen, 0), "Lives: 3")
	assert.NotContains(t, row(screen, 0), "Track:")
}

func TestHost_RunQuitsOnKey(t *testing.T) {
	screen := createTestScreen(t)
	cfg := config.Default()
	h := NewHost(screen, &cfg.Display, createTestSession(cfg), nil, 60)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.Run(ctx))
	assert.NoError(t, ctx.Err(), "returned before the deadline")
}

func TestHost_RunStopsOnCancel(t *testing.T) {
	screen := createTestScreen(t)
	cfg := config.Default()
	h := NewHost(screen, &cfg.Display, createTestSession(cfg), nil, 60)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, h.Run(ctx))
	assert.Positive(t, h.session.Snapshot().Tick)
}
