package playing

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/polyhop/internal/application/replay"
	"github.com/younwookim/polyhop/internal/application/scene"
	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/appearance"
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/domain/pose"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// createTestLevel is a flat level with a coin out of reach and optional enemies
func createTestLevel(enemies ...*entity.Enemy) simulation.LevelSource {
	return simulation.LevelSourceFunc(func(i int) *entity.Level {
		es := make([]*entity.Enemy, 0, len(enemies))
		for _, e := range enemies {
			clone := *e
			es = append(es, &clone)
		}
		return &entity.Level{
			Index:       i,
			Width:       2000,
			GroundLevel: 400,
			Spawn:       entity.Vector2{X: 100, Y: 400 - entity.CharacterHeight},
			Enemies:     es,
			Coins:       []*entity.Coin{entity.NewCoin(99, 1900, 60)},
		}
	})
}

func createTestPlaying(t *testing.T, cfg *config.GameConfig, levels simulation.LevelSource, opts Options) *Playing {
	t.Helper()
	sim := simulation.New(cfg, rand.New(rand.NewSource(12345)), simulation.WithLevelSource(levels))
	return New(cfg, sim, opts)
}

type fixedSensor struct {
	sample *pose.Sample
	taken  int
}

func (f *fixedSensor) Take() *pose.Sample {
	f.taken++
	return f.sample
}

type recordingCues struct {
	events []system.GameEvent
}

func (r *recordingCues) Play(events []system.GameEvent) {
	r.events = append(r.events, events...)
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	cfg := config.Default()
	p := createTestPlaying(t, cfg, createTestLevel(), Options{})

	require.NotNil(t, p)
	snap := p.Snapshot()
	assert.Equal(t, state.StatePlaying, snap.State)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 3, snap.Lives)
	assert.False(t, p.Paused())

	w, h := p.Layout(0, 0)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	cfg := config.Default()
	p := createTestPlaying(t, cfg, createTestLevel(), Options{})

	next, err := p.Update(1.0 / 60.0)
	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, uint64(1), p.Snapshot().Tick)
}

func TestPlaying_TickReadsSensor(t *testing.T) {
	cfg := config.Default()
	sensor := &fixedSensor{sample: pose.Standing().Shift(-0.2, 0)}

	var ticks []simulation.Snapshot
	var intents []system.Intent
	p := createTestPlaying(t, cfg, createTestLevel(), Options{
		Sensor: sensor,
		OnTick: func(s simulation.Snapshot, i system.Intent) {
			ticks = append(ticks, s)
			intents = append(intents, i)
		},
	})

	p.tick(replay.Input{})
	p.tick(replay.Input{})

	assert.Equal(t, 2, sensor.taken)
	require.Len(t, ticks, 2)
	assert.Positive(t, ticks[1].Character.Vel.X)
	assert.True(t, intents[1].MoveRight)
}

func TestPlaying_KeysOverrideSensor(t *testing.T) {
	cfg := config.Default()
	sensor := &fixedSensor{sample: pose.Standing().Shift(-0.2, 0)}
	p := createTestPlaying(t, cfg, createTestLevel(), Options{Sensor: sensor})

	p.tick(replay.Input{Keys: system.Intent{MoveLeft: true, Confidence: 1}})
	assert.Negative(t, p.Snapshot().Character.Vel.X)
}

func TestPlaying_GameOverSavesRecording(t *testing.T) {
	cfg := config.Default()
	cfg.Combat.InvulnerableTicks = 0
	path := filepath.Join(t.TempDir(), "run.json")
	cues := &recordingCues{}

	var finished []simulation.GameData
	p := createTestPlaying(t, cfg, createTestLevel(entity.NewEnemy(1, 110, 400-entity.SlimeSize, 0)), Options{
		Seed:       42,
		RecordPath: path,
		Cues:       cues,
		OnGameOver: func(d simulation.GameData) { finished = append(finished, d) },
	})

	for i := 0; i < 5; i++ {
		p.tick(replay.Input{})
	}

	require.Len(t, finished, 1)
	assert.Equal(t, "GameOver", finished[0].State)
	assert.NotEmpty(t, cues.events)

	_, err := os.Stat(path)
	require.NoError(t, err, "recording is saved on game over")
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.Seed)
	assert.Len(t, data.Frames, 3, "saved at the game over tick")
}

func TestPlaying_OnExitSavesRecording(t *testing.T) {
	cfg := config.Default()
	path := filepath.Join(t.TempDir(), "exit.json")
	p := createTestPlaying(t, cfg, createTestLevel(), Options{RecordPath: path})

	for i := 0; i < 10; i++ {
		p.tick(replay.Input{Keys: system.Intent{MoveRight: true}})
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 10)
}

func TestPlaying_OnExitWithoutRecorder(t *testing.T) {
	cfg := config.Default()
	p := createTestPlaying(t, cfg, createTestLevel(), Options{})
	p.OnEnter()
	assert.NotPanics(t, p.OnExit)
}

func TestSpritePixels(t *testing.T) {
	look := appearance.Default()
	pix := SpritePixels(look)

	require.Len(t, pix, appearance.SpritePixels*4)
	assert.Equal(t, byte(0), pix[3], "corner is transparent")

	hair := look.Color(appearance.RoleHair)
	assert.Equal(t, []byte{hair.R, hair.G, hair.B, 255}, pix[16:20])
}

func TestSameLook(t *testing.T) {
	a := appearance.Default()
	b := appearance.Default()
	assert.True(t, sameLook(a, b))

	b.Outfit = appearance.OutfitWizard
	assert.False(t, sameLook(a, b))

	c := appearance.Default()
	require.NoError(t, c.SetCustomHex(a.Sprite().EncodeHex()))
	assert.False(t, sameLook(a, c))

	d := appearance.Default()
	require.NoError(t, d.SetCustomHex(a.Sprite().EncodeHex()))
	assert.True(t, sameLook(c, d))
}
