// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/polyhop/internal/application/replay"
	"github.com/younwookim/polyhop/internal/application/scene"
	"github.com/younwookim/polyhop/internal/application/session"
	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/appearance"
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/domain/pose"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG           = color.RGBA{26, 26, 46, 255}
	colorGround       = color.RGBA{101, 67, 33, 255}
	colorGroundEdge   = color.RGBA{139, 69, 19, 255}
	colorPlatform     = color.RGBA{139, 69, 19, 255}
	colorPlatformEdge = color.RGBA{101, 67, 33, 255}
	colorSlime        = color.RGBA{0, 255, 0, 255}
	colorSlimeEdge    = color.RGBA{0, 128, 0, 255}
	colorSlimeEye     = color.RGBA{0, 0, 0, 255}
	colorCoin         = color.RGBA{255, 215, 0, 255}
	colorCoinEdge     = color.RGBA{255, 140, 0, 255}
	colorHealthBG     = color.RGBA{51, 51, 51, 255}
	colorHealthHigh   = color.RGBA{0, 255, 0, 255}
	colorHealthMid    = color.RGBA{255, 255, 0, 255}
	colorHealthLow    = color.RGBA{255, 0, 0, 255}
	colorOverlay      = color.RGBA{0, 0, 0, 204}
	colorFlash        = color.RGBA{255, 255, 255, 200}
)

// background layers drawn back to front, scrolled by camera × speed
var backgroundLayers = []struct {
	color  color.RGBA
	height float64
	speed  float64
}{
	{color.RGBA{22, 33, 62, 255}, 400, 0.1},
	{color.RGBA{15, 52, 96, 255}, 300, 0.2},
}

var particleColors = map[entity.ParticleKind]color.RGBA{
	entity.ParticleCoin:  {255, 215, 0, 255},
	entity.ParticleEnemy: {255, 0, 0, 255},
	entity.ParticleHit:   {255, 0, 0, 255},
}

// SampleSource yields the newest pose sample, or nil when none arrived
type SampleSource interface {
	Take() *pose.Sample
}

// Options configures the scene's collaborators. Zero values disable each one.
type Options struct {
	// Seed is recorded with replays. The caller seeds the session's rng with it.
	Seed int64
	// LevelName labels recordings of hand-authored levels
	LevelName  string
	RecordPath string
	Sensor     SampleSource
	Cues       session.CuePlayer
	OnGameOver func(simulation.GameData)
	// OnTick observes every snapshot with the intent that produced it
	OnTick func(simulation.Snapshot, system.Intent)
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	session *session.Session
	sensor  SampleSource
	onTick  func(simulation.Snapshot, system.Intent)
	screenW int
	screenH int
	paused  bool
	showLog bool

	// Character sprite, built on first draw from the session appearance
	sprite     *ebiten.Image
	spriteLook appearance.Appearance

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene around sim
func New(cfg *config.GameConfig, sim *simulation.Simulation, opts Options) *Playing {
	p := &Playing{
		config:         cfg,
		sensor:         opts.Sensor,
		onTick:         opts.OnTick,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		showLog:        true,
		recordFilename: opts.RecordPath,
	}

	sessOpts := []session.Option{session.WithGameOver(p.gameOver(opts.OnGameOver))}
	if opts.Cues != nil {
		sessOpts = append(sessOpts, session.WithCues(opts.Cues))
	}
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Seed, opts.LevelName)
		sessOpts = append(sessOpts, session.WithRecorder(p.recorder))
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, opts.Seed)
	}

	p.session = session.New(sim, system.NewIntentMapper(&cfg.Mapper), sessOpts...)
	return p
}

// gameOver wraps the caller's hook so the recording is saved first
func (p *Playing) gameOver(next func(simulation.GameData)) func(simulation.GameData) {
	return func(data simulation.GameData) {
		log.Printf("Game over: score %d on level %d", data.Score, data.Level)
		p.saveRecording()
		if next != nil {
			next(data)
		}
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		p.showLog = !p.showLog
	}

	p.tick(readKeyboard())
	return nil, nil // nil = stay on this scene
}

// readKeyboard is the fallback control scheme
func readKeyboard() replay.Input {
	keys := system.Intent{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Duck:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	if keys.MoveLeft && keys.MoveRight {
		keys.MoveLeft, keys.MoveRight = false, false
	}
	if !keys.IsIdle() {
		keys.Confidence = 1
	}
	return replay.Input{
		Keys:   keys,
		Action: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

// tick advances one frame with the given keyboard input and the latest sensor sample
func (p *Playing) tick(in replay.Input) {
	if in.Sample == nil && p.sensor != nil {
		in.Sample = p.sensor.Take()
	}
	snap, _ := p.session.Tick(in)
	if p.onTick != nil {
		p.onTick(snap, p.session.Intent())
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Snapshot returns the state after the latest tick
func (p *Playing) Snapshot() simulation.Snapshot {
	return p.session.Snapshot()
}

// Paused reports whether the scene is paused
func (p *Playing) Paused() bool {
	return p.paused
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.session.Snapshot()
	camX := snap.Camera.X

	screen.Fill(colorBG)
	p.drawBackground(screen, camX)
	p.drawPlatforms(screen, snap, camX)
	p.drawCoins(screen, snap, camX)
	p.drawEnemies(screen, snap, camX)
	p.drawParticles(screen, snap, camX)
	p.drawCharacter(screen, snap.Character, camX)

	p.drawUI(screen, snap)
	if p.showLog {
		p.drawMovementLog(screen)
	}

	switch {
	case p.paused:
		p.drawPauseOverlay(screen)
	case snap.State == state.StateGameOver:
		p.drawGameOverOverlay(screen, snap)
	case snap.State == state.StateLevelComplete:
		p.drawLevelCompleteOverlay(screen, snap)
	}
}

func (p *Playing) drawBackground(screen *ebiten.Image, camX float64) {
	w := float64(p.screenW)
	for _, layer := range backgroundLayers {
		// hills repeat every screen width and drift slower than the world
		offset := math.Mod(camX*layer.speed, w)
		y := float64(p.screenH) - layer.height
		for x := -offset; x < w; x += w / 4 {
			ebitenutil.DrawRect(screen, x, y+layer.height/3, w/4-8, layer.height, layer.color)
		}
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, snap simulation.Snapshot, camX float64) {
	for _, pl := range snap.Platforms {
		x := pl.X - camX
		if x+pl.Width < 0 || x > float64(p.screenW) {
			continue
		}
		fill, edge := colorPlatform, colorPlatformEdge
		if pl.Kind == entity.PlatformGround {
			fill, edge = colorGround, colorGroundEdge
		}
		ebitenutil.DrawRect(screen, x, pl.Y, pl.Width, pl.Height, edge)
		ebitenutil.DrawRect(screen, x+1, pl.Y+1, pl.Width-2, pl.Height-2, fill)
	}
}

func (p *Playing) drawCoins(screen *ebiten.Image, snap simulation.Snapshot, camX float64) {
	for _, c := range snap.Coins {
		if c.Collected {
			continue
		}
		// spin squeezes the coin horizontally
		w := c.Width * math.Max(0.15, math.Abs(math.Cos(c.Spin)))
		x := c.X - camX + (c.Width-w)/2
		ebitenutil.DrawRect(screen, x, c.Y, w, c.Height, colorCoinEdge)
		ebitenutil.DrawRect(screen, x+w/4, c.Y+c.Height/4, w/2, c.Height/2, colorCoin)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, snap simulation.Snapshot, camX float64) {
	for _, e := range snap.Enemies {
		x := e.Pos.X - camX
		ebitenutil.DrawRect(screen, x, e.Pos.Y, e.Width, e.Height, colorSlimeEdge)
		ebitenutil.DrawRect(screen, x+2, e.Pos.Y+2, e.Width-4, e.Height-4, colorSlime)

		// eyes look the way the slime walks
		look := 0.0
		if e.Vel.X < 0 {
			look = -3
		} else if e.Vel.X > 0 {
			look = 3
		}
		ebitenutil.DrawRect(screen, x+e.Width*0.3+look, e.Pos.Y+e.Height*0.3, 4, 4, colorSlimeEye)
		ebitenutil.DrawRect(screen, x+e.Width*0.6+look, e.Pos.Y+e.Height*0.3, 4, 4, colorSlimeEye)
	}
}

func (p *Playing) drawParticles(screen *ebiten.Image, snap simulation.Snapshot, camX float64) {
	for _, pt := range snap.Particles {
		c := particleColors[pt.Kind]
		if lifetime := p.config.Particles.Life; lifetime > 0 {
			c.A = uint8(255 * float64(pt.Life) / float64(lifetime))
		}
		ebitenutil.DrawRect(screen, pt.Pos.X-camX-2, pt.Pos.Y-2, 4, 4, c)
	}
}

func (p *Playing) drawCharacter(screen *ebiten.Image, c entity.Character, camX float64) {
	x := c.Pos.X - camX
	if c.IsInvulnerable() && (c.InvulnerableTicks/4)%2 == 0 {
		ebitenutil.DrawRect(screen, x, c.Pos.Y, c.Width, c.Height, colorFlash)
		return
	}

	sprite := p.characterSprite()
	op := &ebiten.DrawImageOptions{}
	sx := c.Width / appearance.SpriteWidth
	sy := c.Height / appearance.SpriteHeight
	if c.Facing == entity.FacingLeft {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(x+c.Width, c.Pos.Y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, c.Pos.Y)
	}
	screen.DrawImage(sprite, op)
}

// characterSprite rebuilds the sprite image when the appearance changed
func (p *Playing) characterSprite() *ebiten.Image {
	look := p.session.Simulation().Appearance()
	if p.sprite != nil && sameLook(look, p.spriteLook) {
		return p.sprite
	}
	if p.sprite == nil {
		p.sprite = ebiten.NewImage(appearance.SpriteWidth, appearance.SpriteHeight)
	}
	p.sprite.WritePixels(SpritePixels(look))
	p.spriteLook = look
	return p.sprite
}

func sameLook(a, b appearance.Appearance) bool {
	if a.Skin != b.Skin || a.Outfit != b.Outfit || a.Hair != b.Hair {
		return false
	}
	if a.Custom == nil || b.Custom == nil {
		return a.Custom == b.Custom
	}
	return *a.Custom == *b.Custom
}

// SpritePixels returns the appearance as premultiplied RGBA bytes, row-major
func SpritePixels(look appearance.Appearance) []byte {
	sprite := look.Sprite()
	pix := make([]byte, 0, appearance.SpritePixels*4)
	for y := 0; y < appearance.SpriteHeight; y++ {
		for x := 0; x < appearance.SpriteWidth; x++ {
			c := look.Color(sprite[y][x])
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}
	return pix
}

func (p *Playing) drawUI(screen *ebiten.Image, snap simulation.Snapshot) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := 0.0
	if snap.Character.MaxHealth > 0 {
		healthRatio = math.Max(0, float64(snap.Character.Health)/float64(snap.Character.MaxHealth))
	}
	barColor := colorHealthLow
	switch {
	case healthRatio > 0.5:
		barColor = colorHealthHigh
	case healthRatio > 0.25:
		barColor = colorHealthMid
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, barColor)

	status := fmt.Sprintf("Score: %d  Lives: %d  Level: %d  Coins left: %d",
		snap.Score, snap.Lives, snap.Level, snap.RemainingCoins())
	if p.sensor != nil {
		status += fmt.Sprintf("  Tracking: %.0f%%", p.session.Tracking()*100)
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-38)

	ebitenutil.DebugPrint(screen, "Pose or A/D: Move | W: Jump | S: Duck | Space: Continue | L: Log | ESC: Pause")
}

func (p *Playing) drawMovementLog(screen *ebiten.Image) {
	entries := p.session.MovementLog()
	if len(entries) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString("Movements\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-5s %3.0f%%\n", e.Label, e.Confidence*100)
	}
	ebitenutil.DebugPrintAt(screen, sb.String(), p.screenW-110, 20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image, snap simulation.Snapshot) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := fmt.Sprintf("GAME OVER\n\nFinal score: %d\nReached level: %d\n\nPress SPACE to restart", snap.Score, snap.Level)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-40)
}

func (p *Playing) drawLevelCompleteOverlay(screen *ebiten.Image, snap simulation.Snapshot) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := fmt.Sprintf("LEVEL %d COMPLETE!\n\nScore: %d\n\nPress SPACE for the next level", snap.Level, snap.Score)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-90, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
