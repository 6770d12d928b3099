// Package terminal plays the game in a character-cell terminal.
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/appearance"
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// hudRows is the number of rows above the world view
const hudRows = 1

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleGround   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 69, 19))
	stylePlatform = tcell.StyleDefault.Foreground(tcell.NewRGBColor(34, 139, 34))
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleSlime    = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen)
	styleLog      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

var particleStyles = map[entity.ParticleKind]tcell.Style{
	entity.ParticleCoin:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	entity.ParticleEnemy: tcell.StyleDefault.Foreground(tcell.ColorRed),
	entity.ParticleHit:   tcell.StyleDefault.Foreground(tcell.ColorOrangeRed),
}

// Renderer draws snapshots scaled from world pixels to terminal cells
type Renderer struct {
	screen    tcell.Screen
	display   *config.DisplayConfig
	character tcell.Style
	outfit    tcell.Style

	tracking     float64
	showTracking bool
}

// NewRenderer creates a renderer for screen. The visible world is the
// display's logical size, squeezed into the terminal.
func NewRenderer(screen tcell.Screen, display *config.DisplayConfig) *Renderer {
	r := &Renderer{screen: screen, display: display}
	r.SetAppearance(appearance.Default())
	return r
}

// SetAppearance picks the character colours
func (r *Renderer) SetAppearance(a appearance.Appearance) {
	r.character = tcell.StyleDefault.Foreground(toColor(a.Color(appearance.RoleSkin))).
		Background(toColor(a.Color(appearance.RoleOutfitPrimary)))
	r.outfit = tcell.StyleDefault.Foreground(toColor(a.Color(appearance.RoleOutfitPrimary)))
}

// ShowTracking adds the pose tracking quality to the HUD
func (r *Renderer) ShowTracking(visibility float64) {
	r.tracking = visibility
	r.showTracking = true
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap simulation.Snapshot, moves []system.MovementEntry) {
	r.screen.Clear()
	v := r.viewport(snap)

	r.drawGround(v, snap.GroundLevel)
	for _, p := range snap.Platforms {
		if p.Kind == entity.PlatformGround {
			continue
		}
		r.fill(v, p.AABB, '=', stylePlatform)
	}
	for _, c := range snap.Coins {
		if c.Collected {
			continue
		}
		glyph := 'o'
		if math.Mod(c.Spin, 2) > 1 {
			glyph = '0'
		}
		r.fill(v, c.AABB, glyph, styleCoin)
	}
	for _, e := range snap.Enemies {
		r.fill(v, e.Bounds(), 'S', styleSlime)
	}
	for _, p := range snap.Particles {
		col, row := v.cell(p.Pos.X, p.Pos.Y)
		r.put(col, row, '.', particleStyles[p.Kind])
	}
	r.drawCharacter(v, snap.Character)

	r.drawHUD(snap)
	r.drawMoves(moves)
	r.drawOverlay(snap.State)
	r.screen.Show()
}

// viewport maps world coordinates to cells for the current screen size
type viewport struct {
	camX       float64
	scaleX     float64
	scaleY     float64
	cols, rows int
}

func (r *Renderer) viewport(snap simulation.Snapshot) viewport {
	cols, rows := r.screen.Size()
	worldRows := rows - hudRows
	if cols < 1 {
		cols = 1
	}
	if worldRows < 1 {
		worldRows = 1
	}
	return viewport{
		camX:   snap.Camera.X,
		scaleX: float64(r.display.ScreenWidth) / float64(cols),
		scaleY: float64(r.display.ScreenHeight) / float64(worldRows),
		cols:   cols,
		rows:   rows,
	}
}

func (v viewport) cell(x, y float64) (col, row int) {
	col = int(math.Floor((x - v.camX) / v.scaleX))
	row = hudRows + int(math.Floor(y/v.scaleY))
	return col, row
}

// fill covers every cell the box touches, at least one
func (r *Renderer) fill(v viewport, box entity.AABB, glyph rune, style tcell.Style) {
	c0, r0 := v.cell(box.X, box.Y)
	c1, r1 := v.cell(box.Right()-0.001, box.Bottom()-0.001)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.put(col, row, glyph, style)
		}
	}
}

func (r *Renderer) drawGround(v viewport, groundLevel float64) {
	_, top := v.cell(0, groundLevel)
	for row := top; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			r.put(col, row, '#', styleGround)
		}
	}
}

func (r *Renderer) drawCharacter(v viewport, c entity.Character) {
	glyph := '@'
	if c.IsDucking {
		glyph = 'a'
	}
	style := r.character
	if c.IsInvulnerable() && c.InvulnerableTicks%8 < 4 {
		style = r.outfit
	}
	r.fill(v, c.Bounds(), glyph, style)

	col, row := v.cell(c.Pos.X, c.Pos.Y)
	if c.Facing == entity.FacingLeft {
		r.put(col-1, row, '<', r.outfit)
	} else {
		c1, _ := v.cell(c.Bounds().Right()-0.001, c.Pos.Y)
		r.put(c1+1, row, '>', r.outfit)
	}
}

func (r *Renderer) drawHUD(snap simulation.Snapshot) {
	line := fmt.Sprintf("Score: %d  Lives: %d  Level: %d  Coins: %d  HP: %d",
		snap.Score, snap.Lives, snap.Level, snap.RemainingCoins(), snap.Character.Health)
	if r.showTracking {
		line += fmt.Sprintf("  Track: %.0f%%", r.tracking*100)
	}
	r.text(0, 0, line, styleHUD)
}

func (r *Renderer) drawMoves(moves []system.MovementEntry) {
	cols, _ := r.screen.Size()
	for i, m := range moves {
		line := fmt.Sprintf("%-5s %3.0f%%", m.Label, m.Confidence*100)
		r.text(cols-len(line)-1, hudRows+i, line, styleLog)
	}
}

func (r *Renderer) drawOverlay(s state.GameState) {
	var msg string
	switch s {
	case state.StateGameOver:
		msg = " GAME OVER - press space to restart "
	case state.StateLevelComplete:
		msg = " LEVEL COMPLETE - press space to continue "
	default:
		return
	}
	cols, rows := r.screen.Size()
	r.text((cols-len(msg))/2, rows/2, msg, styleOverlay)
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for i, ch := range s {
		r.put(col+i, row, ch, style)
	}
}

func (r *Renderer) put(col, row int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
