package arena

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/soulwave/internal/application/session"
	"github.com/younwookim/soulwave/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorBounds     = color.RGBA{80, 80, 100, 255}
	colorSpawn      = color.RGBA{50, 50, 70, 255}
	colorBossSpawn  = color.RGBA{90, 50, 70, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorReach      = color.RGBA{100, 200, 100, 80}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorStagger    = color.RGBA{255, 255, 255, 255}
	colorAttack     = color.RGBA{255, 60, 60, 255}
	colorShield     = color.RGBA{160, 160, 200, 255}
	colorSoul       = color.RGBA{255, 215, 0, 255}
	colorSoulRing   = color.RGBA{255, 215, 0, 90}
	colorGateOpen   = color.RGBA{80, 220, 160, 255}
	colorGateClosed = color.RGBA{90, 90, 90, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
)

// Renderer draws a session's arena from the simulation's read model
type Renderer struct {
	camera Camera
}

// NewRenderer creates a renderer for a w x h screen at ppu pixels per world unit
func NewRenderer(w, h int, ppu float64) *Renderer {
	if ppu <= 0 {
		ppu = 16
	}
	return &Renderer{camera: Camera{PPU: ppu, W: w, H: h}}
}

// Camera returns the current camera
func (r *Renderer) Camera() Camera { return r.camera }

// Draw renders the arena, gate, soul, enemies and player
func (r *Renderer) Draw(screen *ebiten.Image, s *session.Session) {
	screen.Fill(colorBG)
	r.camera.Follow(s.Player().Pos, s.Arena())

	r.drawArena(screen, s.Arena())
	r.drawExit(screen, s)
	r.drawSoul(screen, s)
	r.drawEnemies(screen, s)
	r.drawPlayer(screen, s)
}

func (r *Renderer) drawArena(screen *ebiten.Image, a *entity.Arena) {
	x, y := r.camera.ToScreen(entity.Vec2{})
	vector.StrokeRect(screen, x, y, r.camera.Pixels(a.Width), r.camera.Pixels(a.Height), 2, colorBounds, false)

	for _, sp := range a.SpawnPoints {
		c := colorSpawn
		if sp.Kind == entity.SpawnBoss {
			c = colorBossSpawn
		}
		px, py := r.camera.ToScreen(sp.Pos)
		vector.StrokeCircle(screen, px, py, r.camera.Pixels(0.5), 1, c, true)
	}
}

func (r *Renderer) drawExit(screen *ebiten.Image, s *session.Session) {
	gate := s.Exit()
	if gate == nil {
		return
	}
	c := colorGateClosed
	if gate.CanExit() {
		c = colorGateOpen
	}
	x, y := r.camera.ToScreen(gate.Pos)
	rad := r.camera.Pixels(gate.Radius)
	vector.DrawFilledRect(screen, x-rad/2, y-rad, rad, rad*2, c, false)
	vector.StrokeCircle(screen, x, y, rad, 1, c, true)
}

func (r *Renderer) drawSoul(screen *ebiten.Image, s *session.Session) {
	soul, ok := s.Simulation().Director().SoulPoint()
	if !ok {
		return
	}
	x, y := r.camera.ToScreen(soul.Pos)
	vector.StrokeCircle(screen, x, y, r.camera.Pixels(soul.Radius), 1, colorSoulRing, true)
	vector.DrawFilledCircle(screen, x, y, r.camera.Pixels(0.4), colorSoul, true)
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, s *session.Session) {
	w := s.Simulation().World()

	for _, id := range w.EnemyIDs() {
		kind := w.Kind[id].Name
		radius := 0.5
		c := colorEnemy
		if sprite, ok := s.Sprite(kind); ok {
			if sprite.Radius > 0 {
				radius = sprite.Radius
			}
			c = parseColor(sprite.Color, colorEnemy)
		}

		x, y := r.camera.ToScreen(w.Position[id])
		rad := r.camera.Pixels(radius)

		switch w.Behavior[id].State {
		case entity.StateDead:
			// Fade out during the exit delay
			vector.DrawFilledCircle(screen, x, y, rad, scaleColor(c, 0.35), true)
			continue
		case entity.StateStaggered:
			c = colorStagger
		case entity.StateAttacking:
			vector.DrawFilledCircle(screen, x, y, rad+2, colorAttack, true)
		}
		vector.DrawFilledCircle(screen, x, y, rad, c, true)

		if w.Gate[id].Gated {
			vector.StrokeCircle(screen, x, y, rad+3, 2, colorShield, true)
		}

		h := w.Health[id]
		if h.Current < h.Max {
			barW := rad * 2
			vector.DrawFilledRect(screen, x-rad, y-rad-6, barW, 3, colorHealthBG, false)
			vector.DrawFilledRect(screen, x-rad, y-rad-6, barW*float32(h.Fraction()), 3, colorHealthFG, false)
		}
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, s *session.Session) {
	p := s.Player()
	x, y := r.camera.ToScreen(p.Pos)

	if !p.CanStrike() {
		vector.StrokeCircle(screen, x, y, r.camera.Pixels(p.StrikeRadius), 1, colorReach, true)
	}
	vector.DrawFilledCircle(screen, x, y, r.camera.Pixels(0.45), colorPlayer, true)
}
