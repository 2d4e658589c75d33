package arena

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/soulwave/internal/application/session"
	"github.com/younwookim/soulwave/internal/application/state"
)

const controlsText = "WASD: Move | Space: Sword | Q: Skill | R: Collect soul | F2: Autopilot | F5: Save replay | ESC: Pause"

// statusLine is the HUD's top line
func statusLine(s *session.Session) string {
	d := s.Simulation().Director()
	wave := fmt.Sprintf("Wave %d", d.CurrentWave())
	if n := d.Config().MaxWaves; n > 0 {
		wave = fmt.Sprintf("Wave %d/%d", d.CurrentWave(), n)
	}

	line := fmt.Sprintf("%s | Souls %d | Enemies %d | %s", wave, d.SoulTally(), d.LiveCount(), d.Phase())
	if in, ok := d.NextWaveIn(); ok {
		line += fmt.Sprintf(" | next wave in %.1fs", in)
	}
	return line
}

// drawHUD draws the status line, cooldowns, the event feed and state overlays
func drawHUD(screen *ebiten.Image, s *session.Session, feed *Feed, gs state.GameState, autopilot bool) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	ebitenutil.DebugPrintAt(screen, statusLine(s), 4, 2)
	ebitenutil.DebugPrintAt(screen, controlsText, 4, h-16)

	skill := "ready"
	if !s.PlayerSystem().SkillReady() {
		skill = "cooling"
	}
	status := fmt.Sprintf("Skill: %s", skill)
	if autopilot {
		status += " | AUTOPILOT"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, h-32)

	for i, l := range feed.Lines() {
		ebitenutil.DebugPrintAt(screen, l.Text, 4, 20+i*14)
	}

	if gate := s.Exit(); gate != nil && gate.Noticing() {
		ebitenutil.DebugPrintAt(screen, "The gate will not open yet", w/2-80, h/2+40)
	}

	switch gs {
	case state.StatePaused:
		overlay(screen, color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", w/2-50, h/2-20)
	case state.StateComplete:
		overlay(screen, color.RGBA{0, 40, 20, 180})
		sum := s.Summary()
		text := fmt.Sprintf("ARENA CLEARED\n\nSouls: %d\nKills: %d\nTime: %.1fs\n\nPress ESC to quit",
			sum.Souls, sum.Kills, sum.Elapsed)
		ebitenutil.DebugPrintAt(screen, text, w/2-60, h/2-40)
	}
}

func overlay(screen *ebiten.Image, c color.RGBA) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
