package arena

import (
	"fmt"
	"image/color"
	"math"

	"github.com/younwookim/soulwave/internal/domain/entity"
)

// Camera maps world units to screen pixels, following the player
type Camera struct {
	PPU  float64 // pixels per world unit
	W, H int     // screen size in pixels
	X, Y float64 // world position of the screen's top-left corner
}

// Follow centers the camera on target, clamped so the view stays inside bounds.
// An arena smaller than the view is centered instead.
func (c *Camera) Follow(target entity.Vec2, bounds *entity.Arena) {
	viewW := float64(c.W) / c.PPU
	viewH := float64(c.H) / c.PPU
	c.X = clampView(target.X-viewW/2, bounds.Width, viewW)
	c.Y = clampView(target.Y-viewH/2, bounds.Height, viewH)
}

func clampView(x, world, view float64) float64 {
	if world <= view {
		return (world - view) / 2
	}
	return math.Max(0, math.Min(world-view, x))
}

// ToScreen converts a world position to screen pixels
func (c Camera) ToScreen(v entity.Vec2) (float32, float32) {
	return float32((v.X - c.X) * c.PPU), float32((v.Y - c.Y) * c.PPU)
}

// Pixels converts a world distance to pixels
func (c Camera) Pixels(d float64) float32 {
	return float32(d * c.PPU)
}

// parseColor reads a #rrggbb sprite color, falling back to fallback
func parseColor(s string, fallback color.RGBA) color.RGBA {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// scaleColor darkens c by f in [0, 1], alpha included (premultiplied)
func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
