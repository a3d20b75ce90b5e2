package ui

import (
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	confettiFPS = 30

	// Burst lifetime in frames.
	confettiFrames = 2 * confettiFPS

	// Terminal cells are roughly twice as tall as wide, and a burst has to
	// fit in a handful of rows. Velocities in cells/second are scaled down
	// from the browser's pixel-ish units by these factors.
	velocityScaleX = 0.8
	velocityScaleY = 0.4
)

var confettiGlyphs = []rune{'*', '+', '•', '▪', '◆', '~'}

// ConfettiOptions shapes a burst.
type ConfettiOptions struct {
	ParticleCount int
	Spread        float64 // degrees
	Angle         float64 // degrees, 90 is straight up
	StartVelocity float64
	Gravity       float64 // multiplier on terminal gravity
}

// DefaultConfettiOptions is a small celebratory burst.
func DefaultConfettiOptions() ConfettiOptions {
	return ConfettiOptions{
		ParticleCount: 30,
		Spread:        35,
		Angle:         90,
		StartVelocity: 30,
		Gravity:       1,
	}
}

type particle struct {
	p     *harmonica.Projectile
	glyph rune
	color lipgloss.Color
}

// Confetti is one burst of particles fired from the bottom centre of a
// width x height area.
type Confetti struct {
	ID        int
	width     int
	height    int
	frame     int
	particles []particle
}

// ConfettiTickMsg advances the burst with the matching ID.
type ConfettiTickMsg struct {
	ID int
}

// NewConfetti fires a burst. rng picks each particle's launch angle, speed
// jitter, glyph and color.
func NewConfetti(id, width, height int, opts ConfettiOptions, rng *rand.Rand) *Confetti {
	c := &Confetti{ID: id, width: max(width, 1), height: max(height, 1)}

	origin := harmonica.Point{X: float64(c.width) / 2, Y: float64(c.height - 1)}
	gravity := harmonica.Vector{Y: harmonica.TerminalGravity.Y * opts.Gravity}

	for i := 0; i < opts.ParticleCount; i++ {
		deg := opts.Angle + (rng.Float64()-0.5)*opts.Spread
		rad := deg * math.Pi / 180
		speed := opts.StartVelocity * (0.5 + rng.Float64()*0.5)
		vel := harmonica.Vector{
			X: math.Cos(rad) * speed * velocityScaleX,
			Y: -math.Sin(rad) * speed * velocityScaleY,
		}

		c.particles = append(c.particles, particle{
			p:     harmonica.NewProjectile(harmonica.FPS(confettiFPS), origin, vel, gravity),
			glyph: confettiGlyphs[rng.Intn(len(confettiGlyphs))],
			color: ConfettiColors[rng.Intn(len(ConfettiColors))],
		})
	}
	return c
}

// Tick schedules the next frame.
func (c *Confetti) Tick() tea.Cmd {
	id := c.ID
	return tea.Tick(time.Second/confettiFPS, func(time.Time) tea.Msg {
		return ConfettiTickMsg{ID: id}
	})
}

// Step advances every particle one frame and reports whether the burst is
// still running.
func (c *Confetti) Step() bool {
	if c.Done() {
		return false
	}
	c.frame++
	for _, pt := range c.particles {
		pt.p.Update()
	}
	return !c.Done()
}

// Done reports whether the burst has burned out or every particle has
// fallen out of the area.
func (c *Confetti) Done() bool {
	if c.frame >= confettiFrames {
		return true
	}
	for _, pt := range c.particles {
		if pt.p.Position().Y < float64(c.height) {
			return false
		}
	}
	return true
}

// View draws the particles on a blank width x height canvas.
func (c *Confetti) View() string {
	grid := make([][]string, c.height)
	for y := range grid {
		grid[y] = make([]string, c.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	if !c.Done() {
		for _, pt := range c.particles {
			pos := pt.p.Position()
			x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))
			if x < 0 || x >= c.width || y < 0 || y >= c.height {
				continue
			}
			grid[y][x] = lipgloss.NewStyle().Foreground(pt.color).Render(string(pt.glyph))
		}
	}

	rows := make([]string, c.height)
	for y, row := range grid {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}
