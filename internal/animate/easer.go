// Package animate eases the displayed percentage toward the reported one.
package animate

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	frequency = 6.0
	damping   = 1.0 // critically damped: no overshoot past 100%
	settleEps = 0.0005
)

// Easer drives a spring from the current percentage to a target.
type Easer struct {
	spring harmonica.Spring
	fps    int
	pos    float64
	vel    float64
}

// NewEaser returns an easer stepping at fps frames per second.
func NewEaser(fps int) *Easer {
	if fps <= 0 {
		fps = 60
	}
	return &Easer{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping), fps: fps}
}

// Frame is the duration of one step.
func (e *Easer) Frame() time.Duration {
	return time.Second / time.Duration(e.fps)
}

// Step advances one frame toward target and returns the new position.
func (e *Easer) Step(target float64) float64 {
	e.pos, e.vel = e.spring.Update(e.pos, e.vel, target)
	if e.Settled(target) {
		e.pos, e.vel = target, 0
	}
	return e.pos
}

// Jump moves straight to p without animating.
func (e *Easer) Jump(p float64) {
	e.pos, e.vel = p, 0
}

// Value is the current position.
func (e *Easer) Value() float64 {
	return e.pos
}

// Settled reports whether the spring has come to rest at target.
func (e *Easer) Settled(target float64) bool {
	return math.Abs(e.pos-target) < settleEps && math.Abs(e.vel) < settleEps
}
