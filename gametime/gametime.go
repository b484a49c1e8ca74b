// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"time"

	"godescent/cvars"
	"godescent/math"
)

type GameTime struct {
	start      time.Time
	real       float64
	oldReal    float64
	time       float64
	frameTime  float64
	frameCount int
}

func New() *GameTime {
	return &GameTime{start: time.Now(), frameTime: 0.1}
}

func (h *GameTime) Reset() {
	h.frameTime = 0.1
}

// Time returns the simulated time in seconds.
func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }

// Advance moves the simulated time by dt seconds without looking at the wall
// clock. Demo playback and tests drive the clock this way.
func (h *GameTime) Advance(dt float64) {
	h.frameTime = dt
	h.time += dt
	h.frameCount++
}

// UpdateTime advances the simulated time by the elapsed wall clock time.
// Returns false if it would exceed max fps.
func (h *GameTime) UpdateTime() bool {
	if h.start.IsZero() {
		h.start = time.Now()
	}
	h.real = time.Since(h.start).Seconds()
	maxFPS := math.Clamp(10.0, float64(cvars.HostMaxFps.Value()), 1000.0)
	if h.real-h.oldReal < 1/maxFPS {
		return false
	}
	dt := h.real - h.oldReal
	h.oldReal = h.real

	if cvars.HostTimeScale.Value() > 0 {
		dt *= float64(cvars.HostTimeScale.Value())
	} else if cvars.HostFrameRate.Value() > 0 {
		dt = float64(cvars.HostFrameRate.Value())
	} else {
		dt = math.Clamp(0.001, dt, 0.1)
	}
	h.Advance(dt)
	return true
}
