// SPDX-License-Identifier: GPL-2.0-or-later

// Package mixer plays samples on a fixed number of channels. It implements
// snd.Channels for the game tick and beep.Streamer for the audio device.
package mixer

import (
	"sync"

	"github.com/gopxl/beep/v2"

	"godescent/math"
	"godescent/snd"
)

var _ snd.Channels = (*Mixer)(nil)

// Samples provides the decoded sample data.
type Samples interface {
	Buffer(sample int) *beep.Buffer
}

type voice struct {
	playing   bool
	sample    int
	src       beep.StreamSeeker
	loop      bool
	loopStart int
	loopEnd   int
	volume    float32
	pan       float32
	left      float64
	right     float64
	// end is called when the voice is handed to another sound, nil after
	// the owner stopped or ended it
	end func()
}

func (v *voice) setPan(volume, pan float32) {
	v.volume = volume
	v.pan = pan
	v.left = float64(volume) * math.Clamp(0, 2*(1-float64(pan)), 1)
	v.right = float64(volume) * math.Clamp(0, 2*float64(pan), 1)
}

// stop marks the voice free without telling its owner.
func (v *voice) stop() {
	v.playing = false
	v.src = nil
	v.end = nil
}

func (v *voice) last() int {
	l := v.src.Len()
	if v.loop && v.loopEnd > 0 && v.loopEnd < l {
		return v.loopEnd
	}
	return l
}

func (v *voice) first() int {
	if v.loopStart > 0 {
		return v.loopStart
	}
	return 0
}

// read fills samples from the voice and returns how many it got. A looping
// voice plays from the start once and then repeats between its loop points.
func (v *voice) read(samples [][2]float64) int {
	filled := 0
	for filled < len(samples) {
		last := v.last()
		if v.src.Position() >= last {
			if !v.loop || v.first() >= last {
				break
			}
			if err := v.src.Seek(v.first()); err != nil {
				break
			}
		}
		end := min(len(samples), filled+last-v.src.Position())
		n, _ := v.src.Stream(samples[filled:end])
		if n == 0 {
			break
		}
		filled += n
	}
	return filled
}

type Mixer struct {
	mu      sync.Mutex
	samples Samples
	voices  []voice
	master  float64
	buf     [][2]float64
}

func New(samples Samples, channels int) *Mixer {
	return &Mixer{
		samples: samples,
		voices:  make([]voice, channels),
		master:  1,
	}
}

func (m *Mixer) valid(ch int) bool {
	return ch >= 0 && ch < len(m.voices)
}

// pick returns a free voice or the quietest one shot that is quieter than
// volume, -1 if there is none.
func (m *Mixer) pick(volume float32) int {
	for i := range m.voices {
		if !m.voices[i].playing {
			return i
		}
	}
	best := -1
	for i := range m.voices {
		v := &m.voices[i]
		if v.loop || v.volume >= volume {
			continue
		}
		if best == -1 || v.volume < m.voices[best].volume {
			best = i
		}
	}
	return best
}

func (m *Mixer) Start(sample int, volume, pan float32, loop bool, loopStart, loopEnd int, end func()) int {
	b := m.samples.Buffer(sample)
	if b == nil || b.Len() == 0 {
		return -1
	}

	m.mu.Lock()
	ch := m.pick(volume)
	if ch == -1 {
		m.mu.Unlock()
		return -1
	}
	v := &m.voices[ch]
	previous := v.end
	*v = voice{
		playing:   true,
		sample:    sample,
		src:       b.Streamer(0, b.Len()),
		loop:      loop,
		loopStart: loopStart,
		loopEnd:   loopEnd,
		end:       end,
	}
	v.setPan(volume, pan)
	m.mu.Unlock()

	// the previous owner must not hold the lock, it may call back into us
	if previous != nil {
		previous()
	}
	return ch
}

func (m *Mixer) Stop(ch int) {
	if !m.valid(ch) {
		return
	}
	m.mu.Lock()
	m.voices[ch].stop()
	m.mu.Unlock()
}

func (m *Mixer) End(ch int) {
	m.Stop(ch)
}

func (m *Mixer) StopAll() {
	m.mu.Lock()
	for i := range m.voices {
		m.voices[i].stop()
	}
	m.mu.Unlock()
}

func (m *Mixer) SetVolume(ch int, volume float32) {
	if !m.valid(ch) {
		return
	}
	m.mu.Lock()
	v := &m.voices[ch]
	v.setPan(volume, v.pan)
	m.mu.Unlock()
}

func (m *Mixer) SetPan(ch int, pan float32) {
	if !m.valid(ch) {
		return
	}
	m.mu.Lock()
	v := &m.voices[ch]
	v.setPan(v.volume, pan)
	m.mu.Unlock()
}

func (m *Mixer) IsPlaying(ch int) bool {
	if !m.valid(ch) {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voices[ch].playing
}

func (m *Mixer) MaxChannels() int {
	return len(m.voices)
}

// SetMasterVolume scales the whole output.
func (m *Mixer) SetMasterVolume(v float32) {
	m.mu.Lock()
	m.master = math.Clamp(0, float64(v), 1)
	m.mu.Unlock()
}

// Stream mixes all playing voices. It never runs out.
func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(samples)
	if cap(m.buf) < len(samples) {
		m.buf = make([][2]float64, len(samples))
	}
	tmp := m.buf[:len(samples)]
	for i := range m.voices {
		v := &m.voices[i]
		if !v.playing {
			continue
		}
		n := v.read(tmp)
		for j := range tmp[:n] {
			samples[j][0] += tmp[j][0] * v.left * m.master
			samples[j][1] += tmp[j][1] * v.right * m.master
		}
		if n < len(tmp) {
			// keep end so the owner learns when the voice gets reused
			v.playing = false
			v.src = nil
		}
	}
	return len(samples), true
}

func (m *Mixer) Err() error {
	return nil
}
