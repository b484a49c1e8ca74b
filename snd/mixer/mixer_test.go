// SPDX-License-Identifier: GPL-2.0-or-later

package mixer

import (
	"encoding/binary"
	gomath "math"
	"testing"

	"github.com/gopxl/beep/v2"
)

var format = beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}

// constant returns a streamer of n frames of value v on both sides.
func constant(n int, v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if n == 0 {
			return 0, false
		}
		c := min(n, len(samples))
		for i := range samples[:c] {
			samples[i] = [2]float64{v, v}
		}
		n -= c
		return c, true
	})
}

type fakeSamples map[int]*beep.Buffer

func (f fakeSamples) Buffer(sample int) *beep.Buffer {
	return f[sample]
}

func newFakeSamples() fakeSamples {
	short := beep.NewBuffer(format)
	short.Append(constant(100, 0.5))
	long := beep.NewBuffer(format)
	long.Append(constant(10000, 0.5))
	return fakeSamples{0: short, 1: long, 2: beep.NewBuffer(format)}
}

func near(a, b float64) bool {
	return gomath.Abs(a-b) < 0.01
}

func TestStartChannels(t *testing.T) {
	m := New(newFakeSamples(), 2)
	if ch := m.Start(7, 1, 0.5, false, -1, -1, nil); ch != -1 {
		t.Errorf("Start(unknown) = %v want -1", ch)
	}
	if ch := m.Start(2, 1, 0.5, false, -1, -1, nil); ch != -1 {
		t.Errorf("Start(empty) = %v want -1", ch)
	}
	a := m.Start(1, 0.5, 0.5, false, -1, -1, nil)
	b := m.Start(1, 0.5, 0.5, false, -1, -1, nil)
	if a != 0 || b != 1 {
		t.Errorf("Start = %v, %v want 0, 1", a, b)
	}
	if ch := m.Start(1, 0.5, 0.5, false, -1, -1, nil); ch != -1 {
		t.Errorf("Start(full, same volume) = %v want -1", ch)
	}
	if !m.IsPlaying(a) || m.IsPlaying(5) {
		t.Errorf("IsPlaying = %v, %v want true, false", m.IsPlaying(a), m.IsPlaying(5))
	}
}

func TestStealQuietest(t *testing.T) {
	m := New(newFakeSamples(), 3)
	ended := map[int]bool{}
	endFunc := func(id int) func() { return func() { ended[id] = true } }
	m.Start(1, 0.5, 0.5, true, -1, -1, endFunc(0))
	m.Start(1, 0.3, 0.5, false, -1, -1, endFunc(1))
	m.Start(1, 0.4, 0.5, false, -1, -1, endFunc(2))

	ch := m.Start(1, 0.35, 0.5, false, -1, -1, nil)
	if ch != 1 || !ended[1] || len(ended) != 1 {
		t.Errorf("Start(steal) = %v, ended %v want 1, map[1:true]", ch, ended)
	}
	if ch := m.Start(1, 0.2, 0.5, false, -1, -1, nil); ch != -1 {
		t.Errorf("Start(quiet) = %v want -1", ch)
	}
}

func TestStopDoesNotCallEnd(t *testing.T) {
	m := New(newFakeSamples(), 1)
	called := false
	ch := m.Start(1, 1, 0.5, false, -1, -1, func() { called = true })
	m.Stop(ch)
	m.Start(1, 1, 0.5, false, -1, -1, nil)
	if called {
		t.Errorf("end called after Stop")
	}
}

func TestFinishedVoiceReused(t *testing.T) {
	m := New(newFakeSamples(), 1)
	called := false
	ch := m.Start(0, 1, 0.5, false, -1, -1, func() { called = true })
	m.Stream(make([][2]float64, 512))
	if m.IsPlaying(ch) {
		t.Fatalf("IsPlaying after the sample ran out")
	}
	if called {
		t.Errorf("end called before the voice was reused")
	}
	m.Start(1, 1, 0.5, false, -1, -1, nil)
	if !called {
		t.Errorf("end not called when the voice was reused")
	}
}

func TestStreamPan(t *testing.T) {
	tests := []struct {
		pan         float32
		left, right float64
	}{
		{0, 0.5, 0},
		{0.5, 0.5, 0.5},
		{1, 0, 0.5},
		{0.25, 0.5, 0.25},
	}
	for _, tc := range tests {
		m := New(newFakeSamples(), 1)
		m.Start(1, 1, tc.pan, false, -1, -1, nil)
		buf := make([][2]float64, 64)
		if n, ok := m.Stream(buf); n != 64 || !ok {
			t.Fatalf("Stream = %v, %v want 64, true", n, ok)
		}
		if !near(buf[10][0], tc.left) || !near(buf[10][1], tc.right) {
			t.Errorf("pan %v: got %v want [%v %v]", tc.pan, buf[10], tc.left, tc.right)
		}
	}
}

func TestStreamVolumeAndMix(t *testing.T) {
	m := New(newFakeSamples(), 4)
	a := m.Start(1, 1, 0.5, false, -1, -1, nil)
	m.Start(1, 1, 0.5, false, -1, -1, nil)
	m.SetVolume(a, 0.5)
	m.SetMasterVolume(0.5)
	buf := make([][2]float64, 16)
	m.Stream(buf)
	// (0.5*0.5 + 0.5*1) * 0.5
	if !near(buf[0][0], 0.375) || !near(buf[0][1], 0.375) {
		t.Errorf("mixed frame = %v want [0.375 0.375]", buf[0])
	}
	m.SetPan(a, 0)
	m.Stream(buf)
	if !near(buf[0][0], 0.375) || !near(buf[0][1], 0.25) {
		t.Errorf("mixed frame after pan = %v want [0.375 0.25]", buf[0])
	}
}

func TestStreamShortSample(t *testing.T) {
	m := New(newFakeSamples(), 1)
	m.Start(0, 1, 0.5, false, -1, -1, nil)
	buf := make([][2]float64, 256)
	m.Stream(buf)
	if buf[99][0] == 0 || buf[100][0] != 0 {
		t.Errorf("frames 99, 100 = %v, %v want sound then silence", buf[99], buf[100])
	}
}

func TestLoop(t *testing.T) {
	m := New(newFakeSamples(), 1)
	ch := m.Start(0, 1, 0.5, true, -1, -1, nil)
	buf := make([][2]float64, 1000)
	m.Stream(buf)
	if !m.IsPlaying(ch) || buf[999][0] == 0 {
		t.Errorf("looping voice stopped")
	}
}

func TestLoopPoints(t *testing.T) {
	b := beep.NewBuffer(format)
	b.Append(constant(10, 0.1))
	b.Append(constant(10, 0.2))
	b.Append(constant(10, 0.3))
	m := New(fakeSamples{0: b}, 1)
	m.Start(0, 1, 0.5, true, 10, 20, nil)
	buf := make([][2]float64, 40)
	m.Stream(buf)
	want := []float64{0.1, 0.2, 0.2, 0.2}
	for i, w := range want {
		if !near(buf[i*10+5][0], w) {
			t.Errorf("frame %d = %v want %v", i*10+5, buf[i*10+5][0], w)
		}
	}
}

func TestStopAll(t *testing.T) {
	m := New(newFakeSamples(), 3)
	for i := 0; i < 3; i++ {
		m.Start(1, 1, 0.5, true, -1, -1, nil)
	}
	m.StopAll()
	for i := 0; i < 3; i++ {
		if m.IsPlaying(i) {
			t.Errorf("IsPlaying(%d) after StopAll", i)
		}
	}
	buf := make([][2]float64, 8)
	m.Stream(buf)
	if buf[0] != [2]float64{} {
		t.Errorf("Stream after StopAll = %v want silence", buf[0])
	}
}

func TestEncodeFloat32LE(t *testing.T) {
	p := make([]byte, 2*frameSize)
	encodeFloat32LE(p, [][2]float64{{0.5, -2}, {2, 0}})
	want := []float32{0.5, -1, 1, 0}
	for i, w := range want {
		got := gomath.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
		if got != w {
			t.Errorf("sample %d = %v want %v", i, got, w)
		}
	}
}

type silence struct{}

func (silence) Stream(samples [][2]float64) (int, bool) { return 0, false }
func (silence) Err() error                              { return nil }

func TestOutputRead(t *testing.T) {
	o := &Output{src: silence{}}
	p := make([]byte, 10*frameSize+3)
	for i := range p {
		p[i] = 0xff
	}
	n, err := o.Read(p)
	if n != 10*frameSize || err != nil {
		t.Fatalf("Read = %v, %v want %v, nil", n, err, 10*frameSize)
	}
	for i := 0; i < n; i++ {
		if p[i] != 0 {
			t.Fatalf("byte %d = %v want 0", i, p[i])
		}
	}
}
