// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/pkg/errors"

	"godescent/math/vec"
	"godescent/object"
	"godescent/segment"
)

type voice struct {
	active    bool
	sample    int
	volume    float32
	pan       float32
	loop      bool
	loopStart int
	loopEnd   int
	end       func()
}

type started struct {
	ch     int
	sample int
	volume float32
	pan    float32
	loop   bool
}

type fakeChannels struct {
	voices []voice
	starts []started
	stops  []int
	ends   []int
}

func newFakeChannels(n int) *fakeChannels {
	return &fakeChannels{voices: make([]voice, n)}
}

func (f *fakeChannels) Start(sample int, volume, pan float32, loop bool, loopStart, loopEnd int, end func()) int {
	for i := range f.voices {
		if f.voices[i].active {
			continue
		}
		previous := f.voices[i].end
		f.voices[i] = voice{true, sample, volume, pan, loop, loopStart, loopEnd, end}
		f.starts = append(f.starts, started{i, sample, volume, pan, loop})
		// like the mixer, the last owner of a finished voice learns about
		// the reuse
		if previous != nil {
			previous()
		}
		return i
	}
	return -1
}

func (f *fakeChannels) Stop(ch int) {
	f.voices[ch].active = false
	f.voices[ch].end = nil
	f.stops = append(f.stops, ch)
}

func (f *fakeChannels) End(ch int) {
	f.voices[ch].active = false
	f.voices[ch].end = nil
	f.ends = append(f.ends, ch)
}

func (f *fakeChannels) SetVolume(ch int, v float32) { f.voices[ch].volume = v }
func (f *fakeChannels) SetPan(ch int, p float32)    { f.voices[ch].pan = p }
func (f *fakeChannels) IsPlaying(ch int) bool       { return f.voices[ch].active }
func (f *fakeChannels) MaxChannels() int            { return len(f.voices) }

func (f *fakeChannels) StopAll() {
	for i := range f.voices {
		f.voices[i].active = false
		f.voices[i].end = nil
	}
}

// finish lets the sound on ch run out. Its end callback runs once the
// voice is reused.
func (f *fakeChannels) finish(ch int) {
	f.voices[ch].active = false
}

// steal takes ch away like a mixer running out of channels.
func (f *fakeChannels) steal(ch int) {
	end := f.voices[ch].end
	f.voices[ch].active = false
	f.voices[ch].end = nil
	if end != nil {
		end()
	}
}

func (f *fakeChannels) active() int {
	n := 0
	for _, v := range f.voices {
		if v.active {
			n++
		}
	}
	return n
}

// openLevel has every segment connected by a straight line, apart from
// the blocked ones.
type openLevel struct {
	highest int
	blocked map[int]bool
}

func (l *openLevel) ConnectedDistance(p0 vec.Vec3, s0 int, p1 vec.Vec3, s1 int, _ int, _ segment.WallFlags) (float32, bool) {
	if l.blocked[s0] || l.blocked[s1] {
		return 0, false
	}
	d := vec.Sub(p1, p0)
	return d.Length(), true
}

func (l *openLevel) HighestSegment() int {
	return l.highest
}

// fakeSounds maps the sounds 0 to 99 onto the sample of the same number.
type fakeSounds struct {
	missing map[int]bool
}

func (f *fakeSounds) Xlat(sound int) int {
	if sound < 0 || sound >= 100 {
		return -1
	}
	return sound
}

func (f *fakeSounds) Unxlat(sample int) (int, error) {
	if sample < 0 || sample >= 100 {
		return -1, errors.Errorf("no sound for sample %d", sample)
	}
	return sample, nil
}

func (f *fakeSounds) HasData(sample int) bool {
	return !f.missing[sample]
}

type fakeClock float64

func (c *fakeClock) Time() float64 { return float64(*c) }

type linkEvent struct {
	sound       int
	obj         int
	sig         object.Signature
	maxVolume   float32
	maxDistance float32
}

type fakeRecorder struct {
	sounds   []int
	sounds3D []int
	links    []linkEvent
	kills    []int
}

func (r *fakeRecorder) RecordSound(sound int) { r.sounds = append(r.sounds, sound) }
func (r *fakeRecorder) RecordSound3D(sound int, _, _ float32) {
	r.sounds3D = append(r.sounds3D, sound)
}
func (r *fakeRecorder) RecordLinkSoundToObject(sound int, obj int, sig object.Signature, maxVolume, maxDistance float32, _, _ int) {
	r.links = append(r.links, linkEvent{sound, obj, sig, maxVolume, maxDistance})
}
func (r *fakeRecorder) RecordKillSoundLinkedToObject(obj int, _ object.Signature) {
	r.kills = append(r.kills, obj)
}

type testScene struct {
	*Scene
	ch      *fakeChannels
	level   *openLevel
	sounds  *fakeSounds
	objects *object.Table
	clock   *fakeClock
	viewer  int
}

// newTestScene puts the viewer into segment 0 at the origin looking down +Z.
func newTestScene(channels int) *testScene {
	ts := &testScene{
		ch:      newFakeChannels(channels),
		level:   &openLevel{highest: 9, blocked: map[int]bool{}},
		sounds:  &fakeSounds{missing: map[int]bool{}},
		objects: object.NewTable(),
		clock:   new(fakeClock),
	}
	ts.Scene = New(Config{
		Channels: ts.ch,
		Level:    ts.level,
		Sounds:   ts.sounds,
		Objects:  ts.objects,
		Clock:    ts.clock,
	})
	ts.viewer = ts.objects.Create(object.TypePlayer, 0, vec.Vec3{}, vec.Identity)
	ts.SetViewer(ts.viewer)
	return ts
}

func (ts *testScene) robot(seg int, pos vec.Vec3) int {
	return ts.objects.Create(object.TypeRobot, seg, pos, vec.Identity)
}
