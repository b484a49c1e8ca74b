// SPDX-License-Identifier: GPL-2.0-or-later

package snd

// loopingSound is the one ambient loop not tied to a place, e.g. the
// countdown siren.
type loopingSound struct {
	sample    int // -1 if none
	volume    float32
	loopStart int
	loopEnd   int
	channel   int
	gen       int
}

func (l *loopingSound) reset() {
	*l = loopingSound{sample: -1, channel: -1, loopStart: -1, loopEnd: -1, gen: l.gen + 1}
}

// ended runs when the mixer takes the channel of start gen away. The loop
// keeps its parameters and comes back with ResumeLoopingSound.
func (l *loopingSound) ended(gen int) {
	if gen != l.gen {
		return
	}
	l.channel = -1
}

func (s *Scene) playLooping() {
	l := &s.looping
	if l.sample < 0 {
		return
	}
	l.gen++
	gen := l.gen
	l.channel = s.channels.Start(l.sample, l.volume, CenterPan, true, l.loopStart, l.loopEnd,
		func() { l.ended(gen) })
}

// PlaySampleLooping replaces the ambient loop.
func (s *Scene) PlaySampleLooping(sound int, volume float32, loopStart, loopEnd int) {
	sample := s.sounds.Xlat(sound)
	if sample < 0 {
		return
	}
	l := &s.looping
	if l.channel > -1 {
		s.channels.Stop(l.channel)
	}
	l.sample = sample
	l.volume = volume
	l.loopStart = loopStart
	l.loopEnd = loopEnd
	l.channel = -1
	s.playLooping()
}

// ChangeLoopingVolume also applies to a paused loop once it resumes.
func (s *Scene) ChangeLoopingVolume(volume float32) {
	l := &s.looping
	if l.channel > -1 {
		s.channels.SetVolume(l.channel, volume)
	}
	l.volume = volume
}

func (s *Scene) StopLoopingSound() {
	if s.looping.channel > -1 {
		s.channels.Stop(s.looping.channel)
	}
	s.looping.reset()
}

// PauseLoopingSound stops the loop but keeps it for ResumeLoopingSound.
func (s *Scene) PauseLoopingSound() {
	l := &s.looping
	if l.channel > -1 {
		s.channels.Stop(l.channel)
	}
	l.channel = -1
}

func (s *Scene) ResumeLoopingSound() {
	if s.looping.channel > -1 {
		return
	}
	s.playLooping()
}
