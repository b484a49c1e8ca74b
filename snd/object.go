// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"godescent/math/vec"
	"godescent/object"
)

type flags uint8

const (
	flagUsed        flags = 1 << iota
	flagPlayForever       // plays until killed, otherwise once
	flagPermanent         // part of the level like a waterfall or fan
)

// link is either an objectLink or a posLink.
type link interface {
	isLink()
}

type objectLink struct {
	num int
	sig object.Signature
}

type posLink struct {
	segment int
	side    int
	pos     vec.Vec3
}

func (objectLink) isLink() {}
func (posLink) isLink()    {}

type soundObject struct {
	signature   uint16
	flags       flags
	maxVolume   float32
	maxDistance float32
	volume      float32
	pan         float32
	channel     int // -1 if not playing
	sample      int
	loopStart   int // -1 means no loop points
	loopEnd     int
	link        link
}

func (so *soundObject) reset() {
	*so = soundObject{channel: -1, loopStart: -1, loopEnd: -1}
}

func (so *soundObject) used() bool {
	return so.flags&flagUsed != 0
}

func (so *soundObject) forever() bool {
	return so.flags&flagPlayForever != 0
}

func (so *soundObject) playing() bool {
	return so.channel > -1
}

// findFree returns the index of the first unused sound object or -1.
func (s *Scene) findFree() int {
	for i := range s.objs {
		if s.objs[i].flags == 0 {
			return i
		}
	}
	return -1
}

// ActiveObjects returns the number of sound objects holding a channel.
func (s *Scene) ActiveObjects() int {
	n := 0
	for i := range s.objs {
		if s.objs[i].used() && s.objs[i].playing() {
			n++
		}
	}
	return n
}

// UsedObjects returns the number of tracked sound objects.
func (s *Scene) UsedObjects() int {
	n := 0
	for i := range s.objs {
		if s.objs[i].used() {
			n++
		}
	}
	return n
}

func (s *Scene) lookup(h Handle) *soundObject {
	if h < 0 {
		return nil
	}
	for i := range s.objs {
		so := &s.objs[i]
		if so.used() && Handle(so.signature) == h {
			return so
		}
	}
	return nil
}

// Channel returns the channel the sound object plays on or -1.
func (s *Scene) Channel(h Handle) int {
	so := s.lookup(h)
	if so == nil {
		return -1
	}
	return so.channel
}

// Alive reports whether h still refers to a tracked sound object.
func (s *Scene) Alive(h Handle) bool {
	return s.lookup(h) != nil
}

// kill stops the channel of so and frees it.
func (s *Scene) kill(so *soundObject) {
	if so.playing() {
		s.channels.Stop(so.channel)
	}
	so.reset()
}

// release gives the channel of so back. Looping sounds are cut, finished
// ones are acknowledged.
func (s *Scene) release(so *soundObject) {
	if !so.playing() {
		return
	}
	if so.forever() {
		s.channels.Stop(so.channel)
	} else {
		s.channels.End(so.channel)
	}
	so.channel = -1
}

// endSoundObject is called by the mixer when it takes the channel away.
func (s *Scene) endSoundObject(idx int, sig uint16) {
	so := &s.objs[idx]
	if !so.used() || so.signature != sig {
		return
	}
	so.channel = -1
}

// startSoundObject tries to get a channel for so.
func (s *Scene) startSoundObject(idx int) {
	so := &s.objs[idx]
	so.channel = -1

	if so.volume <= 0 {
		return
	}
	if s.dontStartObjects {
		return
	}
	// leave most channels to sounds triggered during play
	if so.flags&flagPermanent != 0 && s.ActiveObjects() >= max(1, s.channels.MaxChannels()/4) {
		return
	}

	sig := so.signature
	ch := s.channels.Start(so.sample, so.volume, so.pan, so.forever(), so.loopStart, so.loopEnd,
		func() { s.endSoundObject(idx, sig) })
	if ch > -1 {
		s.assertChannelFree(ch)
		so.channel = ch
	}
}
