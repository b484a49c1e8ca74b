// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"log"

	"godescent/cvars"
	"godescent/math/vec"
)

// LinkSoundToObject3 attaches sound to an object so it follows it around.
// A sound that does not play forever is started as a plain 3d sound and
// NoHandle is returned.
func (s *Scene) LinkSoundToObject3(sound int, objnum int, forever bool, maxVolume, maxDistance float32, loopStart, loopEnd int) Handle {
	o := s.objects.Get(objnum)
	if !o.Alive() {
		return NoHandle
	}
	if maxVolume < 0 {
		return NoHandle
	}
	sample := s.sounds.Xlat(sound)
	if sample < 0 || !s.sounds.HasData(sample) {
		return NoHandle
	}

	if !forever {
		// one shots do not need to be tracked
		volume, pan := s.listenerLoc(o.Pos, o.Segment, maxVolume, maxDistance)
		s.PlaySample3D(sound, pan, volume)
		return NoHandle
	}

	if s.recorder != nil {
		s.recorder.RecordLinkSoundToObject(sound, objnum, o.Signature, maxVolume, maxDistance, loopStart, loopEnd)
	}

	idx := s.findFree()
	if idx < 0 {
		if cvars.SoundDebug.Bool() {
			log.Printf("LinkSoundToObject: no free sound object for sound %d", sound)
		}
		return NoHandle
	}
	return s.linkCommon(idx, sample, forever, maxVolume, maxDistance, loopStart, loopEnd,
		objectLink{num: objnum, sig: o.Signature}, o.Pos, o.Segment)
}

func (s *Scene) LinkSoundToObject2(sound int, objnum int, forever bool, maxVolume, maxDistance float32) Handle {
	return s.LinkSoundToObject3(sound, objnum, forever, maxVolume, maxDistance, -1, -1)
}

func (s *Scene) LinkSoundToObject(sound int, objnum int, forever bool, maxVolume float32) Handle {
	return s.LinkSoundToObject2(sound, objnum, forever, maxVolume, DefaultMaxDistance)
}

// LinkSoundToPos2 attaches sound to a fixed point on a side of a segment.
func (s *Scene) LinkSoundToPos2(sound int, seg, side int, pos vec.Vec3, forever bool, maxVolume, maxDistance float32) Handle {
	if maxVolume < 0 {
		return NoHandle
	}
	sample := s.sounds.Xlat(sound)
	if sample < 0 || !s.sounds.HasData(sample) {
		return NoHandle
	}
	if seg < 0 || seg > s.level.HighestSegment() {
		return NoHandle
	}

	if !forever {
		volume, pan := s.listenerLoc(pos, seg, maxVolume, maxDistance)
		s.PlaySample3D(sound, pan, volume)
		return NoHandle
	}

	idx := s.findFree()
	if idx < 0 {
		if cvars.SoundDebug.Bool() {
			log.Printf("LinkSoundToPos: no free sound object for sound %d", sound)
		}
		return NoHandle
	}
	return s.linkCommon(idx, sample, forever, maxVolume, maxDistance, -1, -1,
		posLink{segment: seg, side: side, pos: pos}, pos, seg)
}

func (s *Scene) LinkSoundToPos(sound int, seg, side int, pos vec.Vec3, forever bool, maxVolume float32) Handle {
	return s.LinkSoundToPos2(sound, seg, side, pos, forever, maxVolume, DefaultMaxDistance)
}

func (s *Scene) linkCommon(idx int, sample int, forever bool, maxVolume, maxDistance float32,
	loopStart, loopEnd int, l link, pos vec.Vec3, seg int) Handle {
	so := &s.objs[idx]
	so.reset()
	so.signature = s.nextSignature
	s.nextSignature++
	so.flags = flagUsed
	if forever {
		so.flags |= flagPlayForever
	}
	so.link = l
	so.sample = sample
	so.maxVolume = maxVolume
	so.maxDistance = maxDistance
	so.loopStart = loopStart
	so.loopEnd = loopEnd

	if s.dontStartObjects {
		so.flags |= flagPermanent
		return Handle(so.signature)
	}

	so.volume, so.pan = s.listenerLoc(pos, seg, maxVolume, maxDistance)
	s.startSoundObject(idx)
	// a one shot that could not start is gone
	if !so.playing() && !forever {
		so.reset()
		return NoHandle
	}
	return Handle(so.signature)
}

// recordSoundObjects writes the running object links to a fresh recording.
func (s *Scene) recordSoundObjects(r Recorder) {
	for i := range s.objs {
		so := &s.objs[i]
		if !so.used() || !so.forever() {
			continue
		}
		l, ok := so.link.(objectLink)
		if !ok {
			continue
		}
		sound, err := s.sounds.Unxlat(so.sample)
		if err != nil {
			log.Printf("recordSoundObjects: %v", err)
			continue
		}
		r.RecordLinkSoundToObject(sound, l.num, l.sig, so.maxVolume, so.maxDistance, so.loopStart, so.loopEnd)
	}
}
