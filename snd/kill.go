// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/pkg/errors"
)

// KillSoundLinkedToSegment kills the sounds linked to a side of a segment.
// sound -1 kills all of them.
func (s *Scene) KillSoundLinkedToSegment(seg, side, sound int) int {
	sample := -1
	if sound != -1 {
		sample = s.sounds.Xlat(sound)
		if sample < 0 {
			return 0
		}
	}
	killed := 0
	for i := range s.objs {
		so := &s.objs[i]
		if !so.used() {
			continue
		}
		l, ok := so.link.(posLink)
		if !ok || l.segment != seg || l.side != side {
			continue
		}
		if sample != -1 && so.sample != sample {
			continue
		}
		s.kill(so)
		killed++
	}
	return killed
}

// KillSoundLinkedToObject kills every sound following the object.
func (s *Scene) KillSoundLinkedToObject(objnum int) int {
	if s.recorder != nil {
		if o := s.objects.Get(objnum); o != nil {
			s.recorder.RecordKillSoundLinkedToObject(objnum, o.Signature)
		}
	}
	killed := 0
	for i := range s.objs {
		so := &s.objs[i]
		if !so.used() {
			continue
		}
		l, ok := so.link.(objectLink)
		if !ok || l.num != objnum {
			continue
		}
		s.kill(so)
		killed++
	}
	return killed
}

// KillSound kills a single sound object.
func (s *Scene) KillSound(h Handle) bool {
	so := s.lookup(h)
	if so == nil {
		return false
	}
	s.kill(so)
	return true
}

// InitSounds forgets every sound, used when a level starts.
func (s *Scene) InitSounds() {
	s.queue.init()
	s.channels.StopAll()
	s.StopLoopingSound()
	for i := range s.objs {
		s.objs[i].reset()
	}
	clear(s.onceChan)
}

// PauseDigiSounds silences everything. Looping objects come back with
// ResumeDigiSounds, one shots are dropped.
func (s *Scene) PauseDigiSounds() {
	s.PauseLoopingSound()
	for i := range s.objs {
		so := &s.objs[i]
		if !so.used() || !so.playing() {
			continue
		}
		s.channels.Stop(so.channel)
		if !so.forever() {
			so.reset()
			continue
		}
		so.channel = -1
	}
	s.channels.StopAll()
	s.queue.pause()
}

func (s *Scene) ResumeDigiSounds() {
	s.Sync()
	s.ResumeLoopingSound()
}

// StopDigiSounds stops and forgets every sound.
func (s *Scene) StopDigiSounds() {
	s.StopLoopingSound()
	for i := range s.objs {
		s.kill(&s.objs[i])
	}
	s.channels.StopAll()
	s.queue.init()
	clear(s.onceChan)
}

// VerifyChannelFree reports an error if a sound object still claims ch.
func (s *Scene) VerifyChannelFree(ch int) error {
	for i := range s.objs {
		so := &s.objs[i]
		if so.used() && so.channel == ch {
			return errors.Errorf("channel %d still in use by sound object %d", ch, i)
		}
	}
	return nil
}

func (s *Scene) assertChannelFree(ch int) {
	if !debugChecks {
		return
	}
	if err := s.VerifyChannelFree(ch); err != nil {
		panic(err)
	}
}
