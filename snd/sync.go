// SPDX-License-Identifier: GPL-2.0-or-later

package snd

// Sync runs once per game tick. It advances the sound queue, drops
// finished and orphaned sounds and respatializes the rest for the viewer.
func (s *Scene) Sync() {
	s.processQueue()

	viewer := s.viewerObject()
	if viewer == nil {
		return
	}

	for i := range s.objs {
		so := &s.objs[i]
		if !so.used() {
			continue
		}
		oldVolume := so.volume
		oldPan := so.pan

		if so.playing() && !s.channels.IsPlaying(so.channel) {
			s.channels.End(so.channel)
			so.channel = -1
			if !so.forever() {
				so.reset()
				continue
			}
		}
		if !so.forever() && !so.playing() {
			so.reset()
			continue
		}

		switch l := so.link.(type) {
		case posLink:
			so.volume, so.pan = s.SoundLoc(viewer.Orient, viewer.Pos, viewer.Segment,
				l.pos, l.segment, so.maxVolume, so.maxDistance)
		case objectLink:
			o := s.resolver.Resolve(l.num, l.sig)
			if !o.Alive() || o.Signature != l.sig {
				// the object went away, so does its sound
				s.release(so)
				so.reset()
				continue
			}
			so.volume, so.pan = s.SoundLoc(viewer.Orient, viewer.Pos, viewer.Segment,
				o.Pos, o.Segment, so.maxVolume, so.maxDistance)
		}

		if so.volume <= 0 {
			s.release(so)
			if !so.forever() {
				so.reset()
			}
			continue
		}
		if !so.playing() {
			s.startSoundObject(i)
			continue
		}
		if so.volume != oldVolume {
			s.channels.SetVolume(so.channel, so.volume)
		}
		if so.pan != oldPan {
			s.channels.SetPan(so.channel, so.pan)
		}
	}
}
