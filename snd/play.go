// SPDX-License-Identifier: GPL-2.0-or-later

package snd

// PlaySample plays a centered one shot, e.g. a cockpit sound.
func (s *Scene) PlaySample(sound int, volume float32) int {
	if s.recorder != nil {
		s.recorder.RecordSound(sound)
	}
	sample := s.sounds.Xlat(sound)
	if sample < 0 {
		return -1
	}
	return s.channels.Start(sample, volume, CenterPan, false, -1, -1, nil)
}

// PlaySampleOnce is PlaySample but cuts the previous PlaySampleOnce of the
// same sound if it is still running.
func (s *Scene) PlaySampleOnce(sound int, volume float32) int {
	if s.recorder != nil {
		s.recorder.RecordSound(sound)
	}
	sample := s.sounds.Xlat(sound)
	if sample < 0 {
		return -1
	}
	if ch, ok := s.onceChan[sample]; ok {
		if s.channels.IsPlaying(ch) {
			s.channels.Stop(ch)
		}
		delete(s.onceChan, sample)
	}
	var ch int
	ch = s.channels.Start(sample, volume, CenterPan, false, -1, -1, func() {
		// the channel went to another sound, do not cut that one later
		if c, ok := s.onceChan[sample]; ok && c == ch {
			delete(s.onceChan, sample)
		}
	})
	if ch > -1 {
		s.onceChan[sample] = ch
	}
	return ch
}

// PlaySample3D plays an untracked one shot with a precomputed pan and
// volume.
func (s *Scene) PlaySample3D(sound int, pan, volume float32) int {
	if s.recorder != nil {
		s.recorder.RecordSound3D(sound, pan, volume)
	}
	if volume < minAudibleVolume {
		return -1
	}
	sample := s.sounds.Xlat(sound)
	if sample < 0 {
		return -1
	}
	return s.channels.Start(sample, volume, pan, false, -1, -1, nil)
}
