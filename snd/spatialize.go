// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/chewxy/math32"

	"godescent/cvars"
	"godescent/math/vec"
)

// SoundLoc computes how loud and from which side a sound at soundPos is
// heard by a listener with the given orientation. Distance is measured
// along the level, a sound behind a wall is silent. Volume may be 0, a pan
// of 0 is fully left, FullPan fully right.
func (s *Scene) SoundLoc(listener vec.Matrix, listenerPos vec.Vec3, listenerSeg int,
	soundPos vec.Vec3, soundSeg int, maxVolume, maxDistance float32) (volume, pan float32) {
	// sounds reach a bit farther than asked for
	maxDistance = maxDistance * 5 / 4

	toSound, distance := vec.NormalizedDirQuick(soundPos, listenerPos)
	if distance >= maxDistance {
		return 0, 0
	}

	searchSegs := max(1, int(maxDistance/searchSegmentLength))
	pathDistance, ok := s.level.ConnectedDistance(listenerPos, listenerSeg, soundPos, soundSeg, searchSegs, traversal)
	if !ok {
		return 0, 0
	}

	volume = maxVolume - pathDistance/maxDistance
	if volume <= 0 {
		return 0, 0
	}
	if distance == 0 {
		return volume, CenterPan
	}

	angle := vec.DeltaAngleNorm(listener.Right, toSound, listener.Up)
	cosang := math32.Cos(angle)
	if cvars.SoundReverseStereo.Bool() {
		cosang = -cosang
	}
	pan = (cosang + FullPan) / 2
	return volume, pan
}

// listenerLoc spatializes from the current viewer, silent without one.
func (s *Scene) listenerLoc(pos vec.Vec3, seg int, maxVolume, maxDistance float32) (float32, float32) {
	v := s.viewerObject()
	if v == nil {
		return 0, 0
	}
	return s.SoundLoc(v.Orient, v.Pos, v.Segment, pos, seg, maxVolume, maxDistance)
}
