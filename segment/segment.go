// SPDX-License-Identifier: GPL-2.0-or-later

// Package segment models the cube-shaped rooms (segments) of a level and how
// they are connected through their sides.
package segment

import (
	"godescent/math/vec"
)

const (
	SidesPerSegment = 6
	None            = -1
)

// WallFlags describe what may pass through a side.
type WallFlags uint8

const (
	FlyFlag      WallFlags = 1 // objects can fly through
	RenderFlag   WallFlags = 2 // a wall is drawn
	RendPastFlag WallFlags = 4 // things behind it are visible
	ExternalFlag WallFlags = 8 // side faces the outside world

	NoWall            = FlyFlag | RendPastFlag
	Wall              = RenderFlag
	TransparentWall   = RenderFlag | RendPastFlag
	IllusoryWall      = FlyFlag | RenderFlag
	TransillusoryWall = FlyFlag | RenderFlag | RendPastFlag
)

type Side struct {
	// Child is the neighbouring segment or None for a solid side.
	Child int
	// Doorway is what the side lets through. Only meaningful with a Child.
	Doorway WallFlags
}

type Segment struct {
	Center vec.Vec3
	Sides  [SidesPerSegment]Side
}

type Level struct {
	Segments []Segment
}

// AddSegment appends a segment with only solid sides and returns its number.
func (l *Level) AddSegment(center vec.Vec3) int {
	s := Segment{Center: center}
	for i := range s.Sides {
		s.Sides[i].Child = None
	}
	l.Segments = append(l.Segments, s)
	return len(l.Segments) - 1
}

// Connect joins side sa of a with side sb of b using the given doorway
// flags in both directions.
func (l *Level) Connect(a, sa, b, sb int, doorway WallFlags) {
	l.Segments[a].Sides[sa] = Side{Child: b, Doorway: doorway}
	l.Segments[b].Sides[sb] = Side{Child: a, Doorway: doorway}
}

// SetDoorway changes what side sa of a and its counterpart let through, as
// happens when a door opens or a wall gets blown away.
func (l *Level) SetDoorway(a, sa int, doorway WallFlags) {
	s := &l.Segments[a].Sides[sa]
	if s.Child == None {
		return
	}
	s.Doorway = doorway
	for i := range l.Segments[s.Child].Sides {
		o := &l.Segments[s.Child].Sides[i]
		if o.Child == a {
			o.Doorway = doorway
		}
	}
}

func (l *Level) HighestSegment() int {
	return len(l.Segments) - 1
}

func (l *Level) valid(s int) bool {
	return s >= 0 && s < len(l.Segments)
}
