// SPDX-License-Identifier: GPL-2.0-or-later

package segment

import (
	"godescent/math/vec"
)

func dist(a, b vec.Vec3) float32 {
	d := vec.Sub(a, b)
	return d.QuickLength()
}

// ConnectedDistance returns the distance from p0 in segment s0 to p1 in
// segment s1 travelling through at most maxDepth segment sides that allow
// any of flags. The path runs through the centers of the segments in
// between. It reports false if no such path exists.
func (l *Level) ConnectedDistance(p0 vec.Vec3, s0 int, p1 vec.Vec3, s1 int, maxDepth int, flags WallFlags) (float32, bool) {
	if !l.valid(s0) || !l.valid(s1) {
		return 0, false
	}
	if s0 == s1 {
		return dist(p0, p1), true
	}

	type visit struct {
		parent int
		depth  int
	}
	seen := map[int]visit{s0: {parent: None, depth: 0}}
	queue := []int{s0}
	found := false
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		d := seen[cur].depth
		if d >= maxDepth {
			continue
		}
		for _, side := range l.Segments[cur].Sides {
			if side.Child == None || side.Doorway&flags == 0 {
				continue
			}
			if _, ok := seen[side.Child]; ok {
				continue
			}
			seen[side.Child] = visit{parent: cur, depth: d + 1}
			if side.Child == s1 {
				found = true
				break
			}
			queue = append(queue, side.Child)
		}
	}
	if !found {
		return 0, false
	}

	// walk back from the target, summing the legs between centers
	var total float32
	prev := p1
	for s := seen[s1].parent; s != s0; s = seen[s].parent {
		c := l.Segments[s].Center
		total += dist(prev, c)
		prev = c
	}
	total += dist(prev, p0)
	return total, true
}
