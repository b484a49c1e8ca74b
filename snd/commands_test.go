// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"testing"

	"godescent/cmd"
	"godescent/math/vec"
)

func TestCommands(t *testing.T) {
	ts := newTestScene(8)
	c := cmd.New()
	if err := ts.AddCommands(c); err != nil {
		t.Fatalf("AddCommands: %v", err)
	}
	if err := ts.AddCommands(c); err == nil {
		t.Errorf("AddCommands twice = nil want error")
	}
	ts.LinkSoundToPos(1, 2, 0, vec.Vec3{X: 10}, true, 1)

	for _, line := range []string{"play 3 4", "playvol 5 0.5", "soundlist", "soundinfo"} {
		if ok, err := c.Execute(cmd.Parse(line)); !ok || err != nil {
			t.Errorf("Execute(%q) = %v, %v want true, nil", line, ok, err)
		}
	}
	if len(ts.ch.starts) != 4 {
		t.Errorf("play commands started %d sounds want 3", len(ts.ch.starts)-1)
	}
	if ok, err := c.Execute(cmd.Parse("playvol 5")); ok || err == nil {
		t.Errorf("Execute(playvol 5) = %v, %v want false, error", ok, err)
	}
	if ok, _ := c.Execute(cmd.Parse("stopsound")); !ok || ts.UsedObjects() != 0 {
		t.Errorf("stopsound left %d sound objects", ts.UsedObjects())
	}
}
