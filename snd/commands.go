// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"fmt"

	"godescent/cmd"
	"godescent/conlog"
)

// AddCommands registers the sound console commands of s on c.
func (s *Scene) AddCommands(c *cmd.Commands) error {
	for _, e := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"play", s.playCmd},
		{"playvol", s.playVolCmd},
		{"stopsound", s.stopSoundCmd},
		{"soundlist", s.soundListCmd},
		{"soundinfo", s.soundInfoCmd},
	} {
		if err := c.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) playCmd(a cmd.Arguments) error {
	for _, arg := range a.Args()[1:] {
		s.PlaySample(arg.Int(), FullVolume)
	}
	return nil
}

func (s *Scene) playVolCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args)%2 != 0 {
		return fmt.Errorf("usage: playvol <sound> <volume> ...")
	}
	for i := 0; i < len(args); i += 2 {
		s.PlaySample(args[i].Int(), args[i+1].Float32())
	}
	return nil
}

func (s *Scene) stopSoundCmd(_ cmd.Arguments) error {
	s.StopDigiSounds()
	return nil
}

func (s *Scene) soundListCmd(_ cmd.Arguments) error {
	for i := range s.objs {
		so := &s.objs[i]
		if !so.used() {
			continue
		}
		var at string
		switch l := so.link.(type) {
		case objectLink:
			at = fmt.Sprintf("object %d", l.num)
		case posLink:
			at = fmt.Sprintf("segment %d side %d", l.segment, l.side)
		}
		conlog.SafePrintf("%3d: sample %3d %-22s ch %2d vol %.3f pan %.3f forever %v\n",
			i, so.sample, at, so.channel, so.volume, so.pan, so.forever())
	}
	return nil
}

func (s *Scene) soundInfoCmd(_ cmd.Arguments) error {
	conlog.Printf("%d sound objects, %d playing, %d queued, %d channels\n",
		s.UsedObjects(), s.ActiveObjects(), s.QueuedSounds(), s.channels.MaxChannels())
	return nil
}
