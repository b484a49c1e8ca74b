// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"fmt"
	"strings"

	"godescent/cmd"
	"godescent/conlog"
	"godescent/math/vec"
	"godescent/object"
	"godescent/segment"
	"godescent/snd"
)

var objectTypes = map[string]object.Type{
	"wall":     object.TypeWall,
	"fireball": object.TypeFireball,
	"robot":    object.TypeRobot,
	"hostage":  object.TypeHostage,
	"player":   object.TypePlayer,
	"weapon":   object.TypeWeapon,
	"camera":   object.TypeCamera,
	"powerup":  object.TypePowerup,
	"debris":   object.TypeDebris,
	"reactor":  object.TypeControlCenter,
	"flare":    object.TypeFlare,
	"clutter":  object.TypeClutter,
	"ghost":    object.TypeGhost,
	"light":    object.TypeLight,
	"coop":     object.TypeCoop,
	"marker":   object.TypeMarker,
}

var wallTypes = map[string]segment.WallFlags{
	"open":          segment.NoWall,
	"wall":          segment.Wall,
	"transparent":   segment.TransparentWall,
	"illusory":      segment.IllusoryWall,
	"transillusory": segment.TransillusoryWall,
}

type usageError string

func (u usageError) Error() string {
	return "usage: " + string(u)
}

// args returns the arguments behind the command name or a usage error if
// there are fewer than n.
func args(a cmd.Arguments, n int, usage string) ([]cmd.QArg, error) {
	r := a.Args()[1:]
	if len(r) < n {
		return nil, usageError(usage)
	}
	return r, nil
}

func vec3(a []cmd.QArg) vec.Vec3 {
	return vec.Vec3{X: a[0].Float32(), Y: a[1].Float32(), Z: a[2].Float32()}
}

// optional returns a[i] as float or def if it is missing.
func optional(a []cmd.QArg, i int, def float32) float32 {
	if i >= len(a) {
		return def
	}
	return a[i].Float32()
}

func (h *Host) addWorldCommands() error {
	for _, e := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"echo", h.echoCmd},
		{"exec", h.execCmd},
		{"quit", h.quitCmd},
		{"segment", h.segmentCmd},
		{"connect", h.connectCmd},
		{"door", h.doorCmd},
		{"spawn", h.spawnCmd},
		{"move", h.moveCmd},
		{"turn", h.turnCmd},
		{"remove", h.removeCmd},
		{"viewer", h.viewerCmd},
		{"loadsound", h.loadSoundCmd},
		{"link", h.linkCmd},
		{"linkpos", h.linkPosCmd},
		{"unlink", h.unlinkCmd},
		{"unlinkseg", h.unlinkSegCmd},
		{"queue", h.queueCmd},
		{"loop", h.loopCmd},
		{"loopvol", h.loopVolCmd},
		{"stoploop", h.stopLoopCmd},
		{"pausesound", h.pauseSoundCmd},
		{"resumesound", h.resumeSoundCmd},
		{"levelload", h.levelLoadCmd},
		{"levelstart", h.levelStartCmd},
	} {
		if err := h.commands.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) echoCmd(a cmd.Arguments) error {
	conlog.Printf("%s\n", a.ArgumentString())
	return nil
}

func (h *Host) execCmd(a cmd.Arguments) error {
	r, err := args(a, 1, "exec <file>")
	if err != nil {
		return err
	}
	return h.exec(r[0].String())
}

func (h *Host) quitCmd(_ cmd.Arguments) error {
	h.quit = true
	return nil
}

func (h *Host) segmentCmd(a cmd.Arguments) error {
	r, err := args(a, 3, "segment <x> <y> <z>")
	if err != nil {
		return err
	}
	n := h.level.AddSegment(vec3(r))
	conlog.Printf("segment %d\n", n)
	return nil
}

func (h *Host) wallArg(r []cmd.QArg, i int) (segment.WallFlags, error) {
	if i >= len(r) {
		return segment.NoWall, nil
	}
	w, ok := wallTypes[strings.ToLower(r[i].String())]
	if !ok {
		return 0, fmt.Errorf("unknown wall type %q", r[i].String())
	}
	return w, nil
}

func (h *Host) validSide(seg, side int) error {
	if seg < 0 || seg > h.level.HighestSegment() {
		return fmt.Errorf("no segment %d", seg)
	}
	if side < 0 || side >= segment.SidesPerSegment {
		return fmt.Errorf("no side %d", side)
	}
	return nil
}

func (h *Host) connectCmd(a cmd.Arguments) error {
	r, err := args(a, 4, "connect <seg> <side> <seg> <side> [open|wall|transparent|illusory]")
	if err != nil {
		return err
	}
	sa, ssa, sb, ssb := r[0].Int(), r[1].Int(), r[2].Int(), r[3].Int()
	if err := h.validSide(sa, ssa); err != nil {
		return err
	}
	if err := h.validSide(sb, ssb); err != nil {
		return err
	}
	w, err := h.wallArg(r, 4)
	if err != nil {
		return err
	}
	h.level.Connect(sa, ssa, sb, ssb, w)
	return nil
}

func (h *Host) doorCmd(a cmd.Arguments) error {
	r, err := args(a, 3, "door <seg> <side> <open|wall|transparent|illusory>")
	if err != nil {
		return err
	}
	if err := h.validSide(r[0].Int(), r[1].Int()); err != nil {
		return err
	}
	w, err := h.wallArg(r, 2)
	if err != nil {
		return err
	}
	h.level.SetDoorway(r[0].Int(), r[1].Int(), w)
	return nil
}

func (h *Host) object(arg cmd.QArg) (int, error) {
	n := arg.Int()
	if !h.objects.Get(n).Alive() {
		return object.None, fmt.Errorf("no object %d", n)
	}
	return n, nil
}

func (h *Host) spawnCmd(a cmd.Arguments) error {
	r, err := args(a, 5, "spawn <type> <seg> <x> <y> <z>")
	if err != nil {
		return err
	}
	t, ok := objectTypes[strings.ToLower(r[0].String())]
	if !ok {
		return fmt.Errorf("unknown object type %q", r[0].String())
	}
	n := h.objects.Create(t, r[1].Int(), vec3(r[2:]), vec.Identity)
	if n == object.None {
		return fmt.Errorf("no free object")
	}
	conlog.Printf("object %d\n", n)
	return nil
}

func (h *Host) moveCmd(a cmd.Arguments) error {
	r, err := args(a, 5, "move <obj> <seg> <x> <y> <z>")
	if err != nil {
		return err
	}
	n, err := h.object(r[0])
	if err != nil {
		return err
	}
	h.objects.Move(n, r[1].Int(), vec3(r[2:]))
	return nil
}

func (h *Host) turnCmd(a cmd.Arguments) error {
	r, err := args(a, 4, "turn <obj> <pitch> <heading> <bank>")
	if err != nil {
		return err
	}
	n, err := h.object(r[0])
	if err != nil {
		return err
	}
	h.objects.Get(n).Orient = vec.AngleMatrix(r[1].Float32(), r[2].Float32(), r[3].Float32())
	return nil
}

// removeCmd deletes an object together with its sounds.
func (h *Host) removeCmd(a cmd.Arguments) error {
	r, err := args(a, 1, "remove <obj>")
	if err != nil {
		return err
	}
	n, err := h.object(r[0])
	if err != nil {
		return err
	}
	h.scene.KillSoundLinkedToObject(n)
	h.objects.Delete(n)
	return nil
}

func (h *Host) viewerCmd(a cmd.Arguments) error {
	r, err := args(a, 1, "viewer <obj>")
	if err != nil {
		return err
	}
	n, err := h.object(r[0])
	if err != nil {
		return err
	}
	h.scene.SetViewer(n)
	return nil
}

func (h *Host) loadSoundCmd(a cmd.Arguments) error {
	r, err := args(a, 2, "loadsound <sound> <file>")
	if err != nil {
		return err
	}
	_, err = h.sounds.Load(r[0].Int(), r[1].String())
	return err
}

func (h *Host) linkCmd(a cmd.Arguments) error {
	r, err := args(a, 2, "link <sound> <obj> [forever] [volume] [distance] [loopstart loopend]")
	if err != nil {
		return err
	}
	n, err := h.object(r[1])
	if err != nil {
		return err
	}
	forever := len(r) > 2 && r[2].Bool()
	loopStart, loopEnd := -1, -1
	if len(r) > 6 {
		loopStart, loopEnd = r[5].Int(), r[6].Int()
	}
	hd := h.scene.LinkSoundToObject3(r[0].Int(), n, forever,
		optional(r, 3, snd.FullVolume), optional(r, 4, snd.DefaultMaxDistance), loopStart, loopEnd)
	if hd != snd.NoHandle {
		conlog.Printf("sound object %d\n", hd)
	}
	return nil
}

func (h *Host) linkPosCmd(a cmd.Arguments) error {
	r, err := args(a, 6, "linkpos <sound> <seg> <side> <x> <y> <z> [forever] [volume] [distance]")
	if err != nil {
		return err
	}
	forever := len(r) > 6 && r[6].Bool()
	hd := h.scene.LinkSoundToPos2(r[0].Int(), r[1].Int(), r[2].Int(), vec3(r[3:]), forever,
		optional(r, 7, snd.FullVolume), optional(r, 8, snd.DefaultMaxDistance))
	if hd != snd.NoHandle {
		conlog.Printf("sound object %d\n", hd)
	}
	return nil
}

func (h *Host) unlinkCmd(a cmd.Arguments) error {
	r, err := args(a, 1, "unlink <obj>")
	if err != nil {
		return err
	}
	h.scene.KillSoundLinkedToObject(r[0].Int())
	return nil
}

func (h *Host) unlinkSegCmd(a cmd.Arguments) error {
	r, err := args(a, 2, "unlinkseg <seg> <side> [sound]")
	if err != nil {
		return err
	}
	sound := -1
	if len(r) > 2 {
		sound = r[2].Int()
	}
	h.scene.KillSoundLinkedToSegment(r[0].Int(), r[1].Int(), sound)
	return nil
}

func (h *Host) queueCmd(a cmd.Arguments) error {
	r, err := args(a, 1, "queue <sound> [volume]")
	if err != nil {
		return err
	}
	h.scene.StartSoundQueued(r[0].Int(), optional(r, 1, snd.QueuedVolume))
	return nil
}

func (h *Host) loopCmd(a cmd.Arguments) error {
	r, err := args(a, 2, "loop <sound> <volume> [loopstart loopend]")
	if err != nil {
		return err
	}
	loopStart, loopEnd := -1, -1
	if len(r) > 3 {
		loopStart, loopEnd = r[2].Int(), r[3].Int()
	}
	h.scene.PlaySampleLooping(r[0].Int(), r[1].Float32(), loopStart, loopEnd)
	return nil
}

func (h *Host) loopVolCmd(a cmd.Arguments) error {
	r, err := args(a, 1, "loopvol <volume>")
	if err != nil {
		return err
	}
	h.scene.ChangeLoopingVolume(r[0].Float32())
	return nil
}

func (h *Host) stopLoopCmd(_ cmd.Arguments) error {
	h.scene.StopLoopingSound()
	return nil
}

func (h *Host) pauseSoundCmd(_ cmd.Arguments) error {
	h.scene.PauseDigiSounds()
	return nil
}

func (h *Host) resumeSoundCmd(_ cmd.Arguments) error {
	h.scene.ResumeDigiSounds()
	return nil
}

// levelLoadCmd forgets all sounds, following links become level sounds.
func (h *Host) levelLoadCmd(_ cmd.Arguments) error {
	h.scene.InitSounds()
	h.scene.BeginLevelLoad()
	return nil
}

func (h *Host) levelStartCmd(_ cmd.Arguments) error {
	h.scene.EndLevelLoad()
	return nil
}
