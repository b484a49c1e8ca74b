// SPDX-License-Identifier: GPL-2.0-or-later

package demo

import (
	"io"
	"log"

	"godescent/cvars"
	"godescent/object"
	"godescent/snd"
)

var _ snd.Resolver = (*Player)(nil)

// Player feeds recorded events back into a scene. Objects are found by
// signature since playback may place them into other slots.
type Player struct {
	scene   *snd.Scene
	objects *object.Table
	events  []Event
	pos     int
}

// NewPlayer reads the whole recording.
func NewPlayer(d *Reader, scene *snd.Scene, objects *object.Table) (*Player, error) {
	p := &Player{
		scene:   scene,
		objects: objects,
	}
	for {
		e, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		p.events = append(p.events, e)
	}
	return p, nil
}

func (p *Player) Resolve(_ int, sig object.Signature) *object.Object {
	return p.objects.Get(p.objects.FindBySignature(sig))
}

// Attach makes the scene follow objects through the player.
func (p *Player) Attach() {
	p.scene.SetResolver(p)
}

func (p *Player) Detach() {
	p.scene.SetResolver(nil)
}

// Done reports whether all events were played.
func (p *Player) Done() bool {
	return p.pos >= len(p.events)
}

// Play replays all events recorded up to and including frame.
func (p *Player) Play(frame int) {
	for ; p.pos < len(p.events) && p.events[p.pos].Frame <= frame; p.pos++ {
		p.play(&p.events[p.pos])
	}
}

func (p *Player) play(e *Event) {
	switch e.Kind {
	case KindSound:
		p.scene.PlaySample(e.Sound, snd.FullVolume)
	case KindSound3D:
		p.scene.PlaySample3D(e.Sound, e.Pan, e.Volume)
	case KindLink:
		num := p.objects.FindBySignature(e.Signature)
		if num == object.None {
			if cvars.SoundDebug.Bool() {
				log.Printf("demo: no object with signature %d for sound %d", e.Signature, e.Sound)
			}
			return
		}
		p.scene.LinkSoundToObject3(e.Sound, num, true, e.MaxVolume, e.MaxDistance, e.LoopStart, e.LoopEnd)
	case KindKill:
		num := p.objects.FindBySignature(e.Signature)
		if num == object.None {
			return
		}
		p.scene.KillSoundLinkedToObject(num)
	}
}
