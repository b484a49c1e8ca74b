// SPDX-License-Identifier: GPL-2.0-or-later

// Package snd decides which sounds play, where they are heard from and on
// which mixer channel. A Scene tracks looping and positional sounds attached
// to objects or level positions and updates their volume and panning once
// per game tick.
//
// A Scene is owned by the game tick goroutine and is not safe for
// concurrent use.
package snd

import (
	"godescent/math/vec"
	"godescent/object"
	"godescent/segment"
)

const (
	MaxSoundObjects = 150

	// FullVolume is the nominal loudest volume, volumes above it are allowed.
	FullVolume = 1.0
	FullPan    = 1.0
	CenterPan  = FullPan / 2

	// QueuedVolume keeps queued sounds above any volume based cut off.
	QueuedVolume = FullVolume + 1.0/65536

	// DefaultMaxDistance is the hearing range used by the short link calls.
	DefaultMaxDistance = 256

	// sounds quieter than this are not worth a channel
	minAudibleVolume = 10.0 / 65536

	searchSegmentLength = 20
	traversal           = segment.RendPastFlag | segment.FlyFlag
)

// Handle identifies a linked sound object. It is the signature of the
// object and stays valid until the object is killed.
type Handle int32

// NoHandle is returned whenever a sound did not get a sound object.
const NoHandle Handle = -1

// Channels is the mixer. All methods are called from the game tick.
type Channels interface {
	// Start plays sample and returns its channel or -1 if it could not be
	// started. end gets called if the channel is later taken away from the
	// sound for another one.
	Start(sample int, volume, pan float32, loop bool, loopStart, loopEnd int, end func()) int
	Stop(ch int)
	SetVolume(ch int, volume float32)
	SetPan(ch int, pan float32)
	IsPlaying(ch int) bool
	// End releases a channel whose sound finished on its own.
	End(ch int)
	StopAll()
	MaxChannels() int
}

// PathFinder measures distances through the level instead of through walls.
type PathFinder interface {
	ConnectedDistance(p0 vec.Vec3, s0 int, p1 vec.Vec3, s1 int, maxDepth int, flags segment.WallFlags) (float32, bool)
	HighestSegment() int
}

// Sounds translates game sound numbers into loaded samples.
type Sounds interface {
	Xlat(sound int) int
	Unxlat(sample int) (int, error)
	HasData(sample int) bool
}

// Resolver looks up the object a sound is linked to. The result may be nil
// or an object that is dead or has a different signature.
type Resolver interface {
	Resolve(num int, sig object.Signature) *object.Object
}

// Recorder receives the sound events a demo needs to replay the sounds.
type Recorder interface {
	RecordSound(sound int)
	RecordSound3D(sound int, pan, volume float32)
	RecordLinkSoundToObject(sound int, obj int, sig object.Signature, maxVolume, maxDistance float32, loopStart, loopEnd int)
	RecordKillSoundLinkedToObject(obj int, sig object.Signature)
}

// Clock returns the simulated time in seconds.
type Clock interface {
	Time() float64
}

// LiveResolver resolves links against the running game.
type LiveResolver struct {
	Objects *object.Table
}

func (r LiveResolver) Resolve(num int, _ object.Signature) *object.Object {
	return r.Objects.Get(num)
}

type Config struct {
	Channels Channels
	Level    PathFinder
	Sounds   Sounds
	Objects  *object.Table
	Clock    Clock
	// Resolver defaults to a LiveResolver on Objects.
	Resolver Resolver
}

// Scene is the sound state of one level.
type Scene struct {
	channels Channels
	level    PathFinder
	sounds   Sounds
	objects  *object.Table
	clock    Clock
	resolver Resolver
	recorder Recorder

	viewer int

	objs          [MaxSoundObjects]soundObject
	nextSignature uint16
	// set while a level loads, linked sounds become permanent and wait
	// for the first Sync to start
	dontStartObjects bool

	looping  loopingSound
	queue    soundQueue
	onceChan map[int]int
}

func New(c Config) *Scene {
	s := &Scene{
		channels: c.Channels,
		level:    c.Level,
		sounds:   c.Sounds,
		objects:  c.Objects,
		clock:    c.Clock,
		resolver: c.Resolver,
		viewer:   object.None,
		onceChan: make(map[int]int),
	}
	if s.resolver == nil {
		s.resolver = LiveResolver{Objects: c.Objects}
	}
	for i := range s.objs {
		s.objs[i].reset()
	}
	s.looping.reset()
	s.queue.init()
	return s
}

// SetViewer sets the object the player hears through.
func (s *Scene) SetViewer(num int) {
	s.viewer = num
}

func (s *Scene) viewerObject() *object.Object {
	o := s.objects.Get(s.viewer)
	if !o.Alive() {
		return nil
	}
	return o
}

// SetResolver switches how linked objects are found, e.g. for demo
// playback. nil restores the live lookup.
func (s *Scene) SetResolver(r Resolver) {
	if r == nil {
		r = LiveResolver{Objects: s.objects}
	}
	s.resolver = r
}

// SetRecorder attaches a demo recorder. When recording starts all running
// looping object sounds are recorded first so playback starts complete.
func (s *Scene) SetRecorder(r Recorder) {
	if r != nil && s.recorder == nil {
		s.recordSoundObjects(r)
	}
	s.recorder = r
}

// BeginLevelLoad makes all following links permanent level sounds that do
// not start until EndLevelLoad and the next Sync.
func (s *Scene) BeginLevelLoad() {
	s.dontStartObjects = true
}

func (s *Scene) EndLevelLoad() {
	s.dontStartObjects = false
}
