// SPDX-License-Identifier: GPL-2.0-or-later

// Package host runs the frame loop: console scripts, the object table, the
// sound scene and demo recording or playback.
package host

import (
	"log"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"

	"godescent/alias"
	"godescent/cbuf"
	"godescent/cmd"
	cmdl "godescent/commandline"
	"godescent/conlog"
	"godescent/cvar"
	"godescent/cvars"
	"godescent/demo"
	"godescent/filesystem"
	"godescent/gametime"
	"godescent/object"
	"godescent/segment"
	"godescent/sfx"
	"godescent/snd"
	"godescent/snd/mixer"
)

type Host struct {
	time     *gametime.GameTime
	objects  *object.Table
	level    *segment.Level
	sounds   *sfx.Table
	mixer    *mixer.Mixer
	output   *mixer.Output
	scene    *snd.Scene
	commands *cmd.Commands
	aliases  *alias.Aliases
	buf      cbuf.CommandBuffer

	recorder   *demo.Recorder
	recordFile *os.File
	player     *demo.Player

	quit bool
}

// New sets up a host without audio output.
func New() (*Host, error) {
	applyCommandLine()
	format := beep.Format{
		SampleRate:  beep.SampleRate(cvars.SoundSampleRate.Value()),
		NumChannels: 2,
		Precision:   2,
	}
	h := &Host{
		time:     gametime.New(),
		objects:  object.NewTable(),
		level:    &segment.Level{},
		sounds:   sfx.NewTable(format),
		commands: cmd.New(),
		aliases:  alias.New(),
	}
	h.sounds.LowMem = cvars.SoundLowMem.Bool()
	h.mixer = mixer.New(h.sounds, int(cvars.SoundChannels.Value()))
	h.scene = snd.New(snd.Config{
		Channels: h.mixer,
		Level:    h.level,
		Sounds:   h.sounds,
		Objects:  h.objects,
		Clock:    h.time,
	})

	if err := h.scene.AddCommands(h.commands); err != nil {
		return nil, err
	}
	if err := h.aliases.Register(h.commands); err != nil {
		return nil, err
	}
	if err := h.addWorldCommands(); err != nil {
		return nil, err
	}
	h.buf.SetCommandExecutors([]cbuf.Efunc{
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return h.commands.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cmd.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cvar.Execute(a)
		},
		h.aliases.Execute(),
	})

	cvars.Volume.SetCallback(h.onVolumeChange)
	h.onVolumeChange(cvars.Volume)
	cvars.SoundLowMem.SetCallback(func(cv *cvar.Cvar) {
		h.sounds.LowMem = cv.Bool()
	})
	return h, nil
}

func applyCommandLine() {
	if n := cmdl.Channels(); n > 0 {
		cvars.SoundChannels.SetValue(float32(n))
	}
	if n := cmdl.SampleRate(); n > 0 {
		cvars.SoundSampleRate.SetValue(float32(n))
	}
	if cmdl.LowMem() {
		cvars.SoundLowMem.SetByString("1")
	}
}

func (h *Host) onVolumeChange(cv *cvar.Cvar) {
	v := cv.Value()
	if v > 1 {
		cv.SetByString("1")
		// recursion so exit early
		return
	}
	if v < 0 {
		cv.SetByString("0")
		// recursion so exit early
		return
	}
	h.mixer.SetMasterVolume(v)
}

// Scene returns the sound scene driven by the host.
func (h *Host) Scene() *snd.Scene {
	return h.scene
}

// Init opens the game data, the audio device and the recording or demo
// named on the command line and queues the script.
func (h *Host) Init() error {
	if dir := cmdl.BaseDirectory(); dir != "" {
		if err := filesystem.UseBaseDir(dir); err != nil {
			return errors.Wrapf(err, "could not use %v", dir)
		}
	}
	if !cmdl.NoSound() {
		o, err := mixer.NewOutput(h.sounds.Format().SampleRate, h.mixer)
		if err != nil {
			return err
		}
		h.output = o
	}
	if name := cmdl.Record(); name != "" {
		if err := h.startRecording(name); err != nil {
			return err
		}
	}
	if name := cmdl.PlayDemo(); name != "" {
		if err := h.startPlayback(name); err != nil {
			return err
		}
	}
	if name := cmdl.Script(); name != "" {
		if err := h.exec(name); err != nil {
			return err
		}
	}
	conlog.Printf("\n========= Sound Initialized =========\n\n")
	return nil
}

func (h *Host) startRecording(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "could not create recording")
	}
	r, err := demo.NewRecorder(f, cmdl.Level())
	if err != nil {
		f.Close()
		return err
	}
	h.recordFile = f
	h.recorder = r
	h.scene.SetRecorder(r)
	log.Printf("recording %v into %v", r.ID(), name)
	return nil
}

func (h *Host) stopRecording() error {
	if h.recorder == nil {
		return nil
	}
	h.scene.SetRecorder(nil)
	err := h.recorder.Flush()
	if cerr := h.recordFile.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "could not close recording")
	}
	h.recorder = nil
	h.recordFile = nil
	return err
}

func (h *Host) startPlayback(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "could not open demo")
	}
	defer f.Close()
	d, err := demo.NewReader(f)
	if err != nil {
		return err
	}
	p, err := demo.NewPlayer(d, h.scene, h.objects)
	if err != nil {
		return err
	}
	hd := d.Header()
	log.Printf("playing demo %v of %q", hd.ID, hd.Level)
	h.player = p
	p.Attach()
	return nil
}

// exec queues a script from the game data or the os filesystem.
func (h *Host) exec(name string) error {
	b, err := filesystem.ReadFile(name)
	if err != nil {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return errors.Wrapf(err, "could not exec %v", name)
	}
	h.buf.AddText(string(b))
	h.buf.AddText("\n")
	return nil
}

// AddText queues console text.
func (h *Host) AddText(text string) {
	h.buf.AddText(text)
}

// Tick runs a frame if enough wall clock time passed for host_maxfps.
func (h *Host) Tick() bool {
	if !h.time.UpdateTime() {
		return false
	}
	h.frame()
	return true
}

// Frame runs one game tick of dt seconds.
func (h *Host) Frame(dt float64) {
	h.time.Advance(dt)
	h.frame()
}

func (h *Host) frame() {
	frame := h.time.FrameCount()
	if h.recorder != nil {
		h.recorder.SetFrame(frame)
	}
	h.buf.Execute()
	if h.player != nil {
		h.player.Play(frame)
	}
	h.scene.Sync()
}

// Done reports whether the script asked to quit or ran out with nothing
// else left to do.
func (h *Host) Done() bool {
	if h.quit {
		return true
	}
	return h.buf.Empty() && (h.player == nil || h.player.Done())
}

func (h *Host) Shutdown() error {
	h.scene.StopDigiSounds()
	err := h.stopRecording()
	if h.player != nil {
		h.player.Detach()
	}
	if h.output != nil {
		if cerr := h.output.Close(); err == nil {
			err = cerr
		}
	}
	filesystem.Close()
	return err
}
