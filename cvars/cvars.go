// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"godescent/cvar"
)

var (
	HostFrameRate      *cvar.Cvar
	HostMaxFps         *cvar.Cvar
	HostTimeScale      *cvar.Cvar
	SoundChannels      *cvar.Cvar
	SoundDebug         *cvar.Cvar
	SoundLowMem        *cvar.Cvar
	SoundReverseStereo *cvar.Cvar
	SoundSampleRate    *cvar.Cvar
	Volume             *cvar.Cvar
)

func init() {
	HostFrameRate = cvar.MustRegister("host_framerate", "0", cvar.NONE)
	HostMaxFps = cvar.MustRegister("host_maxfps", "30", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "0", cvar.NONE)
	SoundChannels = cvar.MustRegister("snd_channels", "16", cvar.ARCHIVE)
	SoundDebug = cvar.MustRegister("snd_debug", "0", cvar.NONE)
	SoundLowMem = cvar.MustRegister("snd_lowmem", "0", cvar.NONE)
	SoundReverseStereo = cvar.MustRegister("snd_reversestereo", "0", cvar.ARCHIVE)
	SoundSampleRate = cvar.MustRegister("snd_samplerate", "22050", cvar.ARCHIVE)
	Volume = cvar.MustRegister("volume", "0.7", cvar.ARCHIVE)
}
