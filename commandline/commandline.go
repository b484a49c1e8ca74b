// SPDX-License-Identifier: GPL-2.0-or-later

// Package commandline holds the program flags.
package commandline

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	lowMem  bool
	noSound bool

	frames = boolInt{false, 0}

	channels   int
	sampleRate int

	basedir  string
	level    string
	playDemo string
	record   string
	script   string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.BoolVar(&lowMem, "lowmem", false, "Use the alternate low memory sounds")
	flag.BoolVar(&noSound, "nosound", false, "Disable sound output")

	flag.Var(&frames, "frames", "Stop after the script, optional number of frames")

	flag.IntVar(&channels, "channels", -1, "number of mixer channels, negative is unset")
	flag.IntVar(&sampleRate, "sndspeed", -1, "output sample rate, negative is unset")

	flag.StringVar(&basedir, "basedir", "", "directory with the hog files")
	flag.StringVar(&level, "level", "", "name of the level written into recordings")
	flag.StringVar(&playDemo, "playdemo", "", "replay the sounds of a recording")
	flag.StringVar(&record, "record", "", "record the sounds into a file")
	flag.StringVar(&script, "script", "", "console script to run")
}

func BaseDirectory() string {
	return basedir
}

func Level() string {
	return level
}

func PlayDemo() string {
	return playDemo
}

func Record() string {
	return record
}

func Script() string {
	return script
}

func Channels() int {
	return channels
}

func SampleRate() int {
	return sampleRate
}

func LowMem() bool {
	return lowMem
}

func NoSound() bool {
	return noSound
}

// Frames reports whether the run is limited and to how many frames. 0
// means until the script is done.
func Frames() (bool, int) {
	return frames.set, frames.num
}
