// SPDX-License-Identifier: GPL-2.0-or-later

// Package sfx holds the loaded sound samples and the tables translating game
// sound numbers into sample indices.
package sfx

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"

	"godescent/filesystem"
)

const (
	MaxSounds = 254
	// NoSound marks an unused entry of the translation tables.
	NoSound = 255
)

type Sample struct {
	Name string
	Data *beep.Buffer
}

type Table struct {
	// LowMem makes sound numbers go through AltSounds first, replacing
	// rarely heard sounds by common ones.
	LowMem    bool
	Sounds    [MaxSounds]uint8
	AltSounds [MaxSounds]uint8
	samples   []Sample
	format    beep.Format
}

// NewTable creates an empty table. Loaded samples are converted to format.
func NewTable(format beep.Format) *Table {
	t := &Table{format: format}
	for i := range t.Sounds {
		t.Sounds[i] = NoSound
		t.AltSounds[i] = uint8(i)
	}
	return t
}

func (t *Table) Format() beep.Format {
	return t.format
}

// Xlat translates a game sound number into a sample index or -1.
func (t *Table) Xlat(sound int) int {
	if sound < 0 || sound >= MaxSounds {
		return -1
	}
	if t.LowMem {
		alt := t.AltSounds[sound]
		if alt == NoSound || int(alt) >= MaxSounds {
			return -1
		}
		sound = int(alt)
	}
	if t.Sounds[sound] == NoSound {
		return -1
	}
	return int(t.Sounds[sound])
}

// Unxlat finds the game sound number playing sample idx.
func (t *Table) Unxlat(idx int) (int, error) {
	if idx < 0 {
		return -1, errors.Errorf("invalid sample %d", idx)
	}
	for i := 0; i < MaxSounds; i++ {
		if t.Xlat(i) == idx {
			return i, nil
		}
	}
	return -1, errors.Errorf("sample %d not loaded", idx)
}

// HasData reports whether sample idx has sample data.
func (t *Table) HasData(idx int) bool {
	b := t.Buffer(idx)
	return b != nil && b.Len() > 0
}

func (t *Table) Buffer(idx int) *beep.Buffer {
	if idx < 0 || idx >= len(t.samples) {
		return nil
	}
	return t.samples[idx].Data
}

func (t *Table) Name(idx int) string {
	if idx < 0 || idx >= len(t.samples) {
		return ""
	}
	return t.samples[idx].Name
}

// Len returns the number of loaded samples.
func (t *Table) Len() int {
	return len(t.samples)
}

func (t *Table) Has(name string) (int, bool) {
	for i, s := range t.samples {
		if s.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Add stores an already decoded sample and returns its index.
func (t *Table) Add(name string, data *beep.Buffer) int {
	t.samples = append(t.samples, Sample{Name: name, Data: data})
	return len(t.samples) - 1
}

// Map makes game sound number sound play sample idx.
func (t *Table) Map(sound, idx int) error {
	if sound < 0 || sound >= MaxSounds {
		return errors.Errorf("sound number %d out of range", sound)
	}
	if idx < 0 || idx >= len(t.samples) || idx >= NoSound {
		return errors.Errorf("sample %d out of range", idx)
	}
	t.Sounds[sound] = uint8(idx)
	return nil
}

// SetAlt makes sound play alt instead in low memory mode. NoSound silences it.
func (t *Table) SetAlt(sound, alt int) error {
	if sound < 0 || sound >= MaxSounds {
		return errors.Errorf("sound number %d out of range", sound)
	}
	if alt != NoSound && (alt < 0 || alt >= MaxSounds) {
		return errors.Errorf("alternate sound %d out of range", alt)
	}
	t.AltSounds[sound] = uint8(alt)
	return nil
}

// Load decodes the wave file name from the game filesystem, converts it to
// the table format and maps it to the game sound number sound.
func (t *Table) Load(sound int, name string) (int, error) {
	if i, ok := t.Has(name); ok {
		return i, t.Map(sound, i)
	}
	f, err := filesystem.Open(name)
	if err != nil {
		return -1, errors.Wrapf(err, "could not open %v", name)
	}
	defer f.Close()
	s, format, err := wav.Decode(f)
	if err != nil {
		return -1, errors.Wrapf(err, "could not decode %v", name)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != t.format.SampleRate {
		src = beep.Resample(4, format.SampleRate, t.format.SampleRate, s)
	}
	buf := beep.NewBuffer(t.format)
	buf.Append(src)
	if err := s.Err(); err != nil {
		return -1, errors.Wrapf(err, "could not read %v", name)
	}
	i := t.Add(name, buf)
	return i, t.Map(sound, i)
}
