// SPDX-License-Identifier: GPL-2.0-or-later

package mixer

import (
	"encoding/binary"
	gomath "math"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"

	"godescent/math"
)

const frameSize = 2 * 4

// Output feeds a streamer to the audio device. The device pulls on its own
// goroutine.
type Output struct {
	ctx    *oto.Context
	player *oto.Player
	src    beep.Streamer
	buf    [][2]float64
}

func NewOutput(sampleRate beep.SampleRate, src beep.Streamer) (*Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not open audio device")
	}
	<-ready
	o := &Output{
		ctx: ctx,
		src: src,
	}
	o.player = ctx.NewPlayer(o)
	o.player.Play()
	return o, nil
}

// Read implements io.Reader for the oto player.
func (o *Output) Read(p []byte) (int, error) {
	frames := len(p) / frameSize
	if cap(o.buf) < frames {
		o.buf = make([][2]float64, frames)
	}
	buf := o.buf[:frames]
	n, _ := o.src.Stream(buf)
	clear(buf[n:])
	encodeFloat32LE(p, buf)
	return frames * frameSize, nil
}

func (o *Output) Close() error {
	if err := o.player.Close(); err != nil {
		return errors.Wrap(err, "could not close audio player")
	}
	return nil
}

// encodeFloat32LE writes interleaved stereo frames clipped to [-1,1].
func encodeFloat32LE(p []byte, frames [][2]float64) {
	for i, f := range frames {
		for c := 0; c < 2; c++ {
			v := float32(math.Clamp(-1, f[c], 1))
			binary.LittleEndian.PutUint32(p[i*frameSize+c*4:], gomath.Float32bits(v))
		}
	}
}
