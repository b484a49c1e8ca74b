// SPDX-License-Identifier: GPL-2.0-or-later

package demo

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"godescent/object"
	"godescent/snd"
)

var _ snd.Recorder = (*Recorder)(nil)

// Recorder writes sound events. The snd.Recorder methods cannot fail, the
// first write error is kept and returned by Err and Flush.
type Recorder struct {
	w     *bufio.Writer
	id    uuid.UUID
	frame int
	buf   []byte
	err   error
}

func NewRecorder(w io.Writer, level string) (*Recorder, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "could not create demo id")
	}
	r := &Recorder{
		w:  bufio.NewWriter(w),
		id: id,
	}
	h := Header{Version: Version, ID: id, Level: level}
	r.write(h.marshal(nil))
	if r.err != nil {
		return nil, r.err
	}
	return r, nil
}

func (r *Recorder) ID() uuid.UUID {
	return r.id
}

// SetFrame stamps the following events with the game frame.
func (r *Recorder) SetFrame(frame int) {
	r.frame = frame
}

func (r *Recorder) write(msg []byte) {
	if r.err != nil {
		return
	}
	r.buf = protowire.AppendBytes(r.buf[:0], msg)
	if _, err := r.w.Write(r.buf); err != nil {
		r.err = errors.Wrap(err, "could not write demo")
	}
}

func (r *Recorder) record(e Event) {
	e.Frame = r.frame
	r.write(e.marshal(nil))
}

func (r *Recorder) RecordSound(sound int) {
	r.record(Event{Kind: KindSound, Sound: sound})
}

func (r *Recorder) RecordSound3D(sound int, pan, volume float32) {
	r.record(Event{Kind: KindSound3D, Sound: sound, Pan: pan, Volume: volume})
}

func (r *Recorder) RecordLinkSoundToObject(sound int, obj int, sig object.Signature, maxVolume, maxDistance float32, loopStart, loopEnd int) {
	r.record(Event{
		Kind:        KindLink,
		Sound:       sound,
		Object:      obj,
		Signature:   sig,
		MaxVolume:   maxVolume,
		MaxDistance: maxDistance,
		LoopStart:   loopStart,
		LoopEnd:     loopEnd,
	})
}

func (r *Recorder) RecordKillSoundLinkedToObject(obj int, sig object.Signature) {
	r.record(Event{Kind: KindKill, Object: obj, Signature: sig})
}

func (r *Recorder) Err() error {
	return r.err
}

func (r *Recorder) Flush() error {
	if r.err != nil {
		return r.err
	}
	return errors.Wrap(r.w.Flush(), "could not write demo")
}

// Reader decodes a recording.
type Reader struct {
	r      *bufio.Reader
	header Header
	buf    []byte
}

func NewReader(r io.Reader) (*Reader, error) {
	d := &Reader{r: bufio.NewReader(r)}
	msg, err := d.next()
	if err == io.EOF {
		return nil, errors.New("empty demo")
	}
	if err != nil {
		return nil, err
	}
	if err := d.header.unmarshal(msg); err != nil {
		return nil, err
	}
	if d.header.Version != Version {
		return nil, errors.Errorf("demo version %d, want %d", d.header.Version, Version)
	}
	return d, nil
}

func (d *Reader) Header() Header {
	return d.header
}

func (d *Reader) next() ([]byte, error) {
	size, err := binary.ReadUvarint(d.r)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read demo message size")
	}
	if size > 1<<16 {
		return nil, errors.Errorf("demo message of %d bytes", size)
	}
	if cap(d.buf) < int(size) {
		d.buf = make([]byte, size)
	}
	d.buf = d.buf[:size]
	if _, err := io.ReadFull(d.r, d.buf); err != nil {
		return nil, errors.Wrap(err, "truncated demo message")
	}
	return d.buf, nil
}

// Next returns the next event or io.EOF at the end of the recording.
func (d *Reader) Next() (Event, error) {
	var e Event
	msg, err := d.next()
	if err != nil {
		return e, err
	}
	err = e.unmarshal(msg)
	return e, err
}
