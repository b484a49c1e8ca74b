// SPDX-License-Identifier: GPL-2.0-or-later

// Package demo records the sound events of a game session and plays them
// back. A recording is a header followed by events, each length prefixed
// and encoded in the protobuf wire format.
package demo

import (
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"godescent/object"
)

const Version = 1

type Kind uint8

const (
	KindSound Kind = iota + 1
	KindSound3D
	KindLink
	KindKill
)

func (k Kind) String() string {
	switch k {
	case KindSound:
		return "sound"
	case KindSound3D:
		return "sound3d"
	case KindLink:
		return "link"
	case KindKill:
		return "kill"
	}
	return "unknown"
}

type Header struct {
	Version int
	ID      uuid.UUID
	Level   string
}

const (
	headerVersion protowire.Number = 1
	headerID      protowire.Number = 2
	headerLevel   protowire.Number = 3
)

func (h *Header) marshal(b []byte) []byte {
	b = protowire.AppendTag(b, headerVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(h.Version))
	b = protowire.AppendTag(b, headerID, protowire.BytesType)
	b = protowire.AppendBytes(b, h.ID[:])
	if h.Level != "" {
		b = protowire.AppendTag(b, headerLevel, protowire.BytesType)
		b = protowire.AppendString(b, h.Level)
	}
	return b
}

func (h *Header) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "header tag")
		}
		b = b[n:]
		switch {
		case num == headerVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "header version")
			}
			h.Version = int(v)
			b = b[n:]
		case num == headerID && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "header id")
			}
			id, err := uuid.FromBytes(v)
			if err != nil {
				return errors.Wrap(err, "header id")
			}
			h.ID = id
			b = b[n:]
		case num == headerLevel && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "header level")
			}
			h.Level = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "header field %d", num)
			}
			b = b[n:]
		}
	}
	return nil
}

// Event is one recorded sound call. Which fields are set depends on Kind.
type Event struct {
	Kind        Kind
	Frame       int
	Sound       int
	Object      int
	Signature   object.Signature
	MaxVolume   float32
	MaxDistance float32
	LoopStart   int
	LoopEnd     int
	Pan         float32
	Volume      float32
}

const (
	eventKind        protowire.Number = 1
	eventFrame       protowire.Number = 2
	eventSound       protowire.Number = 3
	eventObject      protowire.Number = 4
	eventSignature   protowire.Number = 5
	eventMaxVolume   protowire.Number = 6
	eventMaxDistance protowire.Number = 7
	eventLoopStart   protowire.Number = 8
	eventLoopEnd     protowire.Number = 9
	eventPan         protowire.Number = 10
	eventVolume      protowire.Number = 11
)

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func (e *Event) marshal(b []byte) []byte {
	b = appendInt(b, eventKind, int64(e.Kind))
	b = appendInt(b, eventFrame, int64(e.Frame))
	b = appendInt(b, eventSound, int64(e.Sound))
	switch e.Kind {
	case KindSound3D:
		b = appendFloat(b, eventPan, e.Pan)
		b = appendFloat(b, eventVolume, e.Volume)
	case KindLink:
		b = appendInt(b, eventObject, int64(e.Object))
		b = appendInt(b, eventSignature, int64(e.Signature))
		b = appendFloat(b, eventMaxVolume, e.MaxVolume)
		b = appendFloat(b, eventMaxDistance, e.MaxDistance)
		b = appendInt(b, eventLoopStart, int64(e.LoopStart))
		b = appendInt(b, eventLoopEnd, int64(e.LoopEnd))
	case KindKill:
		b = appendInt(b, eventObject, int64(e.Object))
		b = appendInt(b, eventSignature, int64(e.Signature))
	}
	return b
}

func (e *Event) unmarshal(b []byte) error {
	*e = Event{LoopStart: -1, LoopEnd: -1}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "event tag")
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			u, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "event field %d", num)
			}
			b = b[n:]
			v := protowire.DecodeZigZag(u)
			switch num {
			case eventKind:
				e.Kind = Kind(v)
			case eventFrame:
				e.Frame = int(v)
			case eventSound:
				e.Sound = int(v)
			case eventObject:
				e.Object = int(v)
			case eventSignature:
				e.Signature = object.Signature(v)
			case eventLoopStart:
				e.LoopStart = int(v)
			case eventLoopEnd:
				e.LoopEnd = int(v)
			}
		case protowire.Fixed32Type:
			u, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "event field %d", num)
			}
			b = b[n:]
			v := math.Float32frombits(u)
			switch num {
			case eventMaxVolume:
				e.MaxVolume = v
			case eventMaxDistance:
				e.MaxDistance = v
			case eventPan:
				e.Pan = v
			case eventVolume:
				e.Volume = v
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "event field %d", num)
			}
			b = b[n:]
		}
	}
	if e.Kind < KindSound || e.Kind > KindKill {
		return errors.Errorf("unknown event kind %d", e.Kind)
	}
	return nil
}
