// SPDX-License-Identifier: GPL-2.0-or-later

// Package object holds the world objects the sound code attaches to. Only
// the fields needed for positional audio are modelled.
package object

import (
	"godescent/math/vec"
)

const (
	MaxObjects = 350
	None       = -1
)

type Type uint8

const (
	TypeNone Type = iota
	TypeWall
	TypeFireball
	TypeRobot
	TypeHostage
	TypePlayer
	TypeWeapon
	TypeCamera
	TypePowerup
	TypeDebris
	TypeControlCenter
	TypeFlare
	TypeClutter
	TypeGhost
	TypeLight
	TypeCoop
	TypeMarker
)

// Signature identifies an object over its lifetime. Object numbers get
// reused, signatures do not (until the counter wraps).
type Signature int32

type Object struct {
	Signature Signature
	Type      Type
	Segment   int
	Pos       vec.Vec3
	Orient    vec.Matrix
}

func (o *Object) Alive() bool {
	return o != nil && o.Type != TypeNone
}

type Table struct {
	objects       [MaxObjects]Object
	nextSignature Signature
	highest       int
}

func NewTable() *Table {
	return &Table{highest: -1}
}

// Create places a new object into the first free slot and returns its
// number or None if the table is full.
func (t *Table) Create(typ Type, seg int, pos vec.Vec3, orient vec.Matrix) int {
	for i := range t.objects {
		o := &t.objects[i]
		if o.Type != TypeNone {
			continue
		}
		*o = Object{
			Signature: t.nextSignature,
			Type:      typ,
			Segment:   seg,
			Pos:       pos,
			Orient:    orient,
		}
		t.nextSignature++
		if i > t.highest {
			t.highest = i
		}
		return i
	}
	return None
}

// Delete marks the object slot as free. The signature stays so stale
// references can be detected.
func (t *Table) Delete(num int) {
	if o := t.Get(num); o != nil {
		o.Type = TypeNone
	}
}

// Get returns the object slot num, dead or alive, or nil if num is out of range.
func (t *Table) Get(num int) *Object {
	if num < 0 || num >= MaxObjects {
		return nil
	}
	return &t.objects[num]
}

// FindBySignature returns the number of the live object with signature sig
// or None.
func (t *Table) FindBySignature(sig Signature) int {
	for i := 0; i <= t.highest; i++ {
		o := &t.objects[i]
		if o.Type != TypeNone && o.Signature == sig {
			return i
		}
	}
	return None
}

// Move updates the position and segment of a live object.
func (t *Table) Move(num int, seg int, pos vec.Vec3) {
	if o := t.Get(num); o.Alive() {
		o.Segment = seg
		o.Pos = pos
	}
}
