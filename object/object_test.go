// SPDX-License-Identifier: GPL-2.0-or-later

package object

import (
	"testing"

	"godescent/math/vec"
)

func TestCreateDelete(t *testing.T) {
	tab := NewTable()
	a := tab.Create(TypeRobot, 3, vec.Vec3{X: 1, Y: 2, Z: 3}, vec.Identity)
	b := tab.Create(TypePlayer, 4, vec.Vec3{}, vec.Identity)
	if a != 0 || b != 1 {
		t.Fatalf("Create = %d, %d want 0, 1", a, b)
	}
	sigA := tab.Get(a).Signature
	tab.Delete(a)
	if tab.Get(a).Alive() {
		t.Errorf("deleted object is still alive")
	}
	c := tab.Create(TypeWeapon, 5, vec.Vec3{}, vec.Identity)
	if c != a {
		t.Errorf("Create after Delete = %d want reuse of %d", c, a)
	}
	if tab.Get(c).Signature == sigA {
		t.Errorf("reused slot kept signature %v", sigA)
	}
}

func TestGetOutOfRange(t *testing.T) {
	tab := NewTable()
	if tab.Get(-1) != nil || tab.Get(MaxObjects) != nil {
		t.Errorf("Get out of range returned an object")
	}
	var o *Object
	if o.Alive() {
		t.Errorf("nil object is alive")
	}
}

func TestFindBySignature(t *testing.T) {
	tab := NewTable()
	tab.Create(TypeRobot, 0, vec.Vec3{}, vec.Identity)
	n := tab.Create(TypeRobot, 0, vec.Vec3{}, vec.Identity)
	sig := tab.Get(n).Signature
	if got := tab.FindBySignature(sig); got != n {
		t.Errorf("FindBySignature(%v) = %d want %d", sig, got, n)
	}
	tab.Delete(n)
	if got := tab.FindBySignature(sig); got != None {
		t.Errorf("FindBySignature of deleted = %d want None", got)
	}
}

func TestMove(t *testing.T) {
	tab := NewTable()
	n := tab.Create(TypeRobot, 0, vec.Vec3{}, vec.Identity)
	tab.Move(n, 7, vec.Vec3{X: 10, Y: 0, Z: 0})
	o := tab.Get(n)
	if o.Segment != 7 || o.Pos != (vec.Vec3{X: 10, Y: 0, Z: 0}) {
		t.Errorf("after Move object = %+v", o)
	}
}
