package vec

import (
	"github.com/chewxy/math32"
)

type Vec3 struct {
	X, Y, Z float32
}

func VFromA(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v *Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Length returns the length of the vector
func (v *Vec3) Length() float32 {
	return math32.Sqrt(Dot(*v, *v))
}

// QuickLength approximates the length of the vector without a square root.
// The error stays below ~10%, which is enough for audio falloff.
func (v *Vec3) QuickLength() float32 {
	a := math32.Abs(v.X)
	b := math32.Abs(v.Y)
	c := math32.Abs(v.Z)
	if a < b {
		a, b = b, a
	}
	if b < c {
		b, c = c, b
		if a < b {
			a, b = b, a
		}
	}
	bc := b/4 + c/8
	return a + bc + bc/2
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Normalize returns the normalized vector
func (v *Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// NormalizedDirQuick returns the direction from start to end scaled by the
// approximated length and that length. For start == end the direction is the
// null vector and the distance 0.
func NormalizedDirQuick(end, start Vec3) (Vec3, float32) {
	d := Sub(end, start)
	l := d.QuickLength()
	if l == 0 {
		return Vec3{}, 0
	}
	return d.Scale(1 / l), l
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a cross b
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// DeltaAngleNorm returns the angle in radians between the normalized vectors
// v0 and v1. The angle is negative if v0 x v1 points away from fvec.
func DeltaAngleNorm(v0, v1, fvec Vec3) float32 {
	// quick normalized inputs can leave [-1,1] slightly
	d := Dot(v0, v1)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	a := math32.Acos(d)
	if Dot(Cross(v0, v1), fvec) < 0 {
		a = -a
	}
	return a
}

// Equal returns a == b
func Equal(a Vec3, b Vec3) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// Matrix is an orientation given by its three axis vectors.
type Matrix struct {
	Right, Up, Forward Vec3
}

// Identity looks down +Z with +Y up and +X right.
var Identity = Matrix{
	Right:   Vec3{1, 0, 0},
	Up:      Vec3{0, 1, 0},
	Forward: Vec3{0, 0, 1},
}

// AngleMatrix builds an orientation from pitch, heading and bank in degrees.
func AngleMatrix(pitch, heading, bank float32) Matrix {
	deg := math32.Pi * 2 / 360
	sp, cp := math32.Sincos(pitch * deg)
	sh, ch := math32.Sincos(heading * deg)
	sb, cb := math32.Sincos(bank * deg)

	sbsh := sb * sh
	cbch := cb * ch
	cbsh := cb * sh
	sbch := sb * ch

	return Matrix{
		Right: Vec3{
			cbch + sp*sbsh,
			sb * cp,
			sp*sbch - cbsh,
		},
		Up: Vec3{
			sp*cbsh - sbch,
			cb * cp,
			sbsh + sp*cbch,
		},
		Forward: Vec3{
			sh * cp,
			-sp,
			ch * cp,
		},
	}
}
