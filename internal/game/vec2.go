package game

import (
	"fmt"
	"math"
)

// Vec2 is a 2-D vector. Methods with a value receiver return a new vector;
// the *Local variants mutate the receiver in place and return it for chaining.
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// SubXY subtracts the scalar pair (x, y).
func (v Vec2) SubXY(x, y float64) Vec2 { return Vec2{X: v.X - x, Y: v.Y - y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

func (v *Vec2) AddLocal(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vec2) SubLocal(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vec2) ScaleLocal(k float64) *Vec2 {
	v.X *= k
	v.Y *= k
	return v
}

func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSquared avoids the square root when only ordering matters.
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns the unit vector in the direction of v.
// A zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// NormalizeLocal scales v to unit length in place. A zero vector is left as is.
func (v *Vec2) NormalizeLocal() *Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	v.X /= l
	v.Y /= l
	return v
}

// PolarAngleRadians returns atan2(-y, x), or 0 when x is exactly 0.
func (v Vec2) PolarAngleRadians() float64 {
	if v.X == 0 {
		return 0
	}
	return math.Atan2(-v.Y, v.X)
}

// PolarAngleDegrees returns the clockwise angle in [0, 360), or 0 when x is exactly 0.
func (v Vec2) PolarAngleDegrees() float64 {
	if v.X == 0 {
		return 0
	}
	t := -math.Atan2(-v.Y, v.X) * (180 / math.Pi)
	if t < 0 {
		return 360 + t
	}
	return t
}

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Shortest returns the vector with the smallest squared length, skipping nils.
// Ties keep the earliest. It returns nil when no non-nil vector is given.
func Shortest(vectors ...*Vec2) *Vec2 {
	var best *Vec2
	bestLen := math.MaxFloat64
	for _, v := range vectors {
		if v == nil {
			continue
		}
		l := v.LengthSquared()
		if best == nil || l < bestLen {
			best = v
			bestLen = l
		}
	}
	return best
}
