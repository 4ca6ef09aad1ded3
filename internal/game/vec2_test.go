package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec2ValueOpsDoNotMutate(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Add = %v, want (4, -2)", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Sub = %v, want (-2, 6)", got)
	}
	if got := a.SubXY(1, 1); got != V2(0, 1) {
		t.Errorf("SubXY = %v, want (0, 1)", got)
	}
	if got := a.Scale(2.5); got != V2(2.5, 5) {
		t.Errorf("Scale = %v, want (2.5, 5)", got)
	}
	if a != V2(1, 2) {
		t.Errorf("value ops mutated receiver: %v", a)
	}
}

func TestVec2LocalOpsMutate(t *testing.T) {
	v := V2(1, 2)
	ret := v.AddLocal(V2(1, 1))
	if ret != &v {
		t.Fatalf("AddLocal should return its receiver")
	}
	if v != V2(2, 3) {
		t.Errorf("AddLocal: got %v, want (2, 3)", v)
	}

	v.ScaleLocal(2).SubLocal(V2(4, 4))
	if v != V2(0, 2) {
		t.Errorf("ScaleLocal+SubLocal: got %v, want (0, 2)", v)
	}

	v.Set(7, 8)
	if v != V2(7, 8) {
		t.Errorf("Set: got %v", v)
	}
}

func TestVec2Normalize(t *testing.T) {
	vs := []Vec2{V2(3, 4), V2(-1, 0), V2(1e-8, 3e-8), V2(12345, -6789)}
	for _, v := range vs {
		n := v.Normalize()
		if math.Abs(n.Length()-1) > eps {
			t.Errorf("Normalize(%v).Length() = %v, want 1", v, n.Length())
		}
		w := v
		w.NormalizeLocal()
		if w != n {
			t.Errorf("NormalizeLocal(%v) = %v, want %v", v, w, n)
		}
	}
}

func TestVec2NormalizeZeroIsIdentity(t *testing.T) {
	var z Vec2
	if got := z.Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
	z.NormalizeLocal()
	if z != (Vec2{}) || math.IsNaN(z.X) {
		t.Errorf("NormalizeLocal(0) = %v, want zero", z)
	}
}

func TestVec2Length(t *testing.T) {
	if got := V2(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := V2(3, 4).LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
}

func TestVec2PolarAngles(t *testing.T) {
	tests := []struct {
		v       Vec2
		rad     float64
		degrees float64
	}{
		{V2(1, 0), 0, 0},
		{V2(1, 1), -math.Pi / 4, 45},
		{V2(1, -1), math.Pi / 4, 315},
		{V2(-1, 1), -3 * math.Pi / 4, 135},
		// x == 0 is reported as 0 regardless of y.
		{V2(0, 5), 0, 0},
		{V2(0, -5), 0, 0},
	}
	for _, tt := range tests {
		if got := tt.v.PolarAngleRadians(); math.Abs(got-tt.rad) > eps {
			t.Errorf("%v.PolarAngleRadians() = %v, want %v", tt.v, got, tt.rad)
		}
		if got := tt.v.PolarAngleDegrees(); math.Abs(got-tt.degrees) > 1e-6 {
			t.Errorf("%v.PolarAngleDegrees() = %v, want %v", tt.v, got, tt.degrees)
		}
	}
}

func TestShortest(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, 1)
	c := V2(-1, -1)

	if got := Shortest(&a, nil, &b, &c); got != &b {
		t.Errorf("Shortest picked %v, want first minimum %v", got, b)
	}
	if got := Shortest(nil, nil); got != nil {
		t.Errorf("Shortest(nil, nil) = %v, want nil", got)
	}
	if got := Shortest(); got != nil {
		t.Errorf("Shortest() = %v, want nil", got)
	}
}

func TestVec2String(t *testing.T) {
	if got := V2(1.5, -2).String(); got != "(1.5, -2)" {
		t.Errorf("String = %q", got)
	}
}
