package ggmap

import (
	"math"
	"testing"
)

func matrixNear(a, b Matrix) bool {
	const eps = 1e-9
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps && math.Abs(a.C-b.C) < eps &&
		math.Abs(a.D-b.D) < eps && math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestMatrixPredicates(t *testing.T) {
	tests := []struct {
		name        string
		m           Matrix
		identity    bool
		translation bool
	}{
		{"identity", Identity(), true, true},
		{"translate", Translate(10, -5), false, true},
		{"scale", Scale(2, 2), false, false},
		{"flip", Scale(1, -1), false, false},
		{"shear", Matrix{A: 1, B: 0.5, D: 0, E: 1}, false, false},
		{"zero", Matrix{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.m.IsTranslationOnly(); got != tt.translation {
				t.Errorf("IsTranslationOnly() = %v, want %v", got, tt.translation)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Multiply(Scale(2, 3))
	got := m.TransformPoint(Pt(1, 1))
	if got != Pt(12, 23) {
		t.Errorf("TransformPoint = %v, want (12, 23)", got)
	}

	// Translate first, then scale.
	m = Scale(2, 3).Multiply(Translate(10, 20))
	got = m.TransformPoint(Pt(1, 1))
	if got != Pt(22, 63) {
		t.Errorf("TransformPoint = %v, want (22, 63)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -7)},
		{"scale", Scale(0.5, -4)},
		{"view", Matrix{A: 0.1, C: 400, E: -0.1, F: 300}},
		{"shear", Matrix{A: 1, B: 2, C: 3, D: 0.5, E: 1, F: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Multiply(tt.m.Invert()); !matrixNear(got, Identity()) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
			p := Pt(12.5, -3)
			back := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if back.Distance(p) > 1e-9 {
				t.Errorf("round trip = %v, want %v", back, p)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestPointOps(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)
	if got := a.Add(b); got != Pt(5, 8) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != Pt(3, 4) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
