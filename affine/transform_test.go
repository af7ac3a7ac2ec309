package affine

import (
	"errors"
	"math"
	"testing"
)

func mustFromSlice(t *testing.T, data []float64, rows, cols int) *Mat {
	t.Helper()
	m, err := FromSlice(data, rows, cols)
	if err != nil {
		t.Fatalf("FromSlice(%d, %d) failed: %v", rows, cols, err)
	}
	return m
}

func TestScaleInPlace(t *testing.T) {
	m := FromValues(2, 0, 5, 0, 3, 7)

	if err := ScaleInPlace(m, 2, 4); err != nil {
		t.Fatalf("ScaleInPlace() = %v, want nil", err)
	}

	want := FromValues(4, 0, 5, 0, 12, 7)
	if !m.EqualWithin(want, 0) {
		t.Fatalf("ScaleInPlace result = %v, want %v", m, want)
	}
}

func TestScaleInPlaceTouchesOnlyLinearPart(t *testing.T) {
	m := FromValues(1, 2, 3, 4, 5, 6)

	if err := ScaleInPlace(m, -2, 0.5); err != nil {
		t.Fatalf("ScaleInPlace() = %v, want nil", err)
	}

	want := FromValues(-2, 1, 3, -8, 2.5, 6)
	if !m.EqualWithin(want, 0) {
		t.Fatalf("ScaleInPlace result = %v, want %v", m, want)
	}
}

func TestScaleInPlaceIdentityFactors(t *testing.T) {
	m := FromValues(2, -1, 5, 3, 4, -7)
	orig := m.Clone()

	if err := ScaleInPlace(m, 1, 1); err != nil {
		t.Fatalf("ScaleInPlace() = %v, want nil", err)
	}

	if !m.EqualWithin(orig, 0) {
		t.Fatalf("ScaleInPlace(m, 1, 1) changed matrix: %v, want %v", m, orig)
	}
}

func TestTranslateInPlace(t *testing.T) {
	m := FromValues(2, 0, 5, 0, 3, 7)

	if err := TranslateInPlace(m, 1, 2); err != nil {
		t.Fatalf("TranslateInPlace() = %v, want nil", err)
	}

	// tx offsets the x translation; ty scales the y translation.
	want := FromValues(2, 0, 6, 0, 3, 14)
	if !m.EqualWithin(want, 0) {
		t.Fatalf("TranslateInPlace result = %v, want %v", m, want)
	}
}

func TestTranslateInPlaceNeutralArguments(t *testing.T) {
	m := FromValues(2, -1, 5, 3, 4, -7)
	orig := m.Clone()

	if err := TranslateInPlace(m, 0, 1); err != nil {
		t.Fatalf("TranslateInPlace() = %v, want nil", err)
	}

	if !m.EqualWithin(orig, 0) {
		t.Fatalf("TranslateInPlace(m, 0, 1) changed matrix: %v, want %v", m, orig)
	}
}

func TestScaleInPlaceNaNPropagates(t *testing.T) {
	m := FromValues(2, 0, 5, 0, 3, 7)

	if err := ScaleInPlace(m, math.NaN(), math.Inf(1)); err != nil {
		t.Fatalf("ScaleInPlace() = %v, want nil", err)
	}

	if !math.IsNaN(m.At(0, 0)) {
		t.Fatalf("At(0, 0) = %v, want NaN", m.At(0, 0))
	}
	if !math.IsInf(m.At(1, 1), 1) {
		t.Fatalf("At(1, 1) = %v, want +Inf", m.At(1, 1))
	}
	// Zero entries of the linear part: 0*NaN stays NaN, translation is untouched.
	if m.At(0, 2) != 5 || m.At(1, 2) != 7 {
		t.Fatalf("translation column changed: %v", m)
	}
}

func TestRotateInPlaceQuarterTurn(t *testing.T) {
	m := Identity()

	if err := RotateDegInPlace(m, 90); err != nil {
		t.Fatalf("RotateDegInPlace() = %v, want nil", err)
	}

	want := FromValues(0, -1, 0, 1, 0, 0)
	if !m.EqualWithin(want, 1e-15) {
		t.Fatalf("RotateDegInPlace(90) = %v, want %v", m, want)
	}
}

func TestRotateInPlaceMatchesComposition(t *testing.T) {
	m := FromValues(2, -1, 5, 3, 4, -7)
	theta := 0.73

	byMul, err := FromValues(math.Cos(theta), -math.Sin(theta), 0, math.Sin(theta), math.Cos(theta), 0).Mul(m)
	if err != nil {
		t.Fatalf("Mul() = %v, want nil", err)
	}

	if err := RotateInPlace(m, theta); err != nil {
		t.Fatalf("RotateInPlace() = %v, want nil", err)
	}

	if !m.EqualWithin(byMul, 1e-12) {
		t.Fatalf("RotateInPlace = %v, want %v", m, byMul)
	}
}

func TestSkewInPlaceMatchesComposition(t *testing.T) {
	m := FromValues(2, -1, 5, 3, 4, -7)
	xs, ys := 0.3, -0.2

	byMul, err := FromValues(1, math.Tan(xs), 0, math.Tan(ys), 1, 0).Mul(m)
	if err != nil {
		t.Fatalf("Mul() = %v, want nil", err)
	}

	if err := SkewInPlace(m, xs, ys); err != nil {
		t.Fatalf("SkewInPlace() = %v, want nil", err)
	}

	if !m.EqualWithin(byMul, 1e-12) {
		t.Fatalf("SkewInPlace = %v, want %v", m, byMul)
	}
}

func TestSkewDegInPlace(t *testing.T) {
	a := Identity()
	b := Identity()

	if err := SkewDegInPlace(a, 45, 0); err != nil {
		t.Fatalf("SkewDegInPlace() = %v, want nil", err)
	}
	if err := SkewInPlace(b, math.Pi/4, 0); err != nil {
		t.Fatalf("SkewInPlace() = %v, want nil", err)
	}

	if !a.EqualWithin(b, 1e-15) {
		t.Fatalf("SkewDegInPlace(45) = %v, want %v", a, b)
	}
}

func TestKernelsRejectInvalidMatrix(t *testing.T) {
	kernels := []struct {
		name string
		call func(m *Mat) error
	}{
		{"ScaleInPlace", func(m *Mat) error { return ScaleInPlace(m, 2, 3) }},
		{"TranslateInPlace", func(m *Mat) error { return TranslateInPlace(m, 2, 3) }},
		{"RotateInPlace", func(m *Mat) error { return RotateInPlace(m, 0.5) }},
		{"SkewInPlace", func(m *Mat) error { return SkewInPlace(m, 0.5, 0.5) }},
	}

	parent := mustFromSlice(t, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, 4, 4)

	matrices := []struct {
		name string
		m    *Mat
	}{
		{"nil", nil},
		{"2x2", mustFromSlice(t, []float64{1, 2, 3, 4}, 2, 2)},
		{"2x3", mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)},
		{"3x2", mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, 3, 2)},
		{"4x4", mustFromSlice(t, make([]float64, 16), 4, 4)},
		{"strided view", parent.View(0, 0, 3, 3)},
	}

	for _, k := range kernels {
		for _, tc := range matrices {
			var before *Mat
			if tc.m != nil {
				before = tc.m.Clone()
			}

			err := k.call(tc.m)
			if !errors.Is(err, ErrInvalidMatrix) {
				t.Fatalf("%s(%s) = %v, want ErrInvalidMatrix", k.name, tc.name, err)
			}

			if tc.m != nil && !tc.m.EqualWithin(before, 0) {
				t.Fatalf("%s(%s) mutated rejected matrix: %v, want %v", k.name, tc.name, tc.m, before)
			}
		}
	}

	// The strided view shares backing data with parent; make sure the
	// rejected calls left the parent untouched as well.
	for i, v := range parent.Data() {
		if v != float64(i+1) {
			t.Fatalf("parent data[%d] = %v, want %v", i, v, float64(i+1))
		}
	}
}

func TestKernelsAcceptWrappedCallerSlice(t *testing.T) {
	data := []float64{2, 0, 5, 0, 3, 7, 0, 0, 1}
	m := mustFromSlice(t, data, 3, 3)

	if err := ScaleInPlace(m, 2, 4); err != nil {
		t.Fatalf("ScaleInPlace() = %v, want nil", err)
	}

	// Mutation happens in the caller-owned slice, no copy.
	want := []float64{4, 0, 5, 0, 12, 7, 0, 0, 1}
	for i, v := range data {
		if v != want[i] {
			t.Fatalf("data[%d] = %v, want %v", i, v, want[i])
		}
	}
}
