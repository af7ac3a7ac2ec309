package affine

import (
	"errors"
	"math"
)

// ErrInvalidMatrix rejects any matrix that is not a densely packed 3x3
// float64 matrix. Kernels returning it have not touched the matrix.
var ErrInvalidMatrix = errors.New("affine: only densely packed 3x3 float64 matrices are supported")

// valid3x3 is the shared gate for all in-place kernels: non-nil, 3x3
// shape, stride equal to the column count and a fully backed data
// slice. The third row is assumed to be [0 0 1] and is not verified.
func valid3x3(m *Mat) error {
	if m == nil || m.rows != 3 || m.cols != 3 || m.stride != m.cols || len(m.data) < 9 {
		return ErrInvalidMatrix
	}
	return nil
}

// ScaleInPlace scales the linear part of m by sx horizontally and sy
// vertically: a and d are multiplied by sx, b and e by sy. The
// translation column and the third row are left untouched. NaN and Inf
// factors propagate arithmetically.
func ScaleInPlace(m *Mat, sx, sy float64) error {
	if err := valid3x3(m); err != nil {
		return err
	}
	d := m.data
	d[0] *= sx
	d[3] *= sx
	d[1] *= sy
	d[4] *= sy
	return nil
}

// TranslateInPlace adjusts the translation column of m: tx is added to
// the x component while the y component is multiplied by ty. The
// asymmetry is intentional and kept for compatibility with existing
// callers; use ty=1 to leave the y translation unchanged.
func TranslateInPlace(m *Mat, tx, ty float64) error {
	if err := valid3x3(m); err != nil {
		return err
	}
	d := m.data
	d[2] += tx
	d[5] *= ty
	return nil
}

// RotateInPlace composes a counterclockwise rotation of theta radians
// onto m, premultiplying by the rotation matrix.
func RotateInPlace(m *Mat, theta float64) error {
	if err := valid3x3(m); err != nil {
		return err
	}
	sin, cos := math.Sincos(theta)
	d := m.data
	a, b, c := d[0], d[1], d[2]
	e, f, g := d[3], d[4], d[5]
	d[0] = cos*a - sin*e
	d[1] = cos*b - sin*f
	d[2] = cos*c - sin*g
	d[3] = sin*a + cos*e
	d[4] = sin*b + cos*f
	d[5] = sin*c + cos*g
	return nil
}

// RotateDegInPlace composes a counterclockwise rotation of deg degrees
// onto m.
func RotateDegInPlace(m *Mat, deg float64) error {
	return RotateInPlace(m, deg*math.Pi/180)
}

// SkewInPlace composes a shear onto m, premultiplying by the shear
// matrix for the given shear angles in radians: xShear shears along the
// x axis, yShear along the y axis.
func SkewInPlace(m *Mat, xShear, yShear float64) error {
	if err := valid3x3(m); err != nil {
		return err
	}
	tx := math.Tan(xShear)
	ty := math.Tan(yShear)
	d := m.data
	a, b, c := d[0], d[1], d[2]
	e, f, g := d[3], d[4], d[5]
	d[0] = a + tx*e
	d[1] = b + tx*f
	d[2] = c + tx*g
	d[3] = ty*a + e
	d[4] = ty*b + f
	d[5] = ty*c + g
	return nil
}

// SkewDegInPlace composes a shear onto m with angles in degrees.
func SkewDegInPlace(m *Mat, xShear, yShear float64) error {
	return SkewInPlace(m, xShear*math.Pi/180, yShear*math.Pi/180)
}
