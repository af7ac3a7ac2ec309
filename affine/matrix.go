package affine

import (
	"errors"
	"strconv"
	"strings"
)

// ErrShapeMismatch reports a backing slice whose length does not match
// the requested dimensions.
var ErrShapeMismatch = errors.New("affine: data length does not match rows*cols")

// Mat is a row-major float64 matrix. A Mat is dense when its stride
// equals its column count; views created with View may be strided.
// Transform kernels accept only densely packed 3x3 matrices.
type Mat struct {
	rows, cols int
	stride     int
	data       []float64
}

// Identity returns a new dense 3x3 identity matrix.
func Identity() *Mat {
	m := &Mat{rows: 3, cols: 3, stride: 3, data: make([]float64, 9)}
	m.data[0] = 1
	m.data[4] = 1
	m.data[8] = 1
	return m
}

// FromValues returns a new dense 3x3 affine matrix
//
//	[ a  b  c ]
//	[ d  e  f ]
//	[ 0  0  1 ]
//
// where a,b,d,e form the linear part and c,f the translation.
func FromValues(a, b, c, d, e, f float64) *Mat {
	return &Mat{
		rows: 3, cols: 3, stride: 3,
		data: []float64{a, b, c, d, e, f, 0, 0, 1},
	}
}

// FromSlice wraps an existing row-major dense slice without copying.
// Mutations through the returned Mat are visible in data and vice
// versa; the caller keeps ownership of the slice.
func FromSlice(data []float64, rows, cols int) (*Mat, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, ErrShapeMismatch
	}
	return &Mat{rows: rows, cols: cols, stride: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Mat) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mat) Cols() int { return m.cols }

// Stride returns the distance in elements between vertically adjacent
// entries of the backing slice.
func (m *Mat) Stride() int { return m.stride }

// Data returns the backing slice. For strided views it starts at the
// view origin and includes the gap elements between rows.
func (m *Mat) Data() []float64 { return m.data }

// IsDense reports whether the elements are packed with no gaps.
func (m *Mat) IsDense() bool { return m.stride == m.cols }

// At returns the element at row r, column c.
// Panics if the indices are out of range.
func (m *Mat) At(r, c int) float64 {
	m.checkIndex(r, c)
	return m.data[r*m.stride+c]
}

// Set stores v at row r, column c.
// Panics if the indices are out of range.
func (m *Mat) Set(r, c int, v float64) {
	m.checkIndex(r, c)
	m.data[r*m.stride+c] = v
}

func (m *Mat) checkIndex(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic("affine: index out of range")
	}
}

// View returns a rows x cols window of m starting at row r0, column c0.
// The view shares the backing slice with m and keeps m's stride, so a
// view narrower than its parent is not densely packed.
// Panics if the window exceeds the bounds of m.
func (m *Mat) View(r0, c0, rows, cols int) *Mat {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 ||
		r0+rows > m.rows || c0+cols > m.cols {
		panic("affine: view out of range")
	}
	return &Mat{
		rows:   rows,
		cols:   cols,
		stride: m.stride,
		data:   m.data[r0*m.stride+c0:],
	}
}

// Clone returns a dense deep copy of m. Strided views are compacted.
func (m *Mat) Clone() *Mat {
	out := &Mat{
		rows: m.rows, cols: m.cols, stride: m.cols,
		data: make([]float64, m.rows*m.cols),
	}
	for r := 0; r < m.rows; r++ {
		copy(out.data[r*out.stride:(r+1)*out.stride], m.data[r*m.stride:r*m.stride+m.cols])
	}
	return out
}

// Zero sets all elements of m to 0.
func (m *Mat) Zero() {
	for r := 0; r < m.rows; r++ {
		row := m.data[r*m.stride : r*m.stride+m.cols]
		for i := range row {
			row[i] = 0
		}
	}
}

// SetIdentity resets a densely packed 3x3 matrix to the identity.
// Returns ErrInvalidMatrix for any other layout.
func (m *Mat) SetIdentity() error {
	if err := valid3x3(m); err != nil {
		return err
	}
	d := m.data
	d[0], d[1], d[2] = 1, 0, 0
	d[3], d[4], d[5] = 0, 1, 0
	d[6], d[7], d[8] = 0, 0, 1
	return nil
}

// Mul returns the affine composition m*n as a new dense matrix.
// Both operands must be densely packed 3x3 matrices.
func (m *Mat) Mul(n *Mat) (*Mat, error) {
	if err := valid3x3(m); err != nil {
		return nil, err
	}
	if err := valid3x3(n); err != nil {
		return nil, err
	}
	out := &Mat{rows: 3, cols: 3, stride: 3, data: make([]float64, 9)}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.data[r*3+k] * n.data[k*3+c]
			}
			out.data[r*3+c] = sum
		}
	}
	return out, nil
}

// EqualWithin reports whether m and n have the same shape and all
// corresponding elements are nearly equal within eps.
func (m *Mat) EqualWithin(n *Mat, eps float64) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !NearlyEqual(m.At(r, c), n.At(r, c), eps) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix as nested rows, e.g. "[[1 0 0] [0 1 0] [0 0 1]]".
func (m *Mat) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.At(r, c), 'g', -1, 64))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
