package affine

import (
	"errors"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch reports point slices of unequal length.
var ErrLengthMismatch = errors.New("affine: point slices must have equal length")

// scratchBuf holds pooled scratch memory for bulk point transforms.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) ([]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf.data, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// TransformPoint applies m to a single point:
// x' = a*x + b*y + c, y' = d*x + e*y + f.
func TransformPoint(m *Mat, x, y float64) (float64, float64, error) {
	if err := valid3x3(m); err != nil {
		return 0, 0, err
	}
	d := m.data
	return d[0]*x + d[1]*y + d[2], d[3]*x + d[4]*y + d[5], nil
}

// TransformPoints applies m to the points (srcX[i], srcY[i]) and writes
// the images to dstX and dstY. All four slices must have equal length;
// the destination slices must not alias the sources. Uses SIMD block
// kernels where available.
func TransformPoints(dstX, dstY, srcX, srcY []float64, m *Mat) error {
	if err := valid3x3(m); err != nil {
		return err
	}
	n := len(srcX)
	if len(srcY) != n || len(dstX) != n || len(dstY) != n {
		return ErrLengthMismatch
	}
	if n == 0 {
		return nil
	}

	a, b, c := m.data[0], m.data[1], m.data[2]
	d, e, f := m.data[3], m.data[4], m.data[5]

	tmp, buf := getScratch(n)
	defer putScratch(buf)

	vecmath.ScaleBlock(dstX, srcX, a)
	vecmath.ScaleBlock(tmp, srcY, b)
	vecmath.AddBlockInPlace(dstX, tmp)

	vecmath.ScaleBlock(dstY, srcX, d)
	vecmath.ScaleBlock(tmp, srcY, e)
	vecmath.AddBlockInPlace(dstY, tmp)

	if c != 0 {
		for i := range dstX {
			dstX[i] += c
		}
	}
	if f != 0 {
		for i := range dstY {
			dstY[i] += f
		}
	}
	return nil
}

// TransformPointsInPlace applies m to the points (xs[i], ys[i]),
// overwriting the inputs. Safe for the aliasing that TransformPoints
// forbids: each output depends on both coordinates of its input.
func TransformPointsInPlace(xs, ys []float64, m *Mat) error {
	if err := valid3x3(m); err != nil {
		return err
	}
	n := len(xs)
	if len(ys) != n {
		return ErrLengthMismatch
	}
	if n == 0 {
		return nil
	}

	tmp, buf := getScratch(2 * n)
	defer putScratch(buf)
	outX, outY := tmp[:n], tmp[n:]

	if err := TransformPoints(outX, outY, xs, ys, m); err != nil {
		return err
	}
	copy(xs, outX)
	copy(ys, outY)
	return nil
}
