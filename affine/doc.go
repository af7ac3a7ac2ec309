// Package affine provides in-place 2D affine transform helpers for
// plotting pipelines. The central type is Mat, a row-major float64
// matrix; the transform kernels mutate a densely packed 3x3 matrix
// directly, with no allocation on the hot path. Bulk point
// transformation bridges to SIMD-accelerated block kernels.
package affine
