// Package matrix provides small dense matrices with compile-time shape.
//
// The matrix package provides:
//
//   - Matrix[T, C, M]: a column-major R×K matrix whose column type C carries
//     the row count and whose storage type M carries the column count.
//   - Square aliases Mat2, Mat3, Mat4 (and float64 Matrix2..Matrix4).
//   - Element access, Clear, Add/Sub/Scale, and the square-only operations
//     Mul, MulVec, Transpose, Trace and Determinant.
//   - Inverse (Gauss-Jordan, partial pivoting), EigenSym (Jacobi sweeps) and
//     SpectralNorm for float element types.
//   - Homogeneous transform builders (translate, scale, rotate) for 2-D and
//     3-D, point/direction transforms and affine checks.
//   - Conversions to and from github.com/go-gl/mathgl mgl64 matrices.
//
// Memory layout follows OpenGL conventions (column-major): At(row, col)
// reads column col, component row.
//
// All matrices are values; no method retains its receiver or arguments.
package matrix
