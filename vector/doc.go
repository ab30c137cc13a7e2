// Package vector provides fixed-size numeric tuples for spatial computations.
//
// A Vector is parameterized by its scalar type T and by the array type A that
// backs it. The array type carries the dimension, so vectors of different
// dimensions are different Go types and mixing them is rejected by the
// compiler rather than at run time:
//
//	a := vector.V3(1.0, 2.0, 3.0)     // vector.Vec3[float64]
//	b := vector.V2(1.0, 2.0)          // vector.Vec2[float64]
//	_ = a.Add(b)                      // does not compile
//
// Operations:
//
//   - Component-wise Add, Sub, Scale, Div, Neg, Abs, Min, Max.
//   - Dot product for every dimension; Cross only for 3-component vectors
//     (Cross takes Vec3 arguments, so the restriction is a type error).
//   - Magnitude, Distance (float64) and their squared forms (T).
//   - Equal compares exactly; ApproxEqual takes an explicit tolerance.
//
// Vectors are plain values: copying a Vector copies its components, and no
// method retains a reference to its receiver or arguments.
//
// Complexity: every operation is O(N) with N ≤ 4 and allocates nothing.
package vector
