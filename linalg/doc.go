// Package linalg provides dense float32 matrix and vector primitives.
//
// What & Why:
//
//	Matrix owns a flat row-major buffer whose physical shape is fixed at
//	construction. Transposition is lazy: Transpose flips a flag in O(1) and
//	every accessor resolves logical coordinates through a pure addressing
//	function, so no data moves and no view can outlive its storage.
//
// The package offers:
//
//   - Construction: New, NewFlat, NewZero, NewOuter, NewRand (deterministic,
//     freshly seeded per call), NewBytes.
//   - Elementwise arithmetic in place (AddMat, MulScalar, ...) and as value
//     returning facades (Add, Sub, Mul, Div).
//   - Reductions and products: Sum, SumVec, DotVec, Det (cofactor expansion).
//   - A little-endian float32 byte codec (Bytes / NewBytes) whose layout is
//     [rows, cols, data...] for direct upload to GPU buffers.
//   - gonum interop via Dense and FromGonum.
//
// Errors:
//
//	Fallible operations return sentinels (ErrShapeMismatch, ErrSquareRequired,
//	...) wrapped with method context; payload-carrying kinds are typed
//	(*ShapeMismatchError, *IndexOutOfBoundsError, ...) and unwrap to their
//	sentinel. Floating-point edge cases (x/0, NaN) are not errors.
//
// Concurrency:
//
//	Values are not safe for concurrent mutation; each Matrix and Vector is
//	owned by its holder and binary operators never retain their operands.
package linalg
