// Package vectra is a small, dependable toolkit for dense linear algebra —
// matrices, vectors and the handful of routines you reach for first when
// studying or prototyping: multiplication, Gaussian elimination, linear-system
// solving and 3-D rotations.
//
// 🚀 What is vectra?
//
//	A compact, type-generic library that brings together:
//		• Dense matrices: row-major storage, bounds-checked access, deep clones
//		• Matrix kernels: Mul, Add, Sub, Scale, Hadamard, Transpose, MatVec
//		• Row reduction: full reduced row-echelon form (Gauss–Jordan)
//		• Vectors: slice-backed, with dot product, Euclidean norm, transpose
//		• Linear systems: augmented-matrix solver with singularity detection
//		• Rotations: right-handed 3×3 rotation builders around X, Y and Z
//
// ✨ Why choose vectra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, deterministic loop orders
//   - Pure Go – generics over any numeric scalar, no cgo, no hidden deps
//   - Honest numerics – the naive triple loop you learned in class, exactly
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — generic Dense[T] storage, kernels and reduced row-echelon form
//	vector/ — slice-backed Vector[T] with dot, norm and orientation
//	linalg/ — rotation builders and the linear-system solver
//
// Quick sketch:
//
//	A · x = b   →   linalg.Solve(A, b)   →   x
//
// vectra targets educational use and small, bounded inputs; it deliberately
// skips sparse storage, magnitude pivoting and matrix decompositions.
// Dive into examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/vectra
package vectra
