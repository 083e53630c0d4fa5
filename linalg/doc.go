// Package linalg provides stateless linear-algebra routines built on the
// matrix and vector packages.
//
// The linalg package provides:
//
//   - RotationX, RotationY, RotationZ — right-handed 3×3 rotation matrix
//     builders for angles in radians.
//   - Solve — linear-system solving by Gauss–Jordan reduction of the
//     augmented matrix [A|b], with explicit singularity detection.
//   - Apply — convenience application of a transformation matrix to a vector.
//
// All routines are pure functions: they validate fail-fast, allocate fresh
// results and never mutate their inputs.
package linalg
