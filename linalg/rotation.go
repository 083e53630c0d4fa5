// SPDX-License-Identifier: MIT
// Package linalg: 3-D axis-aligned rotation builders.
// Each builder returns a fixed 3×3 matrix per the standard right-handed
// rotation formulas; the only inputs are angles in radians, so no error
// conditions exist and the constructors below cannot fail.

package linalg

import (
	"math"

	"github.com/katalvlaran/vectra/matrix"
)

// rotationDim is the fixed dimension of every 3-D rotation matrix.
const rotationDim = 3

// newRotation allocates the shared 3×3 zero matrix for the builders.
// NewDense cannot fail for the fixed positive dimension.
func newRotation() *matrix.Dense[float64] {
	rot, _ := matrix.NewDense[float64](rotationDim, rotationDim)
	return rot
}

// RotationX returns the right-handed rotation matrix around the X axis:
//
//	[1    0        0   ]
//	[0  cos(θ)  -sin(θ)]
//	[0  sin(θ)   cos(θ)]
//
// angle is in radians; any finite value is accepted.
// Complexity: O(1).
func RotationX(angle float64) *matrix.Dense[float64] {
	rot := newRotation()
	sin, cos := math.Sincos(angle) // one call yields both trig values
	_ = rot.Set(0, 0, 1)
	_ = rot.Set(1, 1, cos)
	_ = rot.Set(1, 2, -sin)
	_ = rot.Set(2, 1, sin)
	_ = rot.Set(2, 2, cos)

	return rot
}

// RotationY returns the right-handed rotation matrix around the Y axis:
//
//	[ cos(θ)  0  sin(θ)]
//	[   0     1    0   ]
//	[-sin(θ)  0  cos(θ)]
//
// angle is in radians; any finite value is accepted.
// Complexity: O(1).
func RotationY(angle float64) *matrix.Dense[float64] {
	rot := newRotation()
	sin, cos := math.Sincos(angle)
	_ = rot.Set(0, 0, cos)
	_ = rot.Set(0, 2, sin)
	_ = rot.Set(1, 1, 1)
	_ = rot.Set(2, 0, -sin)
	_ = rot.Set(2, 2, cos)

	return rot
}

// RotationZ returns the right-handed rotation matrix around the Z axis:
//
//	[cos(θ)  -sin(θ)  0]
//	[sin(θ)   cos(θ)  0]
//	[  0        0     1]
//
// angle is in radians; any finite value is accepted.
// Complexity: O(1).
func RotationZ(angle float64) *matrix.Dense[float64] {
	rot := newRotation()
	sin, cos := math.Sincos(angle)
	_ = rot.Set(0, 0, cos)
	_ = rot.Set(0, 1, -sin)
	_ = rot.Set(1, 0, sin)
	_ = rot.Set(1, 1, cos)
	_ = rot.Set(2, 2, 1)

	return rot
}
