// Command vectra is a small console front-end over the vectra library:
// matrix multiplication, row reduction, linear-system solving and 3-D
// rotations, driven by compact matrix literals like "1,2;3,4".
//
// The CLI is a plain consumer of the public API — it holds no numeric logic
// of its own beyond parsing literals and printing the fixed-width rendering.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vectra/linalg"
	"github.com/katalvlaran/vectra/matrix"
	"github.com/katalvlaran/vectra/vector"
)

// rootCmd is the CLI entry point; every operation is a subcommand.
var rootCmd = &cobra.Command{
	Use:   "vectra",
	Short: "Dense linear algebra from the command line",
	Long: `vectra — dense matrix and vector toolbox.

Matrix literals use ',' between entries and ';' between rows: "1,2;3,4".
Vector literals are a single comma-separated row: "7,3".`,
	SilenceUsage: true,
}

// mulCmd multiplies two matrix literals.
var mulCmd = &cobra.Command{
	Use:   "mul <A> <B>",
	Short: "Multiply two matrices (A × B)",
	Args:  cobra.ExactArgs(2),
	RunE:  runMul,
}

// rrefCmd reduces a matrix literal to reduced row-echelon form.
var rrefCmd = &cobra.Command{
	Use:   "rref <A>",
	Short: "Reduce a matrix to reduced row-echelon form",
	Args:  cobra.ExactArgs(1),
	RunE:  runRref,
}

// solveCmd solves A·x = b for a square system.
var solveCmd = &cobra.Command{
	Use:   "solve <A> <b>",
	Short: "Solve the linear system A·x = b",
	Args:  cobra.ExactArgs(2),
	RunE:  runSolve,
}

// rotateCmd builds a rotation matrix and optionally applies it to a point.
var rotateCmd = &cobra.Command{
	Use:   "rotate <angle>",
	Short: "Build a 3×3 rotation matrix, optionally applying it to a point",
	Args:  cobra.ExactArgs(1),
	RunE:  runRotate,
}

var (
	rotateAxis    string // rotation axis: x, y or z
	rotateDegrees bool   // interpret the angle argument in degrees
	rotatePoint   string // optional 3-component point literal to transform
)

func init() {
	rotateCmd.Flags().StringVar(&rotateAxis, "axis", "z", "rotation axis: x, y or z")
	rotateCmd.Flags().BoolVar(&rotateDegrees, "degrees", false, "treat the angle as degrees instead of radians")
	rotateCmd.Flags().StringVar(&rotatePoint, "point", "", "optional point literal (e.g. \"1,0,0\") to transform")

	rootCmd.AddCommand(mulCmd, rrefCmd, solveCmd, rotateCmd)
}

func runMul(cmd *cobra.Command, args []string) error {
	a, err := parseMatrix(args[0])
	if err != nil {
		return err
	}
	b, err := parseMatrix(args[1])
	if err != nil {
		return err
	}

	c, err := matrix.Mul[float64](a, b)
	if err != nil {
		return err
	}
	cmd.Print(c)

	return nil
}

func runRref(cmd *cobra.Command, args []string) error {
	a, err := parseMatrix(args[0])
	if err != nil {
		return err
	}

	r, err := matrix.ReducedRowEchelonForm[float64](a)
	if err != nil {
		return err
	}
	cmd.Print(r)

	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, err := parseMatrix(args[0])
	if err != nil {
		return err
	}
	b, err := parseVector(args[1])
	if err != nil {
		return err
	}

	x, err := linalg.Solve[float64](a, b)
	if err != nil {
		return err
	}
	cmd.Print(x)

	return nil
}

func runRotate(cmd *cobra.Command, args []string) error {
	angle, err := parseAngle(args[0])
	if err != nil {
		return err
	}
	if rotateDegrees {
		angle = angle * math.Pi / 180 // convert once at the boundary
	}

	var rot *matrix.Dense[float64]
	switch rotateAxis {
	case "x":
		rot = linalg.RotationX(angle)
	case "y":
		rot = linalg.RotationY(angle)
	case "z":
		rot = linalg.RotationZ(angle)
	default:
		return fmt.Errorf("unknown axis %q: want x, y or z", rotateAxis)
	}
	cmd.Print(rot)

	// Apply the rotation when a point literal was supplied.
	if rotatePoint != "" {
		var p *vector.Vector[float64]
		p, err = parseVector(rotatePoint)
		if err != nil {
			return err
		}
		var out *vector.Vector[float64]
		out, err = linalg.Apply[float64](rot, p)
		if err != nil {
			return err
		}
		cmd.Printf("point:\n%s", out)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
