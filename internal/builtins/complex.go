package builtins

import (
	"math"
	"math/cmplx"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// complexBuiltins groups the complex-number conversions, implementing
// DESIGN.md's Open Question decision for `Ca`/`Polar` (spec §9 (a)):
// Ca builds a Complex from (real, imag); Polar converts a Complex to its
// (magnitude, phase) pair, both defined cleanly rather than left as the
// original's dangling reference. Grounded on
// original_source/birdiescript/builtins.py's builtin_cartesian/
// builtin_polar/builtin_arg.
func complexBuiltins() []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(cartesianOp, "Ca", "Cartesian", "Rect"),
		value.NewBuiltin(polarOp, "Cp", "Polar"),
		value.NewBuiltin(argOp, "Ag", "Arg", "Argument", "Phase"),
	}
}

// cartesianOp pops (re, im) and pushes Complex(re, im).
func cartesianOp(m value.Machine) error {
	im, err := popFloat(m, "Cartesian")
	if err != nil {
		return err
	}
	re, err := popFloat(m, "Cartesian")
	if err != nil {
		return err
	}
	m.Push(value.NewComplex(re, im))
	return nil
}

// polarOp pops a Num, converts it to Complex, and pushes a two-element
// List [magnitude, phase] (spec §9 (a): "treat as (mag, phase) and define
// both cleanly").
func polarOp(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	c, err := value.Convert(v, value.RankComplex)
	if err != nil {
		return err
	}
	cc := c.(*value.Complex)
	r, phi := cmplx.Polar(complex(cc.Re, cc.Im))
	m.Push(value.NewList([]value.Value{value.NewFloat(r), value.NewFloat(phi)}))
	return nil
}

// argOp pops a Num and pushes its phase angle (the polar angle alone,
// without the magnitude Polar also returns).
func argOp(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	c, err := value.Convert(v, value.RankComplex)
	if err != nil {
		return err
	}
	cc, ok := c.(*value.Complex)
	if !ok {
		return berrors.Type("Arg", v.Rank().String())
	}
	m.Push(value.NewFloat(math.Atan2(cc.Im, cc.Re)))
	return nil
}
