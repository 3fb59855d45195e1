package builtins

import (
	"math"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// statsBuiltins groups the trig/statistics sampler spec §2's catalogue
// summary calls out ("trig, statistics... add no design weight beyond
// registering a name against a handler"). A representative slice, not
// the original's full trig table.
func statsBuiltins() []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(sinOp, "Si", "Sin"),
		value.NewBuiltin(cosOp, "Co", "Cos"),
		value.NewBuiltin(tanOp, "Ta", "Tan"),
		value.NewBuiltin(meanOp, "Av", "Mean", "Average"),
		value.NewBuiltin(stdevOp, "Sd", "Stdev"),
	}
}

func trig1(m value.Machine, op string, f func(float64) float64) error {
	x, err := popFloat(m, op)
	if err != nil {
		return err
	}
	m.Push(value.NewFloat(f(x)))
	return nil
}

func sinOp(m value.Machine) error { return trig1(m, "Sin", math.Sin) }
func cosOp(m value.Machine) error { return trig1(m, "Cos", math.Cos) }
func tanOp(m value.Machine) error { return trig1(m, "Tan", math.Tan) }

// meanOp pops a List and pushes the arithmetic mean of its elements
// (core.py's builtins.py statistics section, `Av`/`Mean`).
func meanOp(m value.Machine) error {
	l, err := popList(m, "Mean")
	if err != nil {
		return err
	}
	if len(l.Items) == 0 {
		return berrors.Valuef("Mean: empty list")
	}
	sum := 0.0
	for _, it := range l.Items {
		f, err := value.Convert(it, value.RankFloat)
		if err != nil {
			return err
		}
		sum += f.(*value.Float).V
	}
	m.Push(value.NewFloat(sum / float64(len(l.Items))).Simplify())
	return nil
}

// stdevOp pops a List and pushes its (population) standard deviation.
func stdevOp(m value.Machine) error {
	l, err := popList(m, "Stdev")
	if err != nil {
		return err
	}
	if len(l.Items) == 0 {
		return berrors.Valuef("Stdev: empty list")
	}
	floats := make([]float64, len(l.Items))
	sum := 0.0
	for i, it := range l.Items {
		f, err := value.Convert(it, value.RankFloat)
		if err != nil {
			return err
		}
		floats[i] = f.(*value.Float).V
		sum += floats[i]
	}
	mean := sum / float64(len(floats))
	variance := 0.0
	for _, f := range floats {
		d := f - mean
		variance += d * d
	}
	variance /= float64(len(floats))
	m.Push(value.NewFloat(math.Sqrt(variance)))
	return nil
}
