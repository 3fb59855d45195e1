package builtins

import (
	"time"

	"github.com/birdiescript/birdie/internal/capability"
	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// datetimeBuiltins groups the date/time family spec §5 calls out
// ("date/time formatting"), grounded on
// original_source/birdiescript/builtins.py's Tn/Tc/Ti/Td/Tt/Ck section: a
// representative slice (current epoch time, elapsed monotonic clock, and
// the two textual conversions) rather than the original's full
// calendar-tuple round-trip family. clock is the capability.Clock
// collaborator (spec §6) so these builtins never call time.Now directly.
func datetimeBuiltins(clock capability.Clock) []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(nowOp(clock), "Tn", "Now"),
		value.NewBuiltin(clockOp(clock), "Ck", "Clock"),
		value.NewBuiltin(ctimeOp(clock), "Tc", "Ctime"),
		value.NewBuiltin(isotimeOp(clock), "Ti", "Isotime"),
	}
}

// nowOp pushes the current epoch time in seconds (core.py builtin_now).
func nowOp(clock capability.Clock) value.Handler {
	return func(m value.Machine) error {
		m.Push(value.NewFloat(float64(clock.Now().UnixNano()) / 1e9))
		return nil
	}
}

// clockOp pushes elapsed monotonic seconds since the process started
// (core.py builtin_clock's time.clock(), generalized to Go's monotonic
// source since Unix CPU-time and Windows wall-clock elapsed time are both
// "time since some fixed reference" for this builtin's purposes).
func clockOp(clock capability.Clock) value.Handler {
	return func(m value.Machine) error {
		m.Push(value.NewFloat(clock.Monotonic().Seconds()))
		return nil
	}
}

// ctimeOp pops an epoch time (Num) and pushes its UTC rendering in Go's
// time.UnixDate layout, e.g. "Thu Jan  1 00:00:00 UTC 1970" (core.py
// builtin_ctime's BReal case).
func ctimeOp(clock capability.Clock) value.Handler {
	return func(m value.Machine) error {
		return formatEpoch(m, "Ctime", time.UnixDate)
	}
}

// isotimeOp pops an epoch time and pushes its `%Y-%m-%dT%H:%M:%S`
// rendering (core.py builtin_isotime's BReal case).
func isotimeOp(clock capability.Clock) value.Handler {
	return func(m value.Machine) error {
		return formatEpoch(m, "Isotime", "2006-01-02T15:04:05")
	}
}

func formatEpoch(m value.Machine, op, layout string) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	f, err := value.Convert(v, value.RankFloat)
	if err != nil {
		return berrors.Type(op, v.Rank().String())
	}
	secs := f.(*value.Float).V
	t := time.Unix(int64(secs), 0).UTC()
	m.Push(value.NewStr(t.Format(layout)))
	return nil
}
