// Package builtins registers Birdiescript's "bulk catalogue" operators
// against the shared builtins table: named string/list helpers, math and
// trig functions, a statistics sampler, date/time formatting, random
// distributions, ordinal conversion, and the capability-backed stdio/file
// builtins. Spec §1 treats the full catalogue as "data populating a
// table and add[ing] no design weight beyond registering a name against a
// handler" — this package registers a representative slice across every
// category the original builtins.py covers rather than all ~250 entries.
//
// Grounded on the teacher's internal/builtins (ordinal.go,
// datetime_format.go, datetime_calc.go: the registration-table shape and
// per-function doc-comment density) adapted from the teacher's
// func(ctx Context, args []Value) Value signature to direct stack
// pop/push via value.Machine, since Birdiescript builtins read operands
// off the Context stack (spec §4.6) rather than an argument slice passed
// in by a caller. Per-function behavior is grounded on
// original_source/birdiescript/builtins.py's matching builtin_* function.
package builtins

import (
	"github.com/birdiescript/birdie/internal/capability"
	"github.com/birdiescript/birdie/internal/value"
)

// All returns every registration this package contributes. io/clock/rng
// back the capability-backed entries (file I/O, stdin reads, the date/
// time and random families); foreign is accepted for symmetry with the
// other capability traits even though no builtin in this representative
// slice invokes it (the foreign-code escape hatch itself is out of core
// scope, spec §1).
func All(io capability.IO, clock capability.Clock, rng capability.Random, foreign capability.Foreign) []*value.Builtin {
	var all []*value.Builtin
	all = append(all, ordinalBuiltins()...)
	all = append(all, stringBuiltins()...)
	all = append(all, listBuiltins()...)
	all = append(all, mathBuiltins()...)
	all = append(all, complexBuiltins()...)
	all = append(all, statsBuiltins()...)
	all = append(all, datetimeBuiltins(clock)...)
	all = append(all, randomBuiltins(rng)...)
	all = append(all, ioBuiltins(io)...)
	return all
}
