package ops

import (
	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// If implements "I" (spec §4.6): pops else-block, then-block, condition
// (condition is the deepest of the three), invokes one.
func If(m value.Machine) error {
	elseBlk, err := m.Pop()
	if err != nil {
		return err
	}
	thenBlk, err := m.Pop()
	if err != nil {
		return err
	}
	cond, err := m.Pop()
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return m.Apply(thenBlk)
	}
	return m.Apply(elseBlk)
}

// While implements "W": pops body, cond; invokes cond, and while the
// popped result is truthy and the loop hasn't been broken, invokes body
// then cond again (spec §4.6).
func While(m value.Machine) error {
	body, err := m.Pop()
	if err != nil {
		return err
	}
	cond, err := m.Pop()
	if err != nil {
		return err
	}
	for {
		stop, err := m.LoopBody(cond)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		if !r.Truthy() {
			return nil
		}
		stop, err = m.LoopBody(body)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// WhileUntil implements "Wt": pops body, cond; the mirror of "W" that
// loops while cond is falsy instead of truthy.
func WhileUntil(m value.Machine) error {
	body, err := m.Pop()
	if err != nil {
		return err
	}
	cond, err := m.Pop()
	if err != nil {
		return err
	}
	for {
		stop, err := m.LoopBody(cond)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		if r.Truthy() {
			return nil
		}
		stop, err = m.LoopBody(body)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// DoWhile implements "D": always run body once, then test cond; loops
// while truthy.
func DoWhile(m value.Machine) error {
	return doLoop(m, true)
}

// DoUntil implements "Du": always run body once, then test cond; loops
// while falsy.
func DoUntil(m value.Machine) error {
	return doLoop(m, false)
}

func doLoop(m value.Machine, while bool) error {
	body, err := m.Pop()
	if err != nil {
		return err
	}
	cond, err := m.Pop()
	if err != nil {
		return err
	}
	for {
		stop, err := m.LoopBody(body)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		stop, err = m.LoopBody(cond)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		if r.Truthy() != while {
			return nil
		}
	}
}

// Break implements "Bk": pops n, breaks out of n enclosing loops.
func Break(m value.Machine) error {
	n, err := m.Pop()
	if err != nil {
		return err
	}
	i, ok := n.(*value.Int)
	if !ok {
		return errNotInt("Bk")
	}
	m.BreakLoops(i.Int64())
	return nil
}

// BreakOne implements "Br" ≡ "1 Bk".
func BreakOne(m value.Machine) error {
	m.BreakLoops(1)
	return nil
}

// Exit implements "Ex": unconditionally unwind to top.
func Exit(m value.Machine) error {
	m.ExitScript()
	return nil
}

// ReturnOp implements "Rt": unwind to the nearest nonlocal-sentinel
// ancestor.
func ReturnOp(m value.Machine) error {
	m.Return()
	return nil
}

// Goto implements "Go": pops n, jumps the current context's own cursor.
func Goto(m value.Machine) error {
	n, err := m.Pop()
	if err != nil {
		return err
	}
	i, ok := n.(*value.Int)
	if !ok {
		return errNotInt("Go")
	}
	m.Goto(i.Int64())
	return nil
}

// Label implements "Ll": pushes the current context's 1-based cursor.
func Label(m value.Machine) error {
	m.Push(value.NewInt(m.Label()))
	return nil
}

func errNotInt(op string) error {
	return berrors.Type(op, "non-Int")
}
