package builtins

import (
	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// ordinalBuiltins groups the named ordinal/character conversions
// (spec §5: "ordinal conversion (Chr/Ord-style via (/)/# unary overloads
// plus Asc/Chr named builtins)"). Grounded on the teacher's
// internal/builtins/ordinal.go (Ord/Chr/Succ/Pred registration shape) and
// original_source/birdiescript/builtins.py's builtin_asc/builtin_chr.
func ordinalBuiltins() []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(asc, "Asc"),
		value.NewBuiltin(chr, "Chr"),
		value.NewBuiltin(succ, "Succ"),
		value.NewBuiltin(pred, "Pred"),
	}
}

// asc pops a one-character Str and pushes its Unicode code point as an
// Int (core.py builtin_asc; teacher ordinal.go's Ord, generalized from
// DWScript's enum/bool/int/char union to Birdiescript's Str-only case
// since Ord's other cases are already covered by the "#" unary overload).
func asc(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	s, ok := v.(*value.Str)
	if !ok {
		return berrors.Type("Asc", v.Rank().String())
	}
	runes := []rune(s.V)
	if len(runes) == 0 {
		return berrors.Valuef("Asc: empty string")
	}
	m.Push(value.NewInt(int64(runes[0])))
	return nil
}

// chr pops an Int code point and pushes the one-rune Str it denotes
// (core.py builtin_chr's inverse of builtin_asc).
func chr(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	n, ok := v.(*value.Int)
	if !ok {
		return berrors.Type("Chr", v.Rank().String())
	}
	m.Push(value.NewStr(string(rune(n.Int64()))))
	return nil
}

// succ/pred step an Int by one in either direction, mirroring the
// teacher's Succ/Pred ordinal pair generalized to Birdiescript's single
// arbitrary-precision integer type instead of DWScript's enum/char/int
// union.
func succ(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	n, ok := v.(*value.Int)
	if !ok {
		return berrors.Type("Succ", v.Rank().String())
	}
	m.Push(n.Add(value.NewInt(1)))
	return nil
}

func pred(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	n, ok := v.(*value.Int)
	if !ok {
		return berrors.Type("Pred", v.Rank().String())
	}
	m.Push(n.Sub(value.NewInt(1)))
	return nil
}
