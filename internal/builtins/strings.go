package builtins

import (
	"strings"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// stringBuiltins groups named string helpers from
// original_source/birdiescript/builtins.py's string section; the
// overloaded operators already cover concatenation (+), repetition (*),
// and chunking (/ %), so this is the remainder that needs its own name.
func stringBuiltins() []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(upper, "Uc", "Upper"),
		value.NewBuiltin(lower, "Lc", "Lower"),
		value.NewBuiltin(trim, "Tr", "Trim"),
		value.NewBuiltin(ltrim, "Tl", "Ltrim"),
		value.NewBuiltin(rtrim, "Tp", "Rtrim"),
		value.NewBuiltin(findsub, "Fs", "Findsub"),
		value.NewBuiltin(contains, "Ct", "Contains"),
	}
}

func popStr(m value.Machine, op string) (*value.Str, error) {
	v, err := m.Pop()
	if err != nil {
		return nil, err
	}
	s, ok := v.(*value.Str)
	if !ok {
		return nil, berrors.Type(op, v.Rank().String())
	}
	return s, nil
}

func upper(m value.Machine) error {
	s, err := popStr(m, "Upper")
	if err != nil {
		return err
	}
	m.Push(value.NewStr(strings.ToUpper(s.V)))
	return nil
}

func lower(m value.Machine) error {
	s, err := popStr(m, "Lower")
	if err != nil {
		return err
	}
	m.Push(value.NewStr(strings.ToLower(s.V)))
	return nil
}

func trim(m value.Machine) error {
	s, err := popStr(m, "Trim")
	if err != nil {
		return err
	}
	m.Push(value.NewStr(strings.TrimSpace(s.V)))
	return nil
}

func ltrim(m value.Machine) error {
	s, err := popStr(m, "Ltrim")
	if err != nil {
		return err
	}
	m.Push(value.NewStr(strings.TrimLeft(s.V, " \t\r\n")))
	return nil
}

func rtrim(m value.Machine) error {
	s, err := popStr(m, "Rtrim")
	if err != nil {
		return err
	}
	m.Push(value.NewStr(strings.TrimRight(s.V, " \t\r\n")))
	return nil
}

// findsub implements `Fs`/`Findsub` (spec §9 Open Question (c): the
// second isinstance(s, BStr) branch in the original is redirected here to
// Regex, so Str searches a literal substring and Regex searches its
// pattern text) — pops (s, v), pushes the index of v within s or -1.
// Grounded on original_source/birdiescript/builtins.py's builtin_count.
func findsub(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	s, err := m.Pop()
	if err != nil {
		return err
	}
	switch x := s.(type) {
	case *value.List:
		needle, err := value.Convert(v, value.RankList)
		if err != nil {
			return err
		}
		nv := needle.(*value.List).Items
		m.Push(value.NewInt(int64(indexOfSlice(x.Items, nv))))
		return nil
	case *value.Str:
		needle, err := value.Convert(v, value.RankStr)
		if err != nil {
			return err
		}
		m.Push(value.NewInt(int64(strings.Index(x.V, needle.(*value.Str).V))))
		return nil
	case *value.Regex:
		needle, err := value.Convert(v, value.RankStr)
		if err != nil {
			return err
		}
		m.Push(value.NewInt(int64(strings.Index(x.Pattern, needle.(*value.Str).V))))
		return nil
	}
	return berrors.Type("Findsub", s.Rank().String())
}

func indexOfSlice(haystack, needle []value.Value) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if !value.Equal(haystack[i+j], needle[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// contains reports (as 0/1 Int, keeping with Birdiescript's integer
// booleans) whether v occurs within s.
func contains(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	s, err := m.Pop()
	if err != nil {
		return err
	}
	switch x := s.(type) {
	case *value.Str:
		needle, err := value.Convert(v, value.RankStr)
		if err != nil {
			return err
		}
		m.Push(boolInt(strings.Contains(x.V, needle.(*value.Str).V)))
		return nil
	case *value.List:
		needle, err := value.Convert(v, value.RankList)
		if err != nil {
			return err
		}
		m.Push(boolInt(indexOfSlice(x.Items, needle.(*value.List).Items) >= 0))
		return nil
	}
	return berrors.Type("Contains", s.Rank().String())
}

func boolInt(b bool) *value.Int {
	if b {
		return value.NewInt(1)
	}
	return value.NewInt(0)
}
