package builtins

import (
	"strings"

	"github.com/birdiescript/birdie/internal/capability"
	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// ioBuiltins groups the capability-backed stdio/file family spec §6
// names ("read/write byte-strings and text files with encoding; read a
// URL; invoke a shell command"), grounded on
// original_source/birdiescript/builtins.py's `>i`/`>c`/`>n`/`>o`/`>w`/`>t`/
// `>f`/`<f`/`<a`/`>u`/`Pr`/`%g` section. io is the capability.IO collaborator (spec §6)
// so these builtins never touch os/net/exec directly.
func ioBuiltins(io capability.IO) []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(readAllOp(io), ">i", "Read"),
		value.NewBuiltin(readCharOp(io), ">c", "Readchar"),
		value.NewBuiltin(readLineOp(io), ">n", "Readline"),
		value.NewBuiltin(readStringOp(io), ">o", "Readstring"),
		value.NewBuiltin(readWordOp(io), ">w", "Readword"),
		value.NewBuiltin(readUntilOp(io), ">t", "Readupto"),
		value.NewBuiltin(readFileOp(io), ">f", "Readfile"),
		value.NewBuiltin(writeFileOp(io), "<f", "Writefile"),
		value.NewBuiltin(appendFileOp(io), "<a", "Appendfile"),
		value.NewBuiltin(readURLOp(io), ">u", "Readurl"),
		value.NewBuiltin(printOp(io), "Pr", "Print"),
		value.NewBuiltin(getenvOp(io), "%g", "Getenv"),
	}
}

// readAllOp reads everything remaining on stdin (core.py builtin_read).
func readAllOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		s, err := io.ReadAll()
		if err != nil {
			return err
		}
		m.Push(value.NewStr(s))
		return nil
	}
}

// readCharOp reads one rune from stdin, pushing the sentinel Int(-1) at
// EOF instead of an empty Str (spec §9 design note: "Readchar of an
// empty stream returns the sentinel Int(-1)").
func readCharOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		r, ok, err := io.ReadChar()
		if err != nil {
			return err
		}
		if !ok {
			m.Push(value.NewInt(-1))
			return nil
		}
		m.Push(value.NewStr(string(r)))
		return nil
	}
}

func readLineOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		line, _, err := io.ReadLine()
		if err != nil {
			return err
		}
		m.Push(value.NewStr(line))
		return nil
	}
}

// readStringOp reads up to a NUL byte (core.py builtin_readstring).
func readStringOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		s, _, err := io.ReadUntil(0)
		if err != nil {
			return err
		}
		m.Push(value.NewStr(s))
		return nil
	}
}

// readWordOp reads up to the next whitespace rune (core.py
// builtin_readtoken), built from ReadChar since capability.IO has no
// whitespace-predicate primitive of its own.
func readWordOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		var b strings.Builder
		for {
			r, ok, err := io.ReadChar()
			if err != nil {
				return err
			}
			if !ok || isSpace(r) {
				break
			}
			b.WriteRune(r)
		}
		m.Push(value.NewStr(b.String()))
		return nil
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// readUntilOp pops a delimiter set (Int(-1) meaning "read to EOF", or a
// Seq of stop characters) and reads up to the first one (core.py
// builtin_readupto).
func readUntilOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		v, err := m.Pop()
		if err != nil {
			return err
		}
		if n, ok := v.(*value.Int); ok && n.Int64() == -1 {
			s, err := io.ReadAll()
			if err != nil {
				return err
			}
			m.Push(value.NewStr(s))
			return nil
		}
		s, ok := v.(*value.Str)
		if !ok {
			return berrors.Type("Readupto", v.Rank().String())
		}
		stop := map[rune]bool{}
		for _, r := range s.V {
			stop[r] = true
		}
		var b strings.Builder
		for {
			r, ok, err := io.ReadChar()
			if err != nil {
				return err
			}
			if !ok || stop[r] {
				break
			}
			b.WriteRune(r)
		}
		m.Push(value.NewStr(b.String()))
		return nil
	}
}

// readFileOp pops a filename and pushes its contents, or a negative Int
// error code on failure (core.py builtin_readfile).
func readFileOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		name, err := popStr(m, "Readfile")
		if err != nil {
			return err
		}
		data, rerr := io.ReadFile(name.V, "")
		if rerr != nil {
			m.Push(value.NewInt(-1))
			return nil
		}
		m.Push(value.NewStr(data))
		return nil
	}
}

// writeFileOp pops (name, data) and writes data to the named file,
// pushing 1 on success or 0 on failure.
func writeFileOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		data, err := popStr(m, "Writefile")
		if err != nil {
			return err
		}
		name, err := popStr(m, "Writefile")
		if err != nil {
			return err
		}
		if werr := io.WriteFile(name.V, "", data.V); werr != nil {
			m.Push(value.NewInt(0))
			return nil
		}
		m.Push(value.NewInt(1))
		return nil
	}
}

func appendFileOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		data, err := popStr(m, "Appendfile")
		if err != nil {
			return err
		}
		name, err := popStr(m, "Appendfile")
		if err != nil {
			return err
		}
		if werr := io.AppendFile(name.V, "", data.V); werr != nil {
			m.Push(value.NewInt(0))
			return nil
		}
		m.Push(value.NewInt(1))
		return nil
	}
}

// readURLOp pops a URL and pushes its response body, or -1 on failure
// (core.py builtin_readurl).
func readURLOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		u, err := popStr(m, "Readurl")
		if err != nil {
			return err
		}
		body, rerr := io.ReadURL(u.V)
		if rerr != nil {
			m.Push(value.NewInt(-1))
			return nil
		}
		m.Push(value.NewStr(body))
		return nil
	}
}

// printOp pops a value and writes its String() form without consuming
// the rest of the stack (core.py's implicit print-on-exit is the driver's
// job; Print is the explicit named builtin for mid-script output).
func printOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		v, err := m.Pop()
		if err != nil {
			return err
		}
		io.Print(v.String())
		return nil
	}
}

// getenvOp pops a variable name and pushes its value, or Int(0) if unset
// (core.py builtin_getenv).
func getenvOp(io capability.IO) value.Handler {
	return func(m value.Machine) error {
		name, err := popStr(m, "Getenv")
		if err != nil {
			return err
		}
		if v, ok := io.Getenv(name.V); ok {
			m.Push(value.NewStr(v))
			return nil
		}
		m.Push(value.NewInt(0))
		return nil
	}
}
