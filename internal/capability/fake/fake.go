// Package fake is a deterministic test double for internal/capability,
// used by interp/ops/builtins tests that exercise capability-backed
// builtins (file I/O, the clock, randomness, reads from stdin) without
// touching the real OS.
package fake

import (
	"errors"
	"strings"
	"time"
)

// IO is an in-memory capability.IO: files live in a map, stdin is a
// pre-loaded string consumed character by character, and Print appends to
// a buffer the test can inspect.
type IO struct {
	Files  map[string]string
	Stdin  string
	stdout strings.Builder
	Env    map[string]string

	pos int
}

func NewIO(stdin string) *IO {
	return &IO{Files: make(map[string]string), Stdin: stdin, Env: make(map[string]string)}
}

func (f *IO) ReadFile(path, _ string) (string, error) {
	data, ok := f.Files[path]
	if !ok {
		return "", errors.New("no such file: " + path)
	}
	return data, nil
}

func (f *IO) WriteFile(path, _, data string) error {
	f.Files[path] = data
	return nil
}

func (f *IO) AppendFile(path, _, data string) error {
	f.Files[path] += data
	return nil
}

func (f *IO) ReadURL(url string) (string, error) {
	data, ok := f.Files["url:"+url]
	if !ok {
		return "", errors.New("no such url: " + url)
	}
	return data, nil
}

func (f *IO) RunCommand(cmd string) (string, int, error) {
	if out, ok := f.Files["cmd:"+cmd]; ok {
		return out, 0, nil
	}
	return "", 127, nil
}

func (f *IO) ReadChar() (rune, bool, error) {
	if f.pos >= len(f.Stdin) {
		return 0, false, nil
	}
	runes := []rune(f.Stdin[f.pos:])
	r := runes[0]
	f.pos += len(string(r))
	return r, true, nil
}

func (f *IO) ReadLine() (string, bool, error) {
	return f.ReadUntil('\n')
}

func (f *IO) ReadAll() (string, error) {
	rest := f.Stdin[f.pos:]
	f.pos = len(f.Stdin)
	return rest, nil
}

func (f *IO) ReadUntil(delim byte) (string, bool, error) {
	if f.pos >= len(f.Stdin) {
		return "", false, nil
	}
	rest := f.Stdin[f.pos:]
	if idx := strings.IndexByte(rest, delim); idx >= 0 {
		f.pos += idx + 1
		return rest[:idx], true, nil
	}
	f.pos = len(f.Stdin)
	return rest, true, nil
}

func (f *IO) Print(s string) { f.stdout.WriteString(s) }

func (f *IO) Output() string { return f.stdout.String() }

func (f *IO) Getenv(name string) (string, bool) {
	v, ok := f.Env[name]
	return v, ok
}

// Clock is a frozen capability.Clock so tests get reproducible output.
type Clock struct {
	At    time.Time
	start time.Duration
}

func NewClock(at time.Time) *Clock { return &Clock{At: at} }

func (c *Clock) Now() time.Time { return c.At }

func (c *Clock) Monotonic() time.Duration { return c.start }

// Random is a fixed-sequence capability.Random: Int63/Float64 cycle
// through Values deterministically instead of drawing real entropy.
type Random struct {
	Values []int64
	i      int
}

func NewRandom(values ...int64) *Random { return &Random{Values: values} }

func (r *Random) Seed(seed int64) { r.i = 0 }

func (r *Random) Int63() int64 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.i%len(r.Values)]
	r.i++
	return v
}

func (r *Random) Float64() float64 {
	v := r.Int63()
	return float64(v%1000) / 1000.0
}

// Foreign records every Exec call instead of running anything.
type Foreign struct {
	Calls []string
}

func (f *Foreign) Exec(code, globalsID, localsID string, stackMirror []any) ([]any, error) {
	f.Calls = append(f.Calls, code)
	return stackMirror, nil
}
