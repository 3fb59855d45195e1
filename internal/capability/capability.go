// Package capability defines the narrow traits Birdiescript's core calls
// to reach the outside world: file/network I/O, the wall clock and a
// monotonic source, a seedable random generator, and the foreign-code
// escape hatch (spec §6, §9). The core never talks to os/net/exec/rand
// directly — every built-in that needs one of these takes it as a
// collaborator, so interp/ops/builtins stay testable against the fake/
// implementation and the real backend lives entirely in native/.
//
// Grounded on spec §1's framing of these as "external collaborators" and
// §9's "specify as a capability trait" design note; there is no teacher
// analogue (DWScript's host interop is compiled into its interpreter
// package directly) so the shape here is original to this expansion,
// built narrow on purpose: one method group per spec §6 capability.
package capability

import "time"

// IO is the file/network/stdio capability spec §6 calls for minimally:
// "read/write byte-strings and text files with encoding; read a URL;
// invoke a shell command" plus the stdin read primitives the builtin
// catalogue's `>i`/`>c`/`>n`/`>o`/`>w`/`>t` family needs.
type IO interface {
	ReadFile(path, encoding string) (string, error)
	WriteFile(path, encoding, data string) error
	AppendFile(path, encoding, data string) error
	ReadURL(url string) (string, error)
	RunCommand(cmd string) (stdout string, exitCode int, err error)

	// ReadChar reads one rune from stdin; ok is false at EOF (spec §9
	// design note: "readchar of an empty stream returns the sentinel
	// Int(-1) rather than an empty Str" — the builtin, not this trait,
	// owns that sentinel translation).
	ReadChar() (r rune, ok bool, err error)
	ReadLine() (line string, ok bool, err error)
	ReadAll() (string, error)
	ReadUntil(delim byte) (s string, ok bool, err error)

	Print(s string)
	Getenv(name string) (string, bool)
}

// Clock is the wall-clock/monotonic capability spec §6 calls for.
type Clock interface {
	Now() time.Time
	Monotonic() time.Duration
}

// Random is a seedable random-number source (spec §6: "random-number
// generator with seed").
type Random interface {
	Seed(seed int64)
	Int63() int64
	Float64() float64
}

// Foreign is the embedded foreign-code escape hatch (spec §1: explicitly
// out of core scope; spec §9: "exec(code, globals_id, locals_id,
// stack_mirror)"). StackMirror is the set of primitive-converted values
// the core marshals per the Convert table (spec §4.3) before the call and
// receives back afterward; GlobalsID/LocalsID are opaque handles the
// capability owns (spec §5: "shared across the whole script" /
// "per Context").
type Foreign interface {
	Exec(code string, globalsID, localsID string, stackMirror []any) ([]any, error)
}
