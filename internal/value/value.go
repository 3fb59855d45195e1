// Package value implements the Birdiescript value lattice: the tagged sum
// of runtime values, their total rank order, and the coercion/conversion,
// equality, ordering, and textual-form operations spec.md §3–§4.3 define
// over it.
package value

import "github.com/birdiescript/birdie/internal/token"

// Rank is the total order over value kinds that drives Coerce and Convert
// (spec §3: "Rank is a total order used for commonize").
type Rank int

const (
	RankInt Rank = iota
	RankFloat
	RankComplex
	RankList
	RankStr
	RankRegex
	RankBlock
	RankBuiltin
)

func (r Rank) String() string {
	switch r {
	case RankInt:
		return "Int"
	case RankFloat:
		return "Float"
	case RankComplex:
		return "Complex"
	case RankList:
		return "List"
	case RankStr:
		return "Str"
	case RankRegex:
		return "Regex"
	case RankBlock:
		return "Block"
	case RankBuiltin:
		return "Builtin"
	default:
		return "?"
	}
}

// Value is satisfied by every Birdiescript runtime value: Int, Float,
// Complex, List, Str, Regex, Block, Builtin.
type Value interface {
	// Rank returns this value's position in the rank order.
	Rank() Rank
	// String returns the value's bare textual form (used by string
	// conversion and by the "%s"-style display of the final stack).
	String() string
	// Repr returns the value's literal form: re-lexing it reproduces an
	// equal value (used for debug/REPL display and for Convert-to-Block).
	Repr() string
	// Simplify returns the simplest value mathematically equal to this
	// one; idempotent (spec invariant: simplify(simplify(x)) == simplify(x)).
	Simplify() Value
	// Tokenize returns a token sequence that, when executed, pushes a
	// value equal to this one (used by List/Str/Regex/Block conversion
	// and by the unary-function token-rewriting operators in ops).
	Tokenize() []token.Token
	// Truthy reports whether this value counts as true for I/W/Du and the
	// other conditional operators (spec §4.6: zero/empty is false).
	Truthy() bool
}

// NumGroup reports whether v belongs to the Num group (Int/Float/Complex).
func NumGroup(v Value) bool {
	switch v.Rank() {
	case RankInt, RankFloat, RankComplex:
		return true
	default:
		return false
	}
}

// SeqGroup reports whether v belongs to the Seq group (List/Str/Regex).
func SeqGroup(v Value) bool {
	switch v.Rank() {
	case RankList, RankStr, RankRegex:
		return true
	default:
		return false
	}
}

// FuncGroup reports whether v belongs to the Func group (Block/Builtin).
func FuncGroup(v Value) bool {
	switch v.Rank() {
	case RankBlock, RankBuiltin:
		return true
	default:
		return false
	}
}

// CharsGroup reports whether v belongs to the Chars subgroup (Str/Regex).
func CharsGroup(v Value) bool {
	switch v.Rank() {
	case RankStr, RankRegex:
		return true
	default:
		return false
	}
}

// Scope is a single activation's name bindings plus a link to the scope it
// was captured from. A Block's captured scope is a *Scope that the Context
// which created the Block continues to own (spec §3 "Lifecycles": "A
// Block owns a captured scope map"); the interp package supplies the
// tier-aware define/undefine/dereference walk over a chain of *Scope.
type Scope struct {
	Vars   map[string]Value
	Parent *Scope
}

// NewScope allocates an empty scope linked to parent (nil for the root).
func NewScope(parent *Scope) *Scope {
	return &Scope{Vars: make(map[string]Value), Parent: parent}
}
