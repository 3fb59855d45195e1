package value

import (
	"strings"

	"github.com/birdiescript/birdie/internal/token"
)

// Machine is the slice of interp.Context a Builtin's Handler needs: enough
// to run the full Operator Table and control-flow operators without the
// value package importing interp (which imports value for its operand
// stack and value lattice). interp.Context satisfies this structurally —
// no explicit binding required.
type Machine interface {
	// Stack access (spec §4.4).
	Push(Value)
	Pop() (Value, error)
	Peek() (Value, error)
	PeekAt(k int) (Value, error)
	Depth() int
	Queue(Value)
	Dequeue() (Value, error)
	PopTill(n int) []Value
	Items() []Value
	ReplaceAll([]Value)

	// List marks (spec §4.7).
	PushListMark()
	PopListMark() (int, bool)

	// Name resolution (spec §4.5).
	Define(name string, tier token.Tier, v Value)
	Undefine(name string, tier token.Tier)
	Dereference(name string, tier token.Tier) (Value, error)

	// Invocation (spec §4.4 Apply, §4.6 control-flow operators).
	Apply(v Value) error
	LoopBody(v Value) (stop bool, err error)
	BreakLoops(n int64)
	ExitScript()
	Return()
	Goto(n int64)
	Label() int64
}

// Handler implements one builtin's behavior against a Machine.
type Handler func(m Machine) error

// Builtin is a named, host-implemented function (spec §3: rank 7). A
// single Builtin may answer to more than one name (core.py: BBuiltin
// accepts *names).
type Builtin struct {
	Names   []string
	Handler Handler
	Doc     string
}

func NewBuiltin(handler Handler, names ...string) *Builtin {
	return &Builtin{Names: names, Handler: handler}
}

func (b *Builtin) Rank() Rank { return RankBuiltin }

func (b *Builtin) String() string { return "<" + strings.Join(b.Names, "|") + ">" }

func (b *Builtin) Repr() string { return b.String() }

func (b *Builtin) Simplify() Value { return b }

// Tokenize emits the builtin's primary name as a call token; re-executing
// it dispatches back to this same Handler via the global builtin table.
func (b *Builtin) Tokenize() []token.Token {
	if len(b.Names) == 0 {
		return nil
	}
	return []token.Token{{Kind: token.Name, Text: b.Names[0]}}
}

func (b *Builtin) Truthy() bool { return true }
