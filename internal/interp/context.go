// Package interp implements Birdiescript's execution context: the
// non-recursive token dispatch loop, the three-tier scope resolver, and
// block/builtin invocation.
//
// Grounded on the teacher's internal/bytecode/vm.go + vm_exec.go (operand
// stack, frame chain, `for { switch }` dispatch loop shape) and on
// core.py's BContext (the token-stream analogue of that same loop, plus
// its define/undefine/dereference scope walk and subcontext/inherit_scope
// block-invocation machinery).
package interp

import (
	"fmt"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/token"
	"github.com/birdiescript/birdie/internal/value"
)

// BreakState is the three-way "broken" flag from spec §4.4: a token loop
// can run to completion, stop locally (Break), or unwind every enclosing
// loop and block up to top level (Exited).
type BreakState int

const (
	NotBroken BreakState = iota
	Broken
	Exited
)

// BuiltinTable is the process-wide name -> Builtin map the resolver
// consults last (spec §4.5: "a single process-wide map populated at
// startup").
type BuiltinTable map[string]*value.Builtin

// Register adds a Builtin under every one of its names, matching
// core.py's BBuiltin constructor which refuses to redefine an existing
// entry.
func (t BuiltinTable) Register(b *value.Builtin) error {
	for _, name := range b.Names {
		if _, exists := t[name]; exists {
			return fmt.Errorf("cannot redefine builtin: %q", name)
		}
	}
	for _, name := range b.Names {
		t[name] = b
	}
	return nil
}

// Context is one activation of the dispatch loop: its own token vector,
// cursor, scope, and a link to the lexical parent it was spawned from
// (spec §4.4).
type Context struct {
	Parent   *Context
	Builtins BuiltinTable

	Script string
	Tokens []token.Token
	Cursor int

	Stack *Stack

	// Pending-block state: while Nesting > 0 the dispatch loop is
	// buffering tokens for an in-progress { ... } rather than executing
	// them (spec §4.4).
	BlockTokens []token.Token
	Nesting     int
	BlockScoped bool

	Scope  map[string]value.Value
	Scoped bool

	Broken  BreakState
	Looping bool

	Encoding string
	Debug    bool
	Level    int
	MaxDepth int // recursion budget from -m; 0 means unbounded

	// Foreign-code namespaces (spec §6): kept as opaque maps since their
	// contents are owned by whatever capability backs foreign-code exec.
	GlobalForeignNS map[string]any
	LocalForeignNS  map[string]any
}

// NewContext creates a root context over script, with its own empty scope
// and a fresh operand stack.
func NewContext(script string, builtins BuiltinTable, encoding string) *Context {
	return &Context{
		Builtins:        builtins,
		Script:          script,
		Stack:           newStack(),
		Scope:           make(map[string]value.Value),
		Scoped:          true,
		BlockScoped:     true,
		Encoding:        encoding,
		GlobalForeignNS: make(map[string]any),
		LocalForeignNS:  make(map[string]any),
	}
}

// SubContext creates a child context that inherits encoding, the global
// foreign-code namespace, the debug flag, and an incremented nesting
// level (spec §4.4: "create a child Context that inherits encoding,
// global foreign-code namespace, debug flag, and an incremented nesting
// level").
func (c *Context) SubContext(label string) *Context {
	child := &Context{
		Parent:          c,
		Builtins:        c.Builtins,
		Script:          label,
		Stack:           newStack(),
		Scope:           make(map[string]value.Value),
		Scoped:          true,
		BlockScoped:     true,
		Encoding:        c.Encoding,
		Debug:           c.Debug,
		Level:           c.Level + 1,
		MaxDepth:        c.MaxDepth,
		GlobalForeignNS: c.GlobalForeignNS,
		LocalForeignNS:  make(map[string]any),
	}
	return child
}

// overDepth reports whether this context has exceeded the -m recursion
// budget (spec §6: "-m DEPTH (recursion budget)"); 0 means unbounded.
func (c *Context) overDepth() bool {
	return c.MaxDepth > 0 && c.Level > c.MaxDepth
}

// InheritScope makes this context share scope (by reference) with an
// ancestor's captured scope instead of keeping its own fresh map — used
// when applying a Block (spec §3 "Lifecycles"; core.py:
// BContext.inherit_scope).
func (c *Context) InheritScope(scope map[string]value.Value) {
	c.Scoped = false
	c.Scope = scope
}

// Push and Pop delegate to the shared Stack (spec §4.4).
func (c *Context) Push(v value.Value) { c.Stack.Push(v) }
func (c *Context) Pop() (value.Value, error) {
	return c.Stack.Pop()
}
func (c *Context) Peek() (value.Value, error)        { return c.Stack.Peek(-1) }
func (c *Context) PeekAt(k int) (value.Value, error) { return c.Stack.Peek(k) }
func (c *Context) Depth() int                        { return c.Stack.Depth() }
func (c *Context) Queue(v value.Value)               { c.Stack.Queue(v) }
func (c *Context) Dequeue() (value.Value, error)     { return c.Stack.Dequeue() }
func (c *Context) PopTill(n int) []value.Value       { return c.Stack.PopTill(n) }
func (c *Context) Items() []value.Value              { return c.Stack.Items() }
func (c *Context) ReplaceAll(items []value.Value)    { c.Stack.ReplaceAll(items) }

// PushListMark and PopListMark implement spec §4.7's `[`/`]` delimiters.
func (c *Context) PushListMark()            { c.Stack.PushListMark() }
func (c *Context) PopListMark() (int, bool) { return c.Stack.PopListMark() }

// LoopBody invokes v as one step of a loop body (spec §4.6 W/D/Du): a
// Block runs in a context flagged Looping so BreakLoops can find it and
// stop at the right nesting depth; anything else just applies normally.
// The returned bool reports whether the caller's loop should stop, either
// because a Bk/Br targeted this level or because Ex/Rt unwound past it.
func (c *Context) LoopBody(v value.Value) (bool, error) {
	b, ok := v.(*value.Block)
	if !ok {
		if err := c.Apply(v); err != nil {
			return false, err
		}
		return c.Broken != NotBroken, nil
	}
	state, err := c.applyBlock(b, true)
	if err != nil {
		return false, err
	}
	return state != NotBroken || c.Broken != NotBroken, nil
}

// BreakLoops implements `Bk n` (spec §4.6): starting from c, walk the
// parent chain setting Broken on every context crossed, decrementing n
// only when a context was flagged Looping at the moment of unwind, and
// stopping once n loops have been exited.
func (c *Context) BreakLoops(n int64) {
	ctx := c
	for ctx != nil {
		ctx.Broken = Broken
		looping := ctx.Looping
		next := ctx.Parent
		if looping {
			n--
			if n <= 0 {
				return
			}
		}
		ctx = next
	}
}

// ExitScript implements `Ex`: mark this context Exited; propagateBreak
// (invoked as each enclosing applyBlock/Execute call returns) carries
// Exited up through every remaining ancestor, unwinding to top (spec
// §4.6: "sets broken = Exited on every ancestor, unconditionally").
func (c *Context) ExitScript() { c.Broken = Exited }

// Return implements `Rt` (spec §4.6): set Broken from c up through
// ancestors until reaching the sentinel context planted by block
// invocation (Script == "<nonlocal>"), achieving function-return
// semantics without unwinding past the call site.
func (c *Context) Return() {
	ctx := c
	for ctx != nil {
		ctx.Broken = Broken
		if ctx.Script == nonlocalSentinel {
			return
		}
		ctx = ctx.Parent
	}
}

// Goto and Label implement `Go`/`Ll` (spec §4.6): a 1-based view of this
// context's own instruction cursor, letting a script compute jumps within
// its own token vector.
func (c *Context) Goto(n int64) { c.Cursor = int(n) - 2 }
func (c *Context) Label() int64 { return int64(c.Cursor) + 1 }

// Define implements spec §4.5: local writes in the current scope; global
// recurses to the root; nonlocal recurses once past the current scope and
// prefers an existing binding over creating a new local one.
func (c *Context) Define(name string, tier token.Tier, v value.Value) {
	c.define(name, tier, v, true)
}

func (c *Context) define(name string, tier token.Tier, v value.Value, topLevel bool) {
	switch tier {
	case token.Global:
		if c.Parent == nil {
			c.Scope[name] = v
			return
		}
		c.Parent.define(name, tier, v, topLevel)
	case token.Nonlocal:
		_, exists := c.Scope[name]
		if (!topLevel && exists) || c.Parent == nil {
			c.Scope[name] = v
			return
		}
		c.Parent.define(name, tier, v, false)
	default:
		c.Scope[name] = v
	}
}

// Undefine removes a binding where found, mirroring Define's tier walk
// (spec §4.5).
func (c *Context) Undefine(name string, tier token.Tier) {
	c.undefine(name, tier, true)
}

func (c *Context) undefine(name string, tier token.Tier, topLevel bool) {
	switch tier {
	case token.Global:
		if c.Parent == nil {
			delete(c.Scope, name)
			return
		}
		c.Parent.undefine(name, tier, topLevel)
	case token.Nonlocal:
		_, exists := c.Scope[name]
		if (!topLevel && exists) || c.Parent == nil {
			delete(c.Scope, name)
			return
		}
		c.Parent.undefine(name, tier, false)
	default:
		delete(c.Scope, name)
	}
}

// Dereference implements spec §4.5's three-tier lookup, falling back to
// the builtin table only once every eligible scope has missed. Fails
// with NameError when absent.
func (c *Context) Dereference(name string, tier token.Tier) (value.Value, error) {
	switch tier {
	case token.Global:
		if c.Parent != nil {
			if v, err := c.Parent.Dereference(name, token.Global); err == nil {
				return v, nil
			}
		}
		if v, ok := c.Scope[name]; ok {
			return v, nil
		}
		if b, ok := c.Builtins[name]; ok {
			return b, nil
		}
		return nil, berrors.Name(name)
	case token.Nonlocal:
		if c.Parent != nil {
			return c.Parent.Dereference(name, token.Local)
		}
		if b, ok := c.Builtins[name]; ok {
			return b, nil
		}
		return nil, berrors.Name(name)
	default:
		if v, ok := c.Scope[name]; ok {
			return v, nil
		}
		if c.Parent != nil {
			return c.Parent.Dereference(name, token.Local)
		}
		if b, ok := c.Builtins[name]; ok {
			return b, nil
		}
		return nil, berrors.Name(name)
	}
}
