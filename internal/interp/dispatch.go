package interp

import (
	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/token"
	"github.com/birdiescript/birdie/internal/value"
)

// Execute runs the dispatch loop over c.Tokens starting at c.Cursor
// (spec §4.4's simplified loop): step each token in turn until the token
// vector is exhausted or Broken is set.
func (c *Context) Execute() error {
	for c.Cursor < len(c.Tokens) && c.Broken == NotBroken {
		if err := c.step(c.Tokens[c.Cursor]); err != nil {
			return err
		}
		c.Cursor++
	}
	return nil
}

// step handles one token per spec §4.4's five-rule dispatch.
func (c *Context) step(t token.Token) error {
	switch t.Kind {
	case token.Comment, token.BlockComment:
		// Rule 1: ignored.
		return nil
	case token.BlockStart:
		return c.stepBlockStart(t)
	case token.BlockEnd:
		_, err := c.stepBlockEnd(t, false)
		return err
	case token.Name:
		name := token.ParseName(t.Text)
		if name.Role == token.RoleDefcall {
			return c.stepDefcall(t, name)
		}
		if c.Nesting > 0 {
			c.BlockTokens = append(c.BlockTokens, t)
			return nil
		}
		return c.stepName(name)
	default:
		if c.Nesting > 0 {
			c.BlockTokens = append(c.BlockTokens, t)
			return nil
		}
		v, err := parseLiteral(t)
		if err != nil {
			return err
		}
		return c.pushOrShadow(t.Text, v)
	}
}

// stepBlockStart implements rule 2: nested starts buffer, a top-level
// start begins accumulating a new Block and records its scoped-ness
// (spec §4.4).
func (c *Context) stepBlockStart(t token.Token) error {
	if c.Nesting > 0 {
		c.BlockTokens = append(c.BlockTokens, t)
	} else {
		c.BlockScoped = t.Text != `\{`
	}
	c.Nesting++
	return nil
}

// stepBlockEnd implements rule 3 for a plain blockend: nested ends
// buffer, the outermost end closes the block and pushes it.
func (c *Context) stepBlockEnd(t token.Token, defcall bool) (*value.Block, error) {
	if c.Nesting > 1 {
		c.BlockTokens = append(c.BlockTokens, t)
		c.Nesting--
		return nil, nil
	}
	c.Nesting--
	if c.Nesting < 0 {
		c.Nesting = 0
	}
	block := value.NewBlock(c.BlockTokens, c.scopeView(), c.BlockScoped)
	c.BlockTokens = nil
	c.BlockScoped = true
	if !defcall {
		c.Push(block)
	}
	return block, nil
}

// scopeView returns the map a Block captures: the context's own scope
// map, shared by reference (core.py: BBlock's scope is the dict itself,
// not a copy, so defines through the captured link stay visible).
func (c *Context) scopeView() *value.Scope {
	return &value.Scope{Vars: c.Scope}
}

// stepDefcall implements the `\}name` form: close the pending block, bind
// it under name, and invoke it immediately (spec §4.4 rule 3: "A defcall
// binds it to its name AND invokes it").
func (c *Context) stepDefcall(raw token.Token, name token.Name) error {
	if c.Nesting > 1 {
		// Still nested: buffer the raw defcall token itself, matching
		// core.py which only special-cases defcall at the outermost
		// nesting level.
		c.BlockTokens = append(c.BlockTokens, raw)
		c.Nesting--
		return nil
	}
	block, err := c.stepBlockEnd(token.Token{Kind: token.BlockEnd, Text: "}"}, true)
	if err != nil {
		return err
	}
	if block == nil {
		return nil
	}
	c.Define(name.Ident, name.Tier, block)
	return c.Apply(block)
}

// stepName implements rule 5 for a parsed name role: ref pushes the
// dereferenced value, def binds the current top-of-stack, undef removes a
// binding, call/call-explicit dereferences and invokes.
func (c *Context) stepName(name token.Name) error {
	switch name.Role {
	case token.RoleRef:
		v, err := c.Dereference(name.Ident, name.Tier)
		if err != nil {
			return err
		}
		c.Push(v)
		return nil
	case token.RoleDef:
		top, err := c.Peek()
		if err != nil {
			return err
		}
		c.Define(name.Ident, name.Tier, top)
		return nil
	case token.RoleUndef:
		c.Undefine(name.Ident, name.Tier)
		return nil
	default: // RoleCall, RoleCallExplicit
		v, err := c.Dereference(name.Ident, name.Tier)
		if err != nil {
			return err
		}
		return c.Apply(v)
	}
}

// pushOrShadow implements the tail of rule 5 for non-name literal tokens:
// if the token's raw spelling also happens to be a bound name, that
// binding shadows the literal (spec §4.4: "this rule makes defined
// constants shadow literal spellings that happen to match").
func (c *Context) pushOrShadow(raw string, literal value.Value) error {
	if v, err := c.Dereference(raw, token.Local); err == nil {
		return c.Apply(v)
	}
	c.Push(literal)
	return nil
}

// Apply invokes v against c: most values simply push themselves (but by
// the time Apply is reached, that case has already been handled by the
// caller); Blocks spawn a subcontext, Builtins run their registered
// handler.
func (c *Context) Apply(v value.Value) error {
	switch fn := v.(type) {
	case *value.Block:
		_, err := c.applyBlock(fn, false)
		return err
	case *value.Builtin:
		return fn.Handler(c)
	default:
		c.Push(v)
		return nil
	}
}

// nonlocalSentinel is the Script label applyBlock plants on the "parent"
// subcontext it creates; `Rt` (spec §4.6) unwinds exactly up to the
// nearest context carrying this label, achieving function-return
// semantics.
const nonlocalSentinel = "<nonlocal>"

// applyBlock implements core.py's BBlock.apply: a "parent" subcontext
// holds the block's captured scope (mutations through nonlocal/global
// defines land there), and the actual body runs in a second subcontext
// parented to it, sharing the caller's operand stack (spec §3
// "Lifecycles"). It returns the "parent" wrapper's resulting Broken
// state so loop-control operators can tell whether a Bk/Br targeted this
// particular invocation.
func (c *Context) applyBlock(b *value.Block, looping bool) (BreakState, error) {
	if c.overDepth() {
		return NotBroken, berrors.Valuef("recursion budget exceeded (max depth %d)", c.MaxDepth)
	}
	parent := c.SubContext(nonlocalSentinel)
	parent.InheritScope(b.Scope.Vars)
	parent.Looping = looping

	body := c.SubContext(b.String())
	body.Parent = parent
	body.Stack = c.Stack
	body.Tokens = b.Tokens
	if !b.Scoped {
		body.InheritScope(b.Scope.Vars)
	}

	err := body.Execute()
	if err != nil {
		return NotBroken, err
	}
	propagateBreak(c, body.Broken)
	return parent.Broken, nil
}

// propagateBreak folds a finished subcontext's Broken state back onto the
// caller, matching how core.py lets mutable context.broken flow back up
// since subcontext and caller always share the same Python object graph
// for anything other than Broken/Looping.
func propagateBreak(c *Context, state BreakState) {
	if state == Exited {
		ctx := c
		for ctx != nil {
			ctx.Broken = Exited
			ctx = ctx.Parent
		}
	}
}

// NameErrorFor is a small helper ops/builtins use to report an undefined
// dereference with the normalized identifier.
func NameErrorFor(ident string) error { return berrors.Name(ident) }
