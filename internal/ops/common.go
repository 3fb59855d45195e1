// Package ops implements Birdiescript's Operator Table (spec §4.6): the
// overloaded arithmetic/sequence/function operators, their
// symmetric-argument fallback, the unary overloads, the control-flow
// operators' Context state machine, and the `[`/`]` list-mark pair
// (spec §4.7).
//
// Every handler is registered as a *value.Builtin whose Handler only
// needs value.Machine — the narrow structural view of interp.Context
// (spec §3's design note: "Polymorphic operators without dynamic
// dispatch... a giant match on a (rank, rank) tuple plus a fallback swap
// when the operator's symmetric attribute is set"), so this package never
// imports internal/interp and cannot cycle back into it.
//
// Grounded on the teacher's internal/bytecode/vm_ops.go: the pop-two,
// typecheck, push helper shape (binaryIntOp/binaryFloatOp) is the model
// for popTwo/commonNum/commonizeSeq below, generalized from DWScript's
// fixed Int/Float pair to Birdiescript's open rank lattice.
package ops

import (
	"strings"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/token"
	"github.com/birdiescript/birdie/internal/value"
)

// popTwo pops the two operands an overloaded binary operator needs: b is
// popped first (the shallower operand, on top), a second (the deeper
// one) — spec §4.6: "Every overloaded operator pops two operands (a, b)
// (b first; a is the deeper one)".
func popTwo(m value.Machine) (a, b value.Value, err error) {
	b, err = m.Pop()
	if err != nil {
		return nil, nil, err
	}
	a, err = m.Pop()
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// commonNum lifts a and b to their shared Num rank (spec §4.3
// "commonize"), so arithmetic handlers can switch once on the resulting
// concrete type instead of handling every (rank, rank) pair themselves.
func commonNum(a, b value.Value) (value.Value, value.Value, error) {
	r := a.Rank()
	if b.Rank() > r {
		r = b.Rank()
	}
	ca, err := value.Convert(a, r)
	if err != nil {
		return nil, nil, err
	}
	cb, err := value.Convert(b, r)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

// commonizeSeq is commonNum's Seq-group counterpart: both operands are
// lifted to the higher of their two ranks within List/Str/Regex.
func commonizeSeq(a, b value.Value) (value.Value, value.Value, error) {
	return commonNum(a, b)
}

// seqItems flattens a Seq-group value into its element values: a List's
// items directly, a Str's runes as one-character Strs, a Regex's pattern
// runes the same way (spec §4.6's Seq operators all iterate "elements").
func seqItems(v value.Value) ([]value.Value, error) {
	switch x := v.(type) {
	case *value.List:
		return append([]value.Value(nil), x.Items...), nil
	case *value.Str:
		runes := []rune(x.V)
		items := make([]value.Value, len(runes))
		for i, r := range runes {
			items[i] = value.NewStr(string(r))
		}
		return items, nil
	case *value.Regex:
		runes := []rune(x.Pattern)
		items := make([]value.Value, len(runes))
		for i, r := range runes {
			items[i] = value.NewStr(string(r))
		}
		return items, nil
	}
	return nil, berrors.Type("seq-items", v.Rank().String())
}

// seqRebuild reassembles items into the same concrete Seq kind as proto
// (List/Str/Regex), converting each item to Str text for the Str/Regex
// cases the way spec §4.3's convert table does for List->Str/Regex.
func seqRebuild(proto value.Value, items []value.Value) (value.Value, error) {
	switch x := proto.(type) {
	case *value.List:
		return value.NewList(items), nil
	case *value.Str:
		var b strings.Builder
		for _, it := range items {
			s, err := value.Convert(it, value.RankStr)
			if err != nil {
				return nil, err
			}
			b.WriteString(s.String())
		}
		return value.NewStr(b.String()), nil
	case *value.Regex:
		var b strings.Builder
		for _, it := range items {
			s, err := value.Convert(it, value.RankStr)
			if err != nil {
				return nil, err
			}
			b.WriteString(s.String())
		}
		return value.NewRegex(b.String(), x.Flags)
	}
	return nil, berrors.Type("seq-rebuild", proto.Rank().String())
}

// mergeRegexFlags implements spec §3's Regex-merge invariant: union the
// two flag sets, then drop locale/ascii flags a newer unicode flag
// supersedes. The exact superseded-flag table is underspecified in the
// distilled grammar (spec §9 "ambiguous source behavior"); the decision
// taken here (logged in DESIGN.md) is that 'u' (unicode) supersedes both
// 'l' (locale) and 'a' (ascii).
func mergeRegexFlags(fa, fb string) string {
	set := map[byte]bool{}
	for i := 0; i < len(fa); i++ {
		set[fa[i]] = true
	}
	for i := 0; i < len(fb); i++ {
		set[fb[i]] = true
	}
	if set['u'] {
		delete(set, 'a')
		delete(set, 'l')
	}
	var b strings.Builder
	for _, c := range []byte("abfilmersuvwx") {
		if set[c] {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// funcBody returns the raw token sequence a Func-group value contributes
// to a composition: a Block's own body tokens (not re-wrapped in { }),
// or a Builtin's call token.
func funcBody(v value.Value) []token.Token {
	if b, ok := v.(*value.Block); ok {
		return b.Tokens
	}
	return v.Tokenize()
}

// funcCompose implements the (Func, Func) "+" case (spec §4.6):
// concatenating token sequences, i.e. running a then b.
func funcCompose(a, b value.Value) (value.Value, error) {
	toks := append(append([]token.Token(nil), funcBody(a)...), funcBody(b)...)
	return value.NewBlock(toks, value.NewScope(nil), true), nil
}

// prependConst and appendConst build the synthesized function `(`/`)`
// produce when applied to a Func-group operand (spec §4.6 unary
// overloads' "mutate-function" case): a new Block that pushes a captured
// constant before, or after, running fn's own body.
func prependConst(constVal, fn value.Value) (value.Value, error) {
	toks := append(append([]token.Token(nil), constVal.Tokenize()...), funcBody(fn)...)
	return value.NewBlock(toks, value.NewScope(nil), true), nil
}

func appendConst(fn, constVal value.Value) (value.Value, error) {
	toks := append(append([]token.Token(nil), funcBody(fn)...), constVal.Tokenize()...)
	return value.NewBlock(toks, value.NewScope(nil), true), nil
}

// boolValue renders a Go bool as Birdiescript's Int(1)/Int(0) truthiness
// convention (spec §4.6 comparisons, §3 Truthy).
func boolValue(b bool) value.Value {
	if b {
		return value.NewInt(1)
	}
	return value.NewInt(0)
}

func reverseItems(items []value.Value) []value.Value {
	out := make([]value.Value, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func takeN(items []value.Value, n int) []value.Value {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return append([]value.Value(nil), items[:n]...)
}

func dropN(items []value.Value, n int) []value.Value {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return append([]value.Value(nil), items[n:]...)
}

// swapArgsFunc returns a new Builtin that, when applied, pops two values,
// pushes them back in swapped order, then applies fn — the deferred form
// `~` builds for a Func operand (spec §4.6 unary overloads).
func swapArgsFunc(fn value.Value) (value.Value, error) {
	return value.NewBuiltin(func(m value.Machine) error {
		return swapArgsApply(m, fn)
	}, "*swapped*"), nil
}

// swapArgsApply performs the swap-then-apply immediately — the eager
// form `#` uses for a Func operand.
func swapArgsApply(m value.Machine, fn value.Value) error {
	b, err := m.Pop()
	if err != nil {
		return err
	}
	a, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(b)
	m.Push(a)
	return m.Apply(fn)
}

// eachOnSequence implements the (Func, Seq) fallback of "-"
// (EachOnSequence, spec §4.6): invoke fn once per element, pushing the
// element first so fn's own arity decides what it does with it.
func eachOnSequence(m value.Machine, fn, seq value.Value) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	for _, it := range items {
		m.Push(it)
		if err := m.Apply(fn); err != nil {
			return err
		}
	}
	return nil
}

// foldLeft implements the (Func, Seq) "*" case: push the first element,
// then for each remaining element push it and invoke fn (which is
// expected to pop both the running accumulator and the new element and
// push the combined result); the final top is the fold's result.
func foldLeft(m value.Machine, fn, seq value.Value) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	m.Push(items[0])
	for _, it := range items[1:] {
		m.Push(it)
		if err := m.Apply(fn); err != nil {
			return err
		}
	}
	return nil
}

// filterSeq implements the (Func, Seq) "&" case: keep elements fn judges
// truthy, preserving the original Seq kind.
func filterSeq(m value.Machine, fn, seq value.Value) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	var out []value.Value
	for _, it := range items {
		m.Push(it)
		if err := m.Apply(fn); err != nil {
			return err
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		if r.Truthy() {
			out = append(out, it)
		}
	}
	v, err := seqRebuild(seq, out)
	if err != nil {
		return err
	}
	m.Push(v)
	return nil
}

// mapSeq implements the (Func, Seq) "|" case: replace every element with
// fn's result for it.
func mapSeq(m value.Machine, fn, seq value.Value) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	out := make([]value.Value, 0, len(items))
	for _, it := range items {
		m.Push(it)
		if err := m.Apply(fn); err != nil {
			return err
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		out = append(out, r)
	}
	v, err := seqRebuild(seq, out)
	if err != nil {
		return err
	}
	m.Push(v)
	return nil
}

// filterIndices implements the (Func, Seq) "^" case: the indices (as
// Ints) of elements fn judges truthy.
func filterIndices(m value.Machine, fn, seq value.Value) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	var out []value.Value
	for i, it := range items {
		m.Push(it)
		if err := m.Apply(fn); err != nil {
			return err
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		if r.Truthy() {
			out = append(out, value.NewInt(int64(i)))
		}
	}
	m.Push(value.NewList(out))
	return nil
}

// whileSlice implements the (Func, Seq) "<"/">" cases: takewhile/
// dropwhile by fn's truthiness over a run from the front.
func whileSlice(m value.Machine, fn, seq value.Value, takeWhile bool) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	idx := 0
	for ; idx < len(items); idx++ {
		m.Push(items[idx])
		if err := m.Apply(fn); err != nil {
			return err
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		if !r.Truthy() {
			break
		}
	}
	var out []value.Value
	if takeWhile {
		out = items[:idx]
	} else {
		out = items[idx:]
	}
	v, err := seqRebuild(seq, out)
	if err != nil {
		return err
	}
	m.Push(v)
	return nil
}
