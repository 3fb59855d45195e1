package value

import (
	"strings"

	"github.com/birdiescript/birdie/internal/token"
)

// Block is Birdiescript's deferred token sequence plus its captured scope
// (spec §3: rank 6). Scoped blocks ({...}) see their own local bindings
// layered in front of the capturing scope; non-scoped blocks (\{...})
// share the caller's locals directly (spec §4.4/§4.5).
type Block struct {
	Tokens []token.Token
	Scope  *Scope
	Scoped bool
}

func NewBlock(tokens []token.Token, scope *Scope, scoped bool) *Block {
	return &Block{Tokens: tokens, Scope: scope, Scoped: scoped}
}

func (b *Block) Rank() Rank { return RankBlock }

func (b *Block) delimiters() (string, string) {
	if b.Scoped {
		return "{", "}"
	}
	return "\\{", "}"
}

func (b *Block) String() string {
	open, close := b.delimiters()
	parts := make([]string, len(b.Tokens))
	for i, t := range b.Tokens {
		parts[i] = t.Text
	}
	return open + strings.Join(parts, " ") + close
}

func (b *Block) Repr() string { return b.String() }

func (b *Block) Simplify() Value { return b }

func (b *Block) Tokenize() []token.Token {
	open, _ := b.delimiters()
	startKind := token.BlockStart
	toks := []token.Token{{Kind: startKind, Text: open}}
	toks = append(toks, b.Tokens...)
	toks = append(toks, token.Token{Kind: token.BlockEnd, Text: "}"})
	return toks
}

func (b *Block) Truthy() bool { return true }
