package value

import (
	"strings"

	"github.com/birdiescript/birdie/internal/token"
)

// List is Birdiescript's ordered, heterogeneous sequence (spec §3: rank 3).
type List struct {
	Items []Value
}

func NewList(items []Value) *List { return &List{Items: items} }

func (l *List) Rank() Rank { return RankList }

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (l *List) Repr() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.Repr()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (l *List) Simplify() Value { return l }

func (l *List) Tokenize() []token.Token {
	toks := []token.Token{{Kind: token.Name, Text: "["}}
	for _, v := range l.Items {
		toks = append(toks, v.Tokenize()...)
	}
	toks = append(toks, token.Token{Kind: token.Name, Text: "]"})
	return toks
}

func (l *List) Truthy() bool { return len(l.Items) != 0 }
