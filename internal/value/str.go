package value

import (
	"strings"
	"unicode"

	"github.com/birdiescript/birdie/internal/token"
)

// Str is Birdiescript's Unicode string type (spec §3: rank 4).
type Str struct {
	V string
}

func NewStr(s string) *Str { return &Str{V: s} }

func (s *Str) Rank() Rank { return RankStr }

func (s *Str) String() string { return s.V }

// Repr renders the tick form ('word) when every rune after the first is
// lowercase, and the escaped backtick form (`...`) otherwise (core.py:
// BStr.__repr__, chars_string_rx).
func (s *Str) Repr() string {
	if isTickWord(s.V) {
		return "'" + s.V
	}
	return "`" + escapeBirdiescript(s.V) + "`"
}

func isTickWord(v string) bool {
	runes := []rune(v)
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func escapeBirdiescript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return s
}

// Simplify expands a Str into a List of Ints, one per rune (core.py:
// BStr.simplify).
func (s *Str) Simplify() Value {
	runes := []rune(s.V)
	items := make([]Value, len(runes))
	for i, r := range runes {
		items[i] = NewInt(int64(r))
	}
	return &List{Items: items}
}

func (s *Str) Tokenize() []token.Token {
	return []token.Token{{Kind: token.Str, Text: s.Repr()}}
}

func (s *Str) Truthy() bool { return s.V != "" }
