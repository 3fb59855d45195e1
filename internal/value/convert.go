package value

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/token"
)

// Coerce lifts a to at least rank(b), leaving it unchanged when it is
// already at or above that rank (spec §4.3: "coerce(a, b) returns a
// lifted to at least rank(b)").
func Coerce(a, b Value) (Value, error) {
	if a.Rank() >= b.Rank() {
		return a, nil
	}
	return Convert(a, b.Rank())
}

// Convert implements the §4.3 conversion table, returning a CoercionError
// for table cells marked "—".
func Convert(v Value, target Rank) (Value, error) {
	if v.Rank() == target {
		return v, nil
	}
	switch t := v.(type) {
	case *Int:
		return convertInt(t, target)
	case *Float:
		return convertFloat(t, target)
	case *Complex:
		return convertComplex(t, target)
	case *List:
		return convertList(t, target)
	case *Str:
		return convertStr(t, target)
	case *Regex:
		return convertRegex(t, target)
	case *Block:
		return convertBlock(t, target)
	}
	return nil, coercionErr(v.Rank(), target)
}

func coercionErr(from, to Rank) error {
	return berrors.Coercion(from.String(), to.String())
}

func convertInt(i *Int, target Rank) (Value, error) {
	switch target {
	case RankFloat:
		f := new(big.Float).SetInt(i.V)
		x, _ := f.Float64()
		return &Float{V: x}, nil
	case RankComplex:
		f := new(big.Float).SetInt(i.V)
		x, _ := f.Float64()
		return &Complex{Re: x}, nil
	case RankList:
		return &List{Items: []Value{i}}, nil
	case RankStr:
		if i.V.IsInt64() {
			r := rune(i.V.Int64())
			if r >= 0 && utf8.ValidRune(r) {
				return &Str{V: string(r)}, nil
			}
		}
		return &Str{V: i.V.String()}, nil
	case RankRegex:
		s, err := convertInt(i, RankStr)
		if err != nil {
			return nil, err
		}
		return NewRegexFromLiteral(s.(*Str).V)
	case RankBlock:
		return &Block{Tokens: i.Tokenize(), Scope: NewScope(nil), Scoped: true}, nil
	}
	return nil, coercionErr(RankInt, target)
}

func convertFloat(f *Float, target Rank) (Value, error) {
	switch target {
	case RankInt:
		bi, _ := new(big.Float).SetFloat64(f.V).Int(nil)
		return &Int{V: bi}, nil
	case RankComplex:
		return &Complex{Re: f.V}, nil
	case RankList:
		return &List{Items: []Value{f}}, nil
	case RankStr:
		return &Str{V: f.String()}, nil
	case RankRegex:
		return NewRegexFromLiteral(f.String())
	case RankBlock:
		return &Block{Tokens: f.Tokenize(), Scope: NewScope(nil), Scoped: true}, nil
	}
	return nil, coercionErr(RankFloat, target)
}

func convertComplex(c *Complex, target Rank) (Value, error) {
	switch target {
	case RankList:
		return &List{Items: []Value{c}}, nil
	case RankStr:
		return &Str{V: c.String()}, nil
	case RankRegex:
		return NewRegexFromLiteral(c.String())
	case RankBlock:
		return &Block{Tokens: c.Tokenize(), Scope: NewScope(nil), Scoped: true}, nil
	}
	return nil, coercionErr(RankComplex, target)
}

func convertList(l *List, target Rank) (Value, error) {
	switch target {
	case RankStr:
		var b strings.Builder
		for _, item := range l.Items {
			s, err := Convert(item, RankStr)
			if err != nil {
				return nil, err
			}
			b.WriteString(s.String())
		}
		return &Str{V: b.String()}, nil
	case RankRegex:
		var b strings.Builder
		for _, item := range l.Items {
			s, err := Convert(item, RankStr)
			if err != nil {
				return nil, err
			}
			b.WriteString(s.String())
		}
		return NewRegexFromLiteral(b.String())
	case RankBlock:
		var toks []token.Token
		for _, item := range l.Items {
			toks = append(toks, item.Tokenize()...)
		}
		return &Block{Tokens: toks, Scope: NewScope(nil), Scoped: true}, nil
	}
	return nil, coercionErr(RankList, target)
}

func convertStr(s *Str, target Rank) (Value, error) {
	switch target {
	case RankInt:
		bi, ok := new(big.Int).SetString(strings.TrimSpace(s.V), 0)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as Int", s.V)
		}
		return &Int{V: bi}, nil
	case RankFloat:
		x, err := strconv.ParseFloat(strings.TrimSpace(s.V), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as Float", s.V)
		}
		return &Float{V: x}, nil
	case RankComplex:
		return parseComplexStr(s.V)
	case RankList:
		return s.Simplify(), nil
	case RankRegex:
		return NewRegex(s.V, "")
	case RankBlock:
		return &Block{Tokens: []token.Token{{Kind: token.Str, Text: s.V}}, Scope: NewScope(nil), Scoped: true}, nil
	}
	return nil, coercionErr(RankStr, target)
}

// complexStrRx accepts the "(re+imj)" form produced by Complex.String.
var complexStrRx = regexp.MustCompile(`^\(?([+-]?[0-9]*\.?[0-9]+(?:[eE][+-]?[0-9]+)?)([+-][0-9]*\.?[0-9]+(?:[eE][+-]?[0-9]+)?)j\)?$`)

func parseComplexStr(s string) (Value, error) {
	m := complexStrRx.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, fmt.Errorf("cannot parse %q as Complex", s)
	}
	re, err1 := strconv.ParseFloat(m[1], 64)
	im, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("cannot parse %q as Complex", s)
	}
	return &Complex{Re: re, Im: im}, nil
}

func convertRegex(r *Regex, target Rank) (Value, error) {
	switch target {
	case RankList:
		return (&Str{V: r.Pattern}).Simplify(), nil
	case RankStr:
		return &Str{V: r.Pattern}, nil
	case RankBlock:
		return &Block{Tokens: []token.Token{{Kind: token.Str, Text: r.Pattern}}, Scope: NewScope(nil), Scoped: true}, nil
	}
	return nil, coercionErr(RankRegex, target)
}

func convertBlock(b *Block, target Rank) (Value, error) {
	switch target {
	case RankList:
		items := make([]Value, len(b.Tokens))
		for i, t := range b.Tokens {
			items[i] = &Str{V: t.Text}
		}
		return &List{Items: items}, nil
	case RankStr:
		return &Str{V: b.String()}, nil
	case RankRegex:
		return NewRegexFromLiteral(b.String())
	}
	return nil, coercionErr(RankBlock, target)
}

// NewRegexFromLiteral compiles literal text for use as a regex pattern,
// quoting metacharacters first since the §4.3 table treats "regex of that
// <value>" as a literal match, not a pattern interpretation.
func NewRegexFromLiteral(literal string) (*Regex, error) {
	return NewRegex(regexp.QuoteMeta(literal), "")
}
