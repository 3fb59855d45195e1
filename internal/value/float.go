package value

import (
	"math"
	"math/big"

	"github.com/birdiescript/birdie/internal/token"
)

// Float is Birdiescript's IEEE-754 double (spec §3: rank 1).
type Float struct {
	V float64
}

func NewFloat(f float64) *Float { return &Float{V: f} }

func (f *Float) Rank() Rank { return RankFloat }

func (f *Float) String() string { return niceFloat(f.V) }

func (f *Float) Repr() string { return literalSign(niceFloat(f.V)) }

// Simplify demotes a Float with no fractional part, not infinite and not
// NaN, to an Int (core.py: BFloat.simplify).
func (f *Float) Simplify() Value {
	if math.IsInf(f.V, 0) || math.IsNaN(f.V) {
		return f
	}
	if f.V == math.Trunc(f.V) && math.Abs(f.V) < 1e18 {
		bi, acc := new(big.Float).SetFloat64(f.V).Int(nil)
		if acc == big.Exact {
			return &Int{V: bi}
		}
	}
	return f
}

func (f *Float) Tokenize() []token.Token {
	return []token.Token{{Kind: token.Int, Text: f.Repr()}}
}

func (f *Float) Truthy() bool { return f.V != 0 }
