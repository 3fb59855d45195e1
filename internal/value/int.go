package value

import (
	"math/big"

	"github.com/birdiescript/birdie/internal/token"
)

// Int is Birdiescript's arbitrary-precision signed integer (spec §3: rank
// 0). Backed by math/big.Int — grounded on funvibe-funxy's numeric tower
// (internal/vm/vm_ops.go), the one pack repo that reaches for big.Int/
// big.Rat for its own arbitrary-precision arithmetic; no third-party
// bignum library in the pack offers anything stdlib's math/big does not.
type Int struct {
	V *big.Int
}

// NewInt wraps an int64 as an Int value.
func NewInt(n int64) *Int { return &Int{V: big.NewInt(n)} }

// NewIntFromBig wraps an existing *big.Int (taking ownership; callers
// should pass a value they no longer mutate).
func NewIntFromBig(v *big.Int) *Int { return &Int{V: v} }

func (i *Int) Rank() Rank { return RankInt }

// String returns the decimal representation (spec §4.3 convert table:
// Int -> Str uses the decimal digits when outside Unicode range).
func (i *Int) String() string { return i.V.String() }

// Repr returns the decimal or 0-prefixed hexadecimal form, whichever is
// shorter, with a trailing "m" instead of a leading "-" for negative
// values (core.py: BInt.__repr__).
func (i *Int) Repr() string {
	neg := i.V.Sign() < 0
	abs := new(big.Int).Abs(i.V)
	base10 := abs.Text(10)
	base16 := "0" + abs.Text(16)
	r := base10
	if len(base16) < len(base10) {
		r = base16
	}
	if neg {
		r += "m"
	}
	return r
}

func (i *Int) Simplify() Value { return i }

func (i *Int) Tokenize() []token.Token {
	return []token.Token{{Kind: token.Int, Text: i.Repr()}}
}

// IsIntegral reports whether i is a value that would simplify to itself;
// Ints always are.
func (i *Int) IsIntegral() bool { return true }

// Cmp compares two Ints numerically.
func (i *Int) Cmp(other *Int) int { return i.V.Cmp(other.V) }

// Add, Sub, Mul return new Ints; division/modulo live in ops since their
// semantics (float NaN-on-zero vs integer ValueError) are operator-level
// decisions, not value-level ones.
func (i *Int) Add(o *Int) *Int { return &Int{V: new(big.Int).Add(i.V, o.V)} }
func (i *Int) Sub(o *Int) *Int { return &Int{V: new(big.Int).Sub(i.V, o.V)} }
func (i *Int) Mul(o *Int) *Int { return &Int{V: new(big.Int).Mul(i.V, o.V)} }
func (i *Int) Neg() *Int       { return &Int{V: new(big.Int).Neg(i.V)} }
func (i *Int) Abs() *Int       { return &Int{V: new(big.Int).Abs(i.V)} }
func (i *Int) Not() *Int       { return &Int{V: new(big.Int).Not(i.V)} }

// Int64 truncates to a machine int64 (used where a small count is
// expected: repeat counts, chunk sizes, break depth, and so on).
func (i *Int) Int64() int64 { return i.V.Int64() }

func (i *Int) Truthy() bool { return i.V.Sign() != 0 }
