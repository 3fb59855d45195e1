package value

import (
	"math"
	"strings"

	"github.com/birdiescript/birdie/internal/token"
)

// Complex is Birdiescript's complex number (spec §3: rank 2), stored as
// two float64 parts rather than Go's builtin complex128 so Repr can format
// each part with niceFloat independently (core.py: BComplex keeps .real
// and .imag as separate floats for the same reason).
type Complex struct {
	Re, Im float64
}

func NewComplex(re, im float64) *Complex { return &Complex{Re: re, Im: im} }

func (c *Complex) Rank() Rank { return RankComplex }

// String renders the math-book form "(re+imj)" (core.py: BComplex.__str__).
func (c *Complex) String() string {
	real := strings.TrimSuffix(niceFloat(c.Re), ".")
	imag := strings.TrimSuffix(niceFloat(c.Im), ".") + "j"
	if !strings.HasPrefix(imag, "-") {
		imag = "+" + imag
	}
	return "(" + real + imag + ")"
}

// Repr renders Birdiescript's postfix literal form: the imaginary part
// first, then the real part, then a trailing sign — the same
// trailing-suffix convention niceFloat/literalSign use for plain numbers,
// extended to a two-part literal (core.py: BComplex.__repr__).
func (c *Complex) Repr() string {
	real := niceFloat(c.Re)
	imag := strings.TrimSuffix(niceFloat(c.Im), ".") + "j"

	if c.Im == 0 {
		return literalSign(real)
	}
	if c.Re == 0 {
		return literalSign(imag)
	}
	if strings.HasPrefix(imag, "-") {
		imag = imag[1:] + "m"
	}
	if strings.HasPrefix(real, "-") {
		return imag + strings.TrimSuffix(real[1:], ".") + "-"
	}
	return imag + strings.TrimSuffix(real, ".") + "+"
}

// Simplify drops the imaginary part (demoting to Float, and further to Int
// through Float.Simplify) when it is exactly zero (core.py:
// BComplex.simplify).
func (c *Complex) Simplify() Value {
	if c.Im == 0 && !math.Signbit(c.Im) {
		return (&Float{V: c.Re}).Simplify()
	}
	return c
}

func (c *Complex) Tokenize() []token.Token {
	return []token.Token{{Kind: token.Complex, Text: c.Repr()}}
}

func (c *Complex) Truthy() bool { return c.Re != 0 || c.Im != 0 }
