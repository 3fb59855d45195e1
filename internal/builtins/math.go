package builtins

import (
	"math"
	"math/big"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// mathBuiltins groups the algebraic/number-theoretic named functions
// (Round/Floor/Ceiling/Gcd/IsPrime/Base), grounded on
// original_source/birdiescript/builtins.py's builtin_round/
// builtin_floor/builtin_ceiling/builtin_gcd/builtin_isprime/builtin_base.
func mathBuiltins() []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(roundOp, "Ro", "Round"),
		value.NewBuiltin(floorOp, "Fl", "Floor"),
		value.NewBuiltin(ceilOp, "Cl", "Ceiling"),
		value.NewBuiltin(gcdOp, "Gc", "Gcd"),
		value.NewBuiltin(isPrimeOp, "Ip", "Isprime"),
		value.NewBuiltin(baseOp, "Ba", "Baseascii"),
		value.NewBuiltin(sqrtOp, "Sq", "Sqrt"),
	}
}

func popFloat(m value.Machine, op string) (float64, error) {
	v, err := m.Pop()
	if err != nil {
		return 0, err
	}
	f, err := value.Convert(v, value.RankFloat)
	if err != nil {
		return 0, err
	}
	return f.(*value.Float).V, nil
}

func roundOp(m value.Machine) error {
	f, err := popFloat(m, "Round")
	if err != nil {
		return err
	}
	m.Push(value.NewFloat(math.Round(f)).Simplify())
	return nil
}

func floorOp(m value.Machine) error {
	f, err := popFloat(m, "Floor")
	if err != nil {
		return err
	}
	m.Push(value.NewFloat(math.Floor(f)).Simplify())
	return nil
}

func ceilOp(m value.Machine) error {
	f, err := popFloat(m, "Ceiling")
	if err != nil {
		return err
	}
	m.Push(value.NewFloat(math.Ceil(f)).Simplify())
	return nil
}

func sqrtOp(m value.Machine) error {
	f, err := popFloat(m, "Sqrt")
	if err != nil {
		return err
	}
	if f < 0 {
		re, im := 0.0, math.Sqrt(-f)
		m.Push(value.NewComplex(re, im))
		return nil
	}
	m.Push(value.NewFloat(math.Sqrt(f)).Simplify())
	return nil
}

// gcdOp pops (a, b) and pushes their greatest common divisor (spec §7
// ValueError taxonomy example: "cross product on non-3-vectors, zero
// divisor in chunk size" — gcd(0,0) is conventionally 0, not an error).
func gcdOp(m value.Machine) error {
	b, err := m.Pop()
	if err != nil {
		return err
	}
	a, err := m.Pop()
	if err != nil {
		return err
	}
	ai, ok := a.(*value.Int)
	if !ok {
		return berrors.Type("Gcd", a.Rank().String())
	}
	bi, ok := b.(*value.Int)
	if !ok {
		return berrors.Type("Gcd", b.Rank().String())
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(ai.V), new(big.Int).Abs(bi.V))
	m.Push(value.NewIntFromBig(g))
	return nil
}

// isPrimeOp pushes 1/0 for whether the popped Int is prime, using
// math/big's Miller-Rabin ProbablyPrime (core.py's builtin_isprime does
// trial division; big.Int.ProbablyPrime(20) is the standard-library
// equivalent for arbitrary precision).
func isPrimeOp(m value.Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	n, ok := v.(*value.Int)
	if !ok {
		return berrors.Type("Isprime", v.Rank().String())
	}
	m.Push(boolInt(n.V.ProbablyPrime(20)))
	return nil
}

// baseDigits is the digit alphabet `Ba`/`Baseascii` draws from (core.py's
// builtin_base_ascii's `ds` string). It holds 94 characters, but only the
// first maxBase of them are ever used as digits.
const baseDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
	`!"#$%&'()*+,-./:;<=>?@[]^_{|}~` + "\\`"

// maxBase is the largest base `Ba` accepts (spec §7: "base < 2 or > 86
// in base conversion" is a ValueError).
const maxBase = 86

// baseOp pops (n, b) and pushes n's digits in base b as a Str, rejecting
// bases outside [2, maxBase] (spec §7 ValueError example).
func baseOp(m value.Machine) error {
	b, err := m.Pop()
	if err != nil {
		return err
	}
	n, err := m.Pop()
	if err != nil {
		return err
	}
	bi, ok := b.(*value.Int)
	if !ok {
		return berrors.Type("Baseascii", b.Rank().String())
	}
	ni, ok := n.(*value.Int)
	if !ok {
		return berrors.Type("Baseascii", n.Rank().String())
	}
	base := bi.Int64()
	if base < 2 || base > maxBase {
		return berrors.Valuef("Baseascii: base must be between 2 and %d, got %d", maxBase, base)
	}
	nv := new(big.Int).Abs(ni.V)
	neg := ni.V.Sign() < 0
	bigBase := big.NewInt(base)
	if nv.Sign() == 0 {
		m.Push(value.NewStr("0"))
		return nil
	}
	var digits []byte
	rem := new(big.Int)
	for nv.Sign() != 0 {
		nv.DivMod(nv, bigBase, rem)
		digits = append([]byte{baseDigits[rem.Int64()]}, digits...)
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	m.Push(value.NewStr(string(digits)))
	return nil
}
