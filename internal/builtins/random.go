package builtins

import (
	"math"

	"github.com/birdiescript/birdie/internal/capability"
	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// randomBuiltins groups the pseudorandomness family spec §5 calls out
// ("random distributions"), grounded on
// original_source/birdiescript/builtins.py's Rd/Ra/Rn/Rf section: Seed,
// a uniform [0,1) variate, and the normal/uniform-range distributions
// (the representative slice; the original's beta/gamma/Pareto/Weibull/
// von-Mises family is left unregistered since math/rand has no direct
// analogue for any of them). rng is the capability.Random
// collaborator (spec §6) so these builtins never touch math/rand's
// global source directly.
func randomBuiltins(rng capability.Random) []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(seedOp(rng), "Rd", "Seed"),
		value.NewBuiltin(randOp(rng), "Ra", "Rand", "Random"),
		value.NewBuiltin(randNormOp(rng), "Rn", "Randnorm", "Randomnormal"),
		value.NewBuiltin(randUniformOp(rng), "Rf", "Randuni", "Randomuniform"),
	}
}

// seedOp reseeds rng from the popped Int, or, when the top of stack isn't
// an Int, leaves the stack alone and reseeds rng from its own next Int63()
// draw (core.py builtin_seed peeks rather than requiring an Int).
func seedOp(rng capability.Random) value.Handler {
	return func(m value.Machine) error {
		v, err := m.Peek()
		if err != nil {
			return err
		}
		if n, ok := v.(*value.Int); ok {
			if _, err := m.Pop(); err != nil {
				return err
			}
			rng.Seed(n.Int64())
			return nil
		}
		rng.Seed(rng.Int63())
		return nil
	}
}

// randOp pushes a Float uniformly distributed in [0, 1).
func randOp(rng capability.Random) value.Handler {
	return func(m value.Machine) error {
		m.Push(value.NewFloat(rng.Float64()))
		return nil
	}
}

// randNormOp pops (mu, sigma) and pushes a normal variate, synthesized
// from rng's uniform source via the Box-Muller transform since
// capability.Random only promises Float64()/Int63() (core.py defers this
// to Python's random.gauss).
func randNormOp(rng capability.Random) value.Handler {
	return func(m value.Machine) error {
		sigma, err := popFloat(m, "Randnorm")
		if err != nil {
			return err
		}
		mu, err := popFloat(m, "Randnorm")
		if err != nil {
			return err
		}
		u1, u2 := rng.Float64(), rng.Float64()
		if u1 <= 0 {
			u1 = 1e-300
		}
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		m.Push(value.NewFloat(mu + sigma*z))
		return nil
	}
}

// randUniformOp pops (a, b) and pushes a Float uniformly distributed in
// [a, b) (core.py builtin_random_uniform).
func randUniformOp(rng capability.Random) value.Handler {
	return func(m value.Machine) error {
		b, err := popFloat(m, "Randuni")
		if err != nil {
			return err
		}
		a, err := popFloat(m, "Randuni")
		if err != nil {
			return err
		}
		if b < a {
			return berrors.Valuef("Randuni: upper bound below lower bound")
		}
		m.Push(value.NewFloat(a + rng.Float64()*(b-a)))
		return nil
	}
}
