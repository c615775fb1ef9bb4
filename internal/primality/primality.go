// Package primality provides the primality oracle used by the chain verifier.
//
// The default oracle is exact for every value that fits in 64 bits. Larger
// values use Baillie-PSW combined with a configurable number of Miller-Rabin
// rounds, for which no counterexample is known and whose worst-case error is
// bounded by 4^-Rounds.
package primality

import (
	"math/big"

	"modernc.org/mathutil"
)

// DefaultRounds is the number of Miller-Rabin rounds Exact runs in addition
// to Baillie-PSW for values above 64 bits.
const DefaultRounds = 20

// Oracle decides whether an integer is prime.
type Oracle interface {
	IsPrime(n *big.Int) bool
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func(n *big.Int) bool

// IsPrime calls f(n).
func (f OracleFunc) IsPrime(n *big.Int) bool {
	return f(n)
}

// Exact is the default oracle.
//
// Values below 2^64 are decided by a deterministic Miller-Rabin test.
// Larger values use big.Int.ProbablyPrime(Rounds). A zero Rounds means
// DefaultRounds.
type Exact struct {
	Rounds int
}

// IsPrime reports whether n is prime. Values below 2 are never prime.
func (e Exact) IsPrime(n *big.Int) bool {
	if n.Cmp(bigTwo) < 0 {
		return false
	}
	if n.IsUint64() {
		return mathutil.IsPrimeUint64(n.Uint64())
	}
	return n.ProbablyPrime(e.rounds())
}

func (e Exact) rounds() int {
	if e.Rounds <= 0 {
		return DefaultRounds
	}
	return e.Rounds
}

// Deterministic reports whether Exact's answer for n is proven rather than
// probabilistic.
func Deterministic(n *big.Int) bool {
	return n.Sign() < 0 || n.IsUint64()
}

var bigTwo = big.NewInt(2)
