package recurrence

import (
	"errors"
	"math/big"
)

// Modulus is the base of the chain's residue classes.
const Modulus = 5

// ErrInexactDivision is the panic value raised when 6n+k is not a multiple
// of 5. It indicates a broken constant table and cannot happen for a valid
// residue.
var ErrInexactDivision = errors.New("recurrence: numerator not divisible by 5")

var (
	bigSix     = big.NewInt(6)
	bigModulus = big.NewInt(Modulus)
)

// Residue returns n mod 5 in the range 0..4.
func Residue(n *big.Int) int64 {
	return new(big.Int).Mod(n, bigModulus).Int64()
}

// Numerator returns 6n + k for the constant selected by n's residue.
// It returns false when n ≡ 0 (mod 5).
func Numerator(n *big.Int) (*big.Int, bool) {
	c, ok := ConstantFor(Residue(n))
	if !ok {
		return nil, false
	}
	return numerator(n, c), true
}

func numerator(n *big.Int, c Constant) *big.Int {
	num := new(big.Int).Mul(n, bigSix)
	return num.Add(num, big.NewInt(c.Offset()))
}

// Step applies one transform of the chain to n.
//
// When n ≡ 0 (mod 5) there is no next value: Step returns nil, 0, false.
// Otherwise it returns (6n + k) / 5 and the constant k that was used.
func Step(n *big.Int) (next *big.Int, c Constant, ok bool) {
	c, ok = ConstantFor(Residue(n))
	if !ok {
		return nil, 0, false
	}

	rem := new(big.Int)
	next, rem = new(big.Int).QuoRem(numerator(n, c), bigModulus, rem)
	if rem.Sign() != 0 {
		panic(ErrInexactDivision)
	}
	return next, c, true
}
