package chain

import (
	"math/big"
	"strconv"

	"github.com/roach88/adicchain/internal/primality"
	"github.com/roach88/adicchain/internal/recurrence"
)

// DefaultLength is the chain length requested when none is given.
const DefaultLength = 7

// Outcome records why verification stopped.
type Outcome string

const (
	// Complete means the requested number of primes was verified.
	Complete Outcome = "complete"
	// Composite means a value in the chain failed the primality test.
	Composite Outcome = "composite"
	// InvalidResidue means a prime in the chain is divisible by 5, so the
	// step function is undefined.
	InvalidResidue Outcome = "invalid_residue"
)

// Broken reports whether the chain ended before the requested length.
func (o Outcome) Broken() bool {
	return o == Composite || o == InvalidResidue
}

// Transition is one application of the step function.
type Transition struct {
	From     *big.Int
	Constant recurrence.Constant
	To       *big.Int
}

// Result is the detailed outcome of a verification.
type Result struct {
	// Start is a copy of n0.
	Start *big.Int

	// Requested is the requested chain length.
	Requested int

	// Chain is the verified prime prefix. len(Chain) <= Requested.
	Chain []*big.Int

	// Steps lists the transitions taken, including the one that produced a
	// composite value.
	Steps []Transition

	// Outcome says how verification ended.
	Outcome Outcome

	// BreakValue is the composite value (Composite) or the prime divisible
	// by 5 (InvalidResidue). Nil when Complete.
	BreakValue *big.Int
}

// Verifier drives the step function and the primality oracle.
// The zero value is ready to use with primality.Exact and no observer.
//
// A Verifier holds no per-run state and may be shared between goroutines as
// long as its Oracle and Observer are.
type Verifier struct {
	Oracle   primality.Oracle
	Observer Observer
}

// Verify runs a zero-value Verifier.
func Verify(n0 *big.Int, length int) ([]*big.Int, error) {
	var v Verifier
	return v.Verify(n0, length)
}

// Verify returns the verified prime prefix of the chain starting at n0,
// at most length values long.
//
// It returns an *InputError when n0 < 1 or length < 1.
func (v *Verifier) Verify(n0 *big.Int, length int) ([]*big.Int, error) {
	res, err := v.VerifyDetailed(n0, length)
	if err != nil {
		return nil, err
	}
	return res.Chain, nil
}

// VerifyDetailed is Verify returning the full Result.
func (v *Verifier) VerifyDetailed(n0 *big.Int, length int) (*Result, error) {
	if err := Validate(n0, length); err != nil {
		return nil, err
	}

	oracle := v.Oracle
	if oracle == nil {
		oracle = primality.Exact{}
	}

	res := &Result{
		Start:     new(big.Int).Set(n0),
		Requested: length,
		Chain:     make([]*big.Int, 0, length),
	}
	v.emit(Event{Kind: EventStart, Value: clone(res.Start), Requested: length})

	curr := new(big.Int).Set(n0)
	for i := 0; i < length; i++ {
		prime := oracle.IsPrime(curr)
		v.emit(Event{Kind: EventCheck, Index: i, Value: clone(curr), Prime: prime})
		if !prime {
			res.Outcome = Composite
			res.BreakValue = curr
			break
		}
		res.Chain = append(res.Chain, curr)

		if i == length-1 {
			res.Outcome = Complete
			break
		}

		next, c, ok := recurrence.Step(curr)
		if !ok {
			v.emit(Event{Kind: EventInvalidResidue, Index: i, Value: clone(curr)})
			res.Outcome = InvalidResidue
			res.BreakValue = curr
			break
		}
		res.Steps = append(res.Steps, Transition{From: curr, Constant: c, To: next})
		v.emit(Event{Kind: EventStep, Index: i, Value: clone(curr), Constant: c, Next: clone(next)})
		curr = next
	}

	v.emit(Event{
		Kind:      EventDone,
		Value:     clone(res.Start),
		Requested: length,
		Outcome:   res.Outcome,
		Chain:     cloneAll(res.Chain),
	})
	return res, nil
}

// clone and cloneAll keep observers away from the values in Result.
func clone(n *big.Int) *big.Int {
	return new(big.Int).Set(n)
}

func cloneAll(vals []*big.Int) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = clone(v)
	}
	return out
}

func (v *Verifier) emit(e Event) {
	if v.Observer != nil {
		v.Observer.Observe(e)
	}
}

// Validate checks Verify's preconditions: n0 >= 1 and length >= 1.
func Validate(n0 *big.Int, length int) error {
	if n0 == nil {
		return &InputError{Field: "n0", Value: "<nil>"}
	}
	if n0.Sign() <= 0 {
		return &InputError{Field: "n0", Value: n0.String()}
	}
	if length < 1 {
		return &InputError{Field: "length", Value: strconv.Itoa(length)}
	}
	return nil
}
