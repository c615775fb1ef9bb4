// Package recurrence implements the step function of the 5-adic chain.
//
// For an integer n with residue r = n mod 5, the next chain value is
//
//	r = 1: (6n - 1) / 5
//	r = 2: (6n + 3) / 5
//	r = 3: (6n - 3) / 5
//	r = 4: (6n + 1) / 5
//
// The constant k in 6n + k is chosen so that 6n + k ≡ 0 (mod 5), hence every
// division is exact. Residue 0 has no transform; Step reports it with ok=false.
//
// All functions operate on *big.Int and never mutate their arguments.
package recurrence
