// Package chain verifies 5-adic prime chains.
//
// A Verifier starts from n0 and alternates two states:
//
//   - PrimalityCheck: the current value is tested by the primality oracle.
//     A composite value ends the chain (Outcome Composite) and is not kept.
//   - StepOrStop: the prime is appended. If the requested length has been
//     reached the chain is Complete; otherwise the step function produces the
//     next value, or ends the chain with Outcome InvalidResidue when the
//     current value is a multiple of 5.
//
// Both terminal outcomes return the verified prime prefix. Only invalid
// arguments (n0 < 1 or length < 1) are reported as errors.
//
// Reporting is decoupled from verification through the Observer interface;
// observers see every check and step but cannot influence the result.
package chain
