package chain

import (
	"math/big"

	"github.com/roach88/adicchain/internal/recurrence"
)

// EventKind identifies what happened during verification.
type EventKind int

const (
	// EventStart is emitted once before the first check.
	EventStart EventKind = iota
	// EventCheck is emitted after each primality test.
	EventCheck
	// EventStep is emitted when the step function produces the next value.
	EventStep
	// EventInvalidResidue is emitted when a prime is a multiple of 5 and no
	// step exists.
	EventInvalidResidue
	// EventDone is emitted once with the final outcome and chain.
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventCheck:
		return "check"
	case EventStep:
		return "step"
	case EventInvalidResidue:
		return "invalid_residue"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event describes one transition of the verifier.
//
// Fields not relevant to Kind are zero. Values are copies; changing them
// does not affect verification.
type Event struct {
	Kind EventKind

	// Index is the chain position being checked or stepped from.
	Index int

	// Value is the start value (EventStart) or the value at Index.
	Value *big.Int

	// Prime is the oracle's verdict (EventCheck).
	Prime bool

	// Constant and Next describe the step taken (EventStep).
	Constant recurrence.Constant
	Next     *big.Int

	// Requested is the requested chain length (EventStart, EventDone).
	Requested int

	// Outcome and Chain are set on EventDone.
	Outcome Outcome
	Chain   []*big.Int
}

// Observer receives verification events in order.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// Observers fans events out to several observers in order.
type Observers []Observer

// Observe forwards e to every non-nil observer.
func (obs Observers) Observe(e Event) {
	for _, o := range obs {
		if o != nil {
			o.Observe(e)
		}
	}
}
