// Package report renders chain verification for humans and machines.
//
// TextObserver streams the line-oriented trace while the verifier runs.
// Summary is the structured form written by the json and yaml formats.
package report

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/adicchain/internal/chain"
)

// TextObserver writes a human-readable trace of a verification.
//
// The format is diagnostic, not a contract:
//
//	=== Verifying 5-adic prime chain from n0 = 19084201 ===
//	Step 0: 19084201 -> PRIME
//	    [ Applied c = -1 -> Next = 22901041 ]
//	...
//	Final result: verified chain of length 7
//	Chain: [19084201, 22901041, ...]
type TextObserver struct {
	w       io.Writer
	grouped bool
	printer *message.Printer
	err     error
}

// Option configures a TextObserver.
type Option func(*TextObserver)

// WithGroupedDigits prints values with English thousands separators.
func WithGroupedDigits() Option {
	return func(o *TextObserver) {
		o.grouped = true
	}
}

// NewTextObserver returns an observer writing to w.
func NewTextObserver(w io.Writer, opts ...Option) *TextObserver {
	o := &TextObserver{
		w:       w,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Err returns the first write error, if any. Later events are dropped once
// a write has failed.
func (o *TextObserver) Err() error {
	return o.err
}

// Observe implements chain.Observer.
func (o *TextObserver) Observe(e chain.Event) {
	switch e.Kind {
	case chain.EventStart:
		o.printf("\n=== Verifying 5-adic prime chain from n0 = %s ===\n", o.num(e.Value))
	case chain.EventCheck:
		status := "PRIME"
		if !e.Prime {
			status = "COMPOSITE (chain broken)"
		}
		o.printf("Step %d: %s -> %s\n", e.Index, o.num(e.Value), status)
	case chain.EventStep:
		o.printf("    [ Applied c = %s -> Next = %s ]\n", e.Constant, o.num(e.Next))
	case chain.EventInvalidResidue:
		o.printf("  [ Invalid step: n ≡ 0 mod 5 ]\n")
	case chain.EventDone:
		o.printf("\nFinal result: verified chain of length %d\n", len(e.Chain))
		o.printf("Chain: %s\n", o.list(e.Chain))
	}
}

func (o *TextObserver) num(n *big.Int) string {
	if !o.grouped {
		return n.String()
	}
	if n.IsInt64() {
		return o.printer.Sprintf("%d", n.Int64())
	}
	return groupDigits(n.String())
}

// groupDigits inserts a comma every three digits, matching the English
// printer for values it cannot format.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func (o *TextObserver) list(vals []*big.Int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = o.num(v)
	}
	sep := ", "
	if o.grouped {
		sep = "; "
	}
	return "[" + strings.Join(parts, sep) + "]"
}

func (o *TextObserver) printf(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}
