package cli

import (
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/adicchain/internal/chain"
	"github.com/roach88/adicchain/internal/primality"
	"github.com/roach88/adicchain/internal/report"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Length      int
	GroupDigits bool
	PrimeRounds int
}

// VerifyResult is the structured payload of verify and discoveries.
type VerifyResult struct {
	Chains []report.Summary `json:"chains" yaml:"chains"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <n0>...",
		Short: "Verify the prime chain starting at each n0",
		Long: `Verify the 5-adic prime chain starting at each n0.

Each start value is an arbitrary-precision decimal integer >= 1. The chain is
followed until a value is composite, a value is divisible by 5, or --length
primes have been verified. A chain that breaks early is a normal result.

Examples:
  adicchain verify 19084201
  adicchain verify 76933159 --length 9
  adicchain verify 19084201 76933159 --format json`,
		Args:          usageArgs(cobra.MinimumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args, cmd)
		},
	}

	addChainFlags(cmd, opts)

	return cmd
}

func addChainFlags(cmd *cobra.Command, opts *VerifyOptions) {
	cmd.Flags().IntVarP(&opts.Length, "length", "l", chain.DefaultLength, "maximum chain length")
	cmd.Flags().BoolVar(&opts.GroupDigits, "group-digits", false, "print values with thousands separators (text format)")
	cmd.Flags().IntVar(&opts.PrimeRounds, "prime-rounds", primality.DefaultRounds,
		"Miller-Rabin rounds for values above 64 bits")
}

func runVerify(opts *VerifyOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	starts := make([]*big.Int, len(args))
	for i, arg := range args {
		n, err := parseInteger(arg)
		if err != nil {
			return ReportError(formatter, ErrCodeParse, err, map[string]string{"arg": arg})
		}
		if err := chain.Validate(n, opts.Length); err != nil {
			return ReportError(formatter, ErrCodeInvalidInput, err, map[string]string{"arg": arg})
		}
		starts[i] = n
	}

	return verifyChains(opts, starts, formatter)
}

// verifyChains runs the verifier for each start value and writes the
// report. Inputs must already be validated.
func verifyChains(opts *VerifyOptions, starts []*big.Int, formatter *OutputFormatter) error {
	oracle := primality.Exact{Rounds: opts.PrimeRounds}

	var text *report.TextObserver
	if !formatter.Structured() {
		var textOpts []report.Option
		if opts.GroupDigits {
			textOpts = append(textOpts, report.WithGroupedDigits())
		}
		text = report.NewTextObserver(formatter.Writer, textOpts...)
	}

	result := VerifyResult{Chains: make([]report.Summary, 0, len(starts))}
	for _, n0 := range starts {
		slog.Debug("verifying chain", "n0", n0.String(), "length", opts.Length)

		v := chain.Verifier{Oracle: oracle}
		if text != nil {
			v.Observer = text
		}
		res, err := v.VerifyDetailed(n0, opts.Length)
		if err != nil {
			if chain.IsInvalidInput(err) {
				return WrapExitError(ExitCommandError, ErrCodeInvalidInput, err)
			}
			return WrapExitError(ExitFailure, "verification failed", err)
		}

		slog.Debug("chain verified",
			"n0", n0.String(),
			"length", len(res.Chain),
			"outcome", string(res.Outcome),
			"deterministic", deterministic(res))
		formatter.VerboseLog("n0=%s outcome=%s length=%d/%d", n0, res.Outcome, len(res.Chain), res.Requested)
		result.Chains = append(result.Chains, report.NewSummary(res))
	}

	if text != nil {
		if err := text.Err(); err != nil {
			return WrapExitError(ExitFailure, "failed to write report", err)
		}
		return nil
	}

	if err := formatter.Success(opts.runIDs().Generate(), result); err != nil {
		return WrapExitError(ExitFailure, "failed to write output", err)
	}
	return nil
}

// deterministic reports whether every primality verdict in res was proven
// rather than probabilistic.
func deterministic(res *chain.Result) bool {
	for _, n := range res.Chain {
		if !primality.Deterministic(n) {
			return false
		}
	}
	return res.BreakValue == nil || primality.Deterministic(res.BreakValue)
}

// parseInteger parses a decimal integer of any size.
func parseInteger(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", s)
	}
	return n, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
