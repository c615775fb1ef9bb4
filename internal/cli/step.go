package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/adicchain/internal/chain"
	"github.com/roach88/adicchain/internal/recurrence"
)

// StepResult is the structured payload of the step command.
type StepResult struct {
	Value    string `json:"value" yaml:"value"`
	Residue  int64  `json:"residue" yaml:"residue"`
	Valid    bool   `json:"valid" yaml:"valid"`
	Constant string `json:"constant,omitempty" yaml:"constant,omitempty"`
	Next     string `json:"next,omitempty" yaml:"next,omitempty"`
}

func (r StepResult) String() string {
	if !r.Valid {
		return fmt.Sprintf("%s ≡ 0 (mod 5): invalid step, no next value", r.Value)
	}
	return fmt.Sprintf("%s ≡ %d (mod 5): applied c = %s -> next = %s", r.Value, r.Residue, r.Constant, r.Next)
}

// NewStepCommand creates the step command.
func NewStepCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <n>",
		Short: "Apply the chain's step function once",
		Long: `Apply the 5-adic step function to n once, without testing primality.

Examples:
  adicchain step 19084201
  adicchain step 10 --format json`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runStep(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	n, err := parseInteger(arg)
	if err != nil {
		return ReportError(formatter, ErrCodeParse, err, map[string]string{"arg": arg})
	}
	if err := chain.Validate(n, 1); err != nil {
		return ReportError(formatter, ErrCodeInvalidInput, err, map[string]string{"arg": arg})
	}

	result := StepResult{Value: n.String(), Residue: recurrence.Residue(n)}
	if next, c, ok := recurrence.Step(n); ok {
		result.Valid = true
		result.Constant = c.String()
		result.Next = next.String()
	}

	if err := formatter.Success(opts.runIDs().Generate(), result); err != nil {
		return WrapExitError(ExitFailure, "failed to write output", err)
	}
	return nil
}
