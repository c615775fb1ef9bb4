package cli

import (
	"math/big"

	"github.com/spf13/cobra"

	"github.com/roach88/adicchain/internal/chain"
)

// Discoveries are the published starting values of two length-7 chains.
var Discoveries = []int64{19084201, 76933159}

// NewDiscoveriesCommand creates the discoveries command.
func NewDiscoveriesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "discoveries",
		Short: "Verify the two known length-7 chains",
		Long: `Verify the two known length-7 prime chains, starting at 19084201 and
76933159.

Examples:
  adicchain discoveries
  adicchain discoveries --length 8 --format yaml`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscoveries(opts, cmd)
		},
	}

	addChainFlags(cmd, opts)

	return cmd
}

func runDiscoveries(opts *VerifyOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	starts := make([]*big.Int, len(Discoveries))
	for i, d := range Discoveries {
		starts[i] = big.NewInt(d)
		if err := chain.Validate(starts[i], opts.Length); err != nil {
			return ReportError(formatter, ErrCodeInvalidInput, err, nil)
		}
	}

	return verifyChains(opts, starts, formatter)
}
