// Command adicchain verifies 5-adic prime chains.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/adicchain/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
