// Command jotoba runs the dictionary search service: two subcommands,
// start and check, sharing the TOML configuration loaded from
// internal/config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jotoba",
		Short: "Multilingual Japanese dictionary search engine",
	}
	root.AddCommand(newStartCmd())
	root.AddCommand(newCheckCmd())
	return root
}
