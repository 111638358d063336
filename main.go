package main

import (
	"os"

	"github.com/sable-lang/sable/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "sable-kinds [subcommand]",
	Short:        "sable-kinds 🁢\n inspect the bytecode backend's type-kind lattice",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.InfoCmd)
	rootCmd.AddCommand(cmd.SubCmd)
	rootCmd.AddCommand(cmd.JoinCmd)
	rootCmd.AddCommand(cmd.LubCmd)
}
