// Package arity provides commands for the macro arity table.
package arity

import (
	"github.com/spf13/cobra"
)

// NewCmdArity creates the arity command.
func NewCmdArity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arity",
		Short: "Manage the macro arity table",
		Long: `Commands for listing and overriding how many required arguments each
macro takes. Overrides are stored in the config file and layered over the
built-in table.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdSet())
	cmd.AddCommand(NewCmdUnset())

	return cmd
}

func configPathFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
