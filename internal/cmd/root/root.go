// Package root provides the root command for the texargs CLI.
package root

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/texargs/internal/cmd/arity"
	"github.com/open-cli-collective/texargs/internal/cmd/completion"
	"github.com/open-cli-collective/texargs/internal/cmd/configcmd"
	"github.com/open-cli-collective/texargs/internal/cmd/find"
	initcmd "github.com/open-cli-collective/texargs/internal/cmd/init"
	"github.com/open-cli-collective/texargs/internal/cmd/scan"
	"github.com/open-cli-collective/texargs/internal/version"
	"github.com/open-cli-collective/texargs/internal/view"
)

// NewCmdRoot creates the root command for texargs.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texargs",
		Short: "Extract macro arguments from TeX-like markup",
		Long: `texargs finds the arguments that follow macro invocations in TeX-like
markup, telling required arguments ({groups}, \commands and single
characters) apart from optional ones ([groups]).

Scan a single invocation with 'texargs scan', or list every invocation
in a document with 'texargs find'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			configureLogging(cmd.ErrOrStderr(), verbose)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/texargs/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain, html (default from config, else table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log parse warnings to stderr")

	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return view.ValidFormats(), cobra.ShellCompDirectiveNoFileComp
	})

	// Set version template
	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(scan.NewCmdScan())
	cmd.AddCommand(find.NewCmdFind())
	cmd.AddCommand(arity.NewCmdArity())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// configureLogging routes the standard logger, which carries parse warnings,
// to w when verbose and discards it otherwise.
func configureLogging(w io.Writer, verbose bool) {
	log.SetFlags(0)
	if verbose {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}
