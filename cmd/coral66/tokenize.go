package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coral66/internal/diagfmt"
	"coral66/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:          "tokenize [flags] file.cor",
	Short:        "Tokenize a CORAL 66 source file",
	Long:         `Tokenize breaks a CORAL 66 source file into its token stream`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		diagfmt.Pretty(os.Stderr, result.Bag, result.File, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.File)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
