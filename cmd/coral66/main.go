package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"coral66/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "coral66",
	Short: "CORAL 66 semantic analyzer and language server",
	Long:  `coral66 analyzes CORAL 66 sources and serves editors over the Language Server Protocol`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the stream's TTY status.
func useColor(cmd *cobra.Command, stream *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(stream))
}
