package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"coral66/internal/config"
	"coral66/internal/lsp"
	"coral66/internal/version"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the CORAL 66 language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.Discover(".")
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	maxDiagnostics := cfg.Server.MaxDiagnostics
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	}

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Debounce:       time.Duration(cfg.Server.DebounceMS) * time.Millisecond,
		MaxDiagnostics: maxDiagnostics,
		Version:        version.Version,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
