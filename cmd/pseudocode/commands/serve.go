package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/server"
	"github.com/teranos/pseudocode/sym"
)

// ServeCmd starts the language server over WebSocket
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   sym.Serve + " Start the language server for browser editors",
	Long: sym.Serve + ` serve — Start the language server for browser editors

Serves LSP over WebSocket at /lsp and a small JSON API:
  GET  /health              server state and catalog size
  GET  /api/catalog         completion entries (?mode= or ?name=)
  POST /api/complete        {"text": ..., "offset": ...}
  GET  /api/render-options  pseudocode.js options and KaTeX macros

Config files and the macros file are watched; edits apply without a restart.
For editors that spawn a process, use 'pseudocode lsp' instead.`,
	RunE: runServe,
}

var (
	servePort    int
	serveNoWatch bool
)

func init() {
	ServeCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	ServeCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "Do not reload config and macros on change")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Default to Info for the server
	verbosity, _ := cmd.Flags().GetCount("verbose")
	if verbosity == 0 {
		verbosity = logger.VerbosityInfo
	}

	cfg, provider, err := loadProvider()
	if err != nil {
		return err
	}
	port := cfg.GetServerPort()
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	printStartupBanner(cmd.OutOrStdout(), verbosity, port, cfg, provider.Bundle())

	srv := server.New(cfg, provider)
	if !serveNoWatch {
		if err := srv.WatchConfig(); err != nil {
			logger.PulseWarnw("Config hot reload disabled", logger.FieldError, err)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		if err != nil {
			return errors.Wrap(err, "server failed to start")
		}
		return nil
	case <-sigChan:
		pterm.Info.Println("\nShutting down gracefully (press Ctrl+C again to force)...")

		shutdownDone := make(chan error, 1)
		go func() {
			shutdownDone <- srv.Stop()
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				return fmt.Errorf("shutdown error: %w", err)
			}
			pterm.Success.Println("Server stopped cleanly")
			return nil
		case <-sigChan:
			pterm.Warning.Println("\nForce shutdown - exiting immediately")
			os.Exit(1)
			return nil
		}
	}
}
