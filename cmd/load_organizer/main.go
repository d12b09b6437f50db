// Package main provides the load_organizer CLI and HTTP API server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/load-organizer/internal/config"
	"github.com/jonathan/load-organizer/internal/logging"
	"github.com/jonathan/load-organizer/internal/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	verbose    bool

	appConfig *config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "load_organizer",
	Short: "Skydiving load organizer",
	Long:  "Load Organizer computes safe exit orders for skydiving aircraft loads, allocates limited seats by priority and summarizes load usage, from the command line or over a REST API.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable reports to stderr and log at debug level")
}

// setup loads configuration and builds the logger shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	switch {
	case logLevel != "":
		cfg.Logging.Level = logLevel
	case verbose:
		cfg.Logging.Level = "debug"
	}

	l, err := logging.New("cli", logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l.With().Str("command", cmd.Name()).Logger()
	return nil
}

// writeOutput marshals v as indented JSON to path, or to the command's stdout when
// path is empty.
func writeOutput(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("wrote output")
	return nil
}

// reporter returns a printer for verbose reports, or nil when --verbose is off.
func reporter(cmd *cobra.Command) *observability.Printer {
	if !verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
