// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/pp-parser/internal/config"
	"fjacquet/pp-parser/internal/container"
	"fjacquet/pp-parser/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Format   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// ConfigFile is an explicit config.yaml path.
	ConfigFile string

	// SharedFlags holds the flags accessible to all commands
	SharedFlags = CommonFlags{}

	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pp-parser",
		Short: "Extract payment orders from PDF files.",
		Long: `pp-parser reads Russian payment orders (платёжные поручения) from PDF files,
extracts payer, recipient, banks, amount, dates and purpose from every page,
and writes them to CSV or XLSX or saves them to PostgreSQL.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer == nil {
				return
			}
			if err := appContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close container")
			}
			appContainer = nil
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.pp-parser, .pp-parser or .)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: csv or xlsx (default: from the output extension, then config)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate PDF structure before extraction")
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Failed to load .env file")
	}

	cfg, err := config.LoadConfig(ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.Validate {
		cfg.PDF.Validate = true
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	appContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogger returns the shared logger.
func GetLogger() logging.Logger {
	return Log
}
