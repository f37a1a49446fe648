package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/repogen"
)

// commandTable is every subcommand repogen registers, in help order.
func commandTable(fs afero.Fs) []*cobra.Command {
	return []*cobra.Command{
		MakeRepositoryCmd(fs),
		InitCmd(fs),
		VersionCmd(),
	}
}

// RootCmd creates the root command with every subcommand attached,
// working on the real filesystem.
func RootCmd() *cobra.Command {
	return NewRootCmd(afero.NewOsFs())
}

// NewRootCmd creates the root command with every subcommand reading and
// writing through fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	var verbose bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "repogen",
		Short: "Repository-pattern scaffolding for PHP web applications",
		Long: `repogen generates repository classes and their interfaces.

Without a type it writes a single repository class. With one or more types
(eloquent, query, api) it writes a shared interface plus one implementation
per type. Existing files are never overwritten unless --force is given.`,
		Version:       repogen.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), verbose, logLevel)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides --verbose")

	cmd.AddCommand(commandTable(fs)...)

	return cmd
}

// setupLogging points the global zerolog logger at w. Diagnostics stay
// quiet (warn) unless --verbose or --log-level asks for more.
func setupLogging(w io.Writer, verbose bool, logLevel string) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if logLevel != "" {
		parsed, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		level = parsed
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return nil
}
