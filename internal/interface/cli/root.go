package cli

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/wizardnav/internal/app"
	"github.com/YoshitsuguKoike/wizardnav/internal/interface/cli/version"
)

// EnvLogLevel sets the default of --log-level
const EnvLogLevel = "WIZARDNAV_LOG_LEVEL"

type rootOptions struct {
	fs       afero.Fs
	logLevel string
}

// NewRoot creates the wizardnav command tree backed by the OS filesystem
func NewRoot() *cobra.Command {
	return newRoot(afero.NewOsFs())
}

func newRoot(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	defaultLevel := "info"
	if lv := os.Getenv(EnvLogLevel); lv != "" {
		defaultLevel = lv
	}

	cmd := &cobra.Command{
		Use:           "wizardnav",
		Short:         "Wizard navigation engine CLI",
		Long:          "Validate wizard definitions and simulate navigation through them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.SetupLogger(opts.logLevel, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaultLevel,
		"Log level (debug, info, warn, error); defaults to $"+EnvLogLevel)

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newSimulateCmd(opts))
	cmd.AddCommand(version.NewCommand())
	return cmd
}
