package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/wizardnav/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/wizardnav/internal/app"
	"github.com/YoshitsuguKoike/wizardnav/internal/workflow"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a wizard definition",
		Long: "Load a wizard definition, check its schema and guards, and verify " +
			"that the navigation mode accepts its default step",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := presenter.New(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			wf, err := workflow.LoadWorkflow(cmd.Context(), root.fs, args[0])
			if err != nil {
				return p.PresentError(err)
			}

			// Starting a session runs the mode's reset checks on the default step.
			sess, err := app.NewSession(wf, workflow.NewDefaultGuardRegistry(), app.GetLogger())
			if err != nil {
				return p.PresentError(err)
			}
			sess.Close()

			return p.PresentSuccess(fmt.Sprintf("%s: workflow %q is valid", args[0], wf.Name), wf)
		},
	}
	cmd.Flags().StringVar(&format, "format", presenter.FormatText, "Output format (text, json or yaml)")
	return cmd
}
