package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/wizardnav/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/wizardnav/internal/app"
	"github.com/YoshitsuguKoike/wizardnav/internal/workflow"
)

// SimulateOptions holds the flags of the simulate command
type SimulateOptions struct {
	Script      string
	Allow       []string
	Deny        []string
	Format      string
	Journal     bool
	JournalFile string
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &SimulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate FILE",
		Short: "Run a scripted navigation session",
		Long: `Run a scripted navigation session against a wizard definition and print the final state.

The script is a comma separated list of commands:
  next, prev, reset, mode NAME, goto N, goto +N, goto -N, goto id:STEP

Rejected transitions are not errors; they leave the current step in place.`,
		Example: `  wizardnav simulate checkout.yaml --script "next,next,goto 0,prev,reset,goto id:pay"
  wizardnav simulate checkout.yaml --script "next,next" --deny pay --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := presenter.New(opts.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			view, err := runSimulate(cmd, root, opts, args[0])
			if err != nil {
				return p.PresentError(err)
			}
			return p.PresentSuccess(fmt.Sprintf("simulated %s", view.Workflow), view)
		},
	}

	cmd.Flags().StringVar(&opts.Script, "script", "", "Navigation commands to run")
	cmd.Flags().StringSliceVar(&opts.Allow, "allow", nil, "Step ids whose entry guard is forced open")
	cmd.Flags().StringSliceVar(&opts.Deny, "deny", nil, "Step ids whose entry guard is forced closed")
	cmd.Flags().StringVar(&opts.Format, "format", presenter.FormatText, "Output format (text, json or yaml)")
	cmd.Flags().BoolVar(&opts.Journal, "journal", false, "Include the step journal in the output")
	cmd.Flags().StringVar(&opts.JournalFile, "journal-file", "", "Append the step journal to this NDJSON file")
	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootOptions, opts *SimulateOptions, path string) (*presenter.SessionView, error) {
	cmds, err := app.ParseScript(opts.Script)
	if err != nil {
		return nil, err
	}

	wf, err := workflow.LoadWorkflow(cmd.Context(), root.fs, path)
	if err != nil {
		return nil, err
	}
	if err := overrideEnterGuards(wf, opts.Allow, true); err != nil {
		return nil, err
	}
	if err := overrideEnterGuards(wf, opts.Deny, false); err != nil {
		return nil, err
	}

	sess, err := app.NewSession(wf, workflow.NewDefaultGuardRegistry(), app.GetLogger())
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := sess.Run(cmd.Context(), cmds); err != nil {
		return nil, err
	}

	if opts.JournalFile != "" {
		if err := app.NewJournalWriter(root.fs, opts.JournalFile).Flush(sess.Journal); err != nil {
			return nil, fmt.Errorf("write journal: %w", err)
		}
	}
	return presenter.NewSessionView(sess, opts.Journal), nil
}

func overrideEnterGuards(wf *workflow.Workflow, ids []string, allowed bool) error {
	for _, id := range ids {
		found := false
		for i := range wf.Steps {
			if wf.Steps[i].ID == id {
				wf.Steps[i].CanEnter = allowed
				found = true
			}
		}
		if !found {
			return fmt.Errorf("unknown step id: %s", id)
		}
	}
	return nil
}
