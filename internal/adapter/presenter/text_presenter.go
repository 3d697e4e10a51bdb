package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
	"github.com/YoshitsuguKoike/wizardnav/internal/workflow"
)

// TextPresenter formats output as human-readable text
type TextPresenter struct {
	output io.Writer
}

// NewTextPresenter creates a new text presenter
func NewTextPresenter(output io.Writer) Presenter {
	return &TextPresenter{output: output}
}

// PresentSuccess presents a successful result
func (p *TextPresenter) PresentSuccess(message string, data interface{}) error {
	fmt.Fprintf(p.output, "✓ %s\n", message)

	switch v := data.(type) {
	case nil:
	case *SessionView:
		fmt.Fprintln(p.output)
		p.presentSession(v)
	case *workflow.Workflow:
		fmt.Fprintln(p.output)
		p.presentWorkflow(v)
	default:
		fmt.Fprintf(p.output, "\n%+v\n", data)
	}
	return nil
}

// PresentError presents an error
func (p *TextPresenter) PresentError(err error) error {
	fmt.Fprintf(p.output, "✗ Error: %v\n", err)
	return err
}

func (p *TextPresenter) presentSession(v *SessionView) {
	fmt.Fprintf(p.output, "Workflow: %s\n", v.Workflow)
	fmt.Fprintf(p.output, "Session: %s\n", v.Session)
	fmt.Fprintf(p.output, "Mode: %s\n", v.NavigationMode)
	if v.CurrentStepIndex >= 0 && v.CurrentStepIndex < len(v.Steps) {
		fmt.Fprintf(p.output, "Current: %d (%s)\n", v.CurrentStepIndex, stepName(v.Steps[v.CurrentStepIndex]))
	} else {
		fmt.Fprintf(p.output, "Current: %d\n", v.CurrentStepIndex)
	}
	fmt.Fprintf(p.output, "Completed: %t\n", v.Completed)
	fmt.Fprintf(p.output, "Transitions: %d\n", v.Transitions)

	if t := v.LastTransition; t != nil {
		outcome := "accepted"
		if !t.Accepted {
			outcome = "rejected"
		}
		fmt.Fprintf(p.output, "Last: %d -> %d %s (%s)\n", t.From, t.To, outcome, t.Direction)
	}

	fmt.Fprintf(p.output, "\nSteps:\n")
	for _, s := range v.Steps {
		marker := " "
		if s.Selected {
			marker = ">"
		}
		attrs := []string{}
		if label := s.Flags.Label(); label != "" {
			attrs = append(attrs, label)
		}
		if s.Flags.Navigable {
			attrs = append(attrs, "navigable")
		}
		if s.Kind == wizard.StepKindCompletion {
			attrs = append(attrs, "completion")
		}
		fmt.Fprintf(p.output, "  %s [%d] %-16s %s\n", marker, s.Index, stepName(s), strings.Join(attrs, ", "))
	}

	if len(v.Journal) > 0 {
		fmt.Fprintf(p.output, "\nJournal:\n")
		for _, e := range v.Journal {
			fmt.Fprintf(p.output, "  #%d %-7s step=%d", e.Seq, e.Event, e.StepIndex)
			if e.StepID != "" {
				fmt.Fprintf(p.output, " (%s)", e.StepID)
			}
			fmt.Fprintf(p.output, " %s\n", e.Direction)
		}
	}
}

func (p *TextPresenter) presentWorkflow(wf *workflow.Workflow) {
	mode := wf.NavigationMode
	if mode == "" {
		mode = "strict"
	}
	fmt.Fprintf(p.output, "Workflow: %s\n", wf.Name)
	fmt.Fprintf(p.output, "Mode: %s\n", mode)
	fmt.Fprintf(p.output, "Default step: %d\n", wf.DefaultStepIndex)
	fmt.Fprintf(p.output, "Steps: %d\n", len(wf.Steps))
	for i, s := range wf.Steps {
		attrs := []string{}
		if s.Optional {
			attrs = append(attrs, "optional")
		}
		if s.Completion {
			attrs = append(attrs, "completion")
		}
		line := fmt.Sprintf("  [%d] %s: %s", i, s.ID, s.Title)
		if len(attrs) > 0 {
			line += " (" + strings.Join(attrs, ", ") + ")"
		}
		fmt.Fprintln(p.output, line)
	}
}

func stepName(s StepView) string {
	if s.ID != "" {
		return s.ID
	}
	return s.Title
}
