package presenter

import (
	"github.com/YoshitsuguKoike/wizardnav/internal/app"
	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

// StepView is a step snapshot with its derived flags
type StepView struct {
	wizard.StepSnapshot `yaml:",inline"`
	Flags               StepFlags `json:"flags" yaml:"flags"`
}

// TransitionView describes the most recent transition request
type TransitionView struct {
	From      int    `json:"from" yaml:"from"`
	To        int    `json:"to" yaml:"to"`
	Direction string `json:"direction" yaml:"direction"`
	Accepted  bool   `json:"accepted" yaml:"accepted"`
}

// SessionView is the presentable state of a session
type SessionView struct {
	Session               string             `json:"session" yaml:"session"`
	Workflow              string             `json:"workflow" yaml:"workflow"`
	NavigationMode        string             `json:"navigation_mode" yaml:"navigation_mode"`
	CurrentStepIndex      int                `json:"current_step_index" yaml:"current_step_index"`
	DefaultStepIndex      int                `json:"default_step_index" yaml:"default_step_index"`
	Completed             bool               `json:"completed" yaml:"completed"`
	NavigationBarDisabled bool               `json:"navigation_bar_disabled" yaml:"navigation_bar_disabled"`
	Transitions           uint64             `json:"transitions" yaml:"transitions"`
	LastTransition        *TransitionView    `json:"last_transition,omitempty" yaml:"last_transition,omitempty"`
	Steps                 []StepView         `json:"steps" yaml:"steps"`
	Journal               []app.JournalEntry `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// NewSessionView snapshots sess. The journal is included when withJournal is set.
func NewSessionView(sess *app.Session, withJournal bool) *SessionView {
	snap := sess.State.Snapshot()
	flags := DeriveFlags(snap)

	view := &SessionView{
		Session:               sess.ID,
		Workflow:              sess.Workflow.Name,
		NavigationMode:        snap.NavigationMode.String(),
		CurrentStepIndex:      snap.CurrentStepIndex,
		DefaultStepIndex:      snap.DefaultStepIndex,
		Completed:             snap.Completed,
		NavigationBarDisabled: snap.NavigationBarDisabled,
		Transitions:           snap.Transitions,
		Steps:                 make([]StepView, 0, len(snap.Steps)),
	}
	for i, step := range snap.Steps {
		view.Steps = append(view.Steps, StepView{StepSnapshot: step, Flags: flags[i]})
	}
	if t, ok := sess.State.LastTransition(); ok {
		view.LastTransition = &TransitionView{
			From:      t.From,
			To:        t.To,
			Direction: t.Direction.String(),
			Accepted:  t.Accepted,
		}
	}
	if withJournal {
		view.Journal = sess.Journal.Entries()
	}
	return view
}
