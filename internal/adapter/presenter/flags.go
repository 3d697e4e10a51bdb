package presenter

import "github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"

// StepFlags are the per-step booleans a navigation bar renders
type StepFlags struct {
	Current   bool `json:"current" yaml:"current"`
	Done      bool `json:"done" yaml:"done"`
	Editing   bool `json:"editing" yaml:"editing"`
	Default   bool `json:"default" yaml:"default"`
	Optional  bool `json:"optional" yaml:"optional"`
	Navigable bool `json:"navigable" yaml:"navigable"`
}

// DeriveStepFlags computes the flags of one step
func DeriveStepFlags(step wizard.StepSnapshot, flowCompleted, navigationBarDisabled bool) StepFlags {
	return StepFlags{
		Current:   step.Selected && !step.Completed && !flowCompleted,
		Done:      (step.Completed && !step.Selected) || flowCompleted,
		Editing:   step.Selected && step.Completed && !flowCompleted,
		Default:   !step.Optional && !step.Completed && !step.Selected && !flowCompleted,
		Optional:  step.Optional && !step.Completed && !step.Selected && !flowCompleted,
		Navigable: !step.Selected && !navigationBarDisabled && step.ModeNavigable,
	}
}

// DeriveFlags computes the flags of every step of snap
func DeriveFlags(snap wizard.Snapshot) []StepFlags {
	flags := make([]StepFlags, 0, len(snap.Steps))
	for _, step := range snap.Steps {
		flags = append(flags, DeriveStepFlags(step, snap.Completed, snap.NavigationBarDisabled))
	}
	return flags
}

// Label returns the name of the display state, or "" when none applies
func (f StepFlags) Label() string {
	switch {
	case f.Current:
		return "current"
	case f.Editing:
		return "editing"
	case f.Done:
		return "done"
	case f.Optional:
		return "optional"
	case f.Default:
		return "default"
	default:
		return ""
	}
}
