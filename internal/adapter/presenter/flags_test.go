package presenter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

func TestDeriveStepFlags(t *testing.T) {
	tests := []struct {
		name          string
		step          wizard.StepSnapshot
		flowCompleted bool
		navBarOff     bool
		want          StepFlags
	}{
		{
			name: "current",
			step: wizard.StepSnapshot{Selected: true},
			want: StepFlags{Current: true},
		},
		{
			name: "editing",
			step: wizard.StepSnapshot{Selected: true, Completed: true},
			want: StepFlags{Editing: true},
		},
		{
			name: "done and navigable",
			step: wizard.StepSnapshot{Completed: true, ModeNavigable: true},
			want: StepFlags{Done: true, Navigable: true},
		},
		{
			name: "pending required",
			step: wizard.StepSnapshot{},
			want: StepFlags{Default: true},
		},
		{
			name: "pending optional",
			step: wizard.StepSnapshot{Optional: true},
			want: StepFlags{Optional: true},
		},
		{
			name:          "flow completed marks everything done",
			step:          wizard.StepSnapshot{Selected: true, Completed: true},
			flowCompleted: true,
			want:          StepFlags{Done: true},
		},
		{
			name:      "navigation bar disabled",
			step:      wizard.StepSnapshot{Completed: true, ModeNavigable: true},
			navBarOff: true,
			want:      StepFlags{Done: true},
		},
		{
			name: "selected step is never navigable",
			step: wizard.StepSnapshot{Selected: true, ModeNavigable: true},
			want: StepFlags{Current: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStepFlags(tt.step, tt.flowCompleted, tt.navBarOff))
		})
	}
}

func TestDeriveFlagsFromState(t *testing.T) {
	s := wizard.NewState()
	s.Initialize([]*wizard.Step{
		wizard.NewStep("A"),
		wizard.NewStep("B", wizard.WithOptional(true)),
		wizard.NewStep("C"),
	}, "strict", 0, false)
	nav := s.NavigationMode()
	assert.NoError(t, nav.Reset())
	assert.NoError(t, nav.GoToNextStep(context.Background()))

	flags := DeriveFlags(s.Snapshot())
	assert.Equal(t, []StepFlags{
		{Done: true, Navigable: true},
		{Current: true},
		{Default: true},
	}, flags)
}

func TestStepFlagsLabel(t *testing.T) {
	assert.Equal(t, "current", StepFlags{Current: true}.Label())
	assert.Equal(t, "editing", StepFlags{Editing: true}.Label())
	assert.Equal(t, "done", StepFlags{Done: true, Navigable: true}.Label())
	assert.Equal(t, "optional", StepFlags{Optional: true}.Label())
	assert.Equal(t, "default", StepFlags{Default: true}.Label())
	assert.Equal(t, "", StepFlags{}.Label())
}
