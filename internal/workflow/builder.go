package workflow

import (
	"fmt"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

// BuildSteps creates wizard steps from the definition. Named guards are
// resolved against registry; a nil registry only allows boolean guards.
func (wf *Workflow) BuildSteps(registry *GuardRegistry) ([]*wizard.Step, error) {
	steps := make([]*wizard.Step, 0, len(wf.Steps))
	for i, def := range wf.Steps {
		idx := fmt.Sprintf("workflow.steps[%d]", i)

		opts := []wizard.StepOption{
			wizard.WithID(def.ID),
			wizard.WithNavigationSymbol(def.NavigationSymbol),
			wizard.WithOptional(def.Optional),
			wizard.WithDefaultSelected(def.DefaultSelected),
		}

		if def.CanEnter != nil {
			g, err := resolveGuard(def.CanEnter, registry)
			if err != nil {
				return nil, fmt.Errorf(`%s: "can_enter": %w`, idx, err)
			}
			opts = append(opts, wizard.WithCanEnter(g))
		}
		if def.CanExit != nil {
			g, err := resolveGuard(def.CanExit, registry)
			if err != nil {
				return nil, fmt.Errorf(`%s: "can_exit": %w`, idx, err)
			}
			opts = append(opts, wizard.WithCanExit(g))
		}

		var step *wizard.Step
		if def.Completion {
			step = wizard.NewCompletionStep(def.Title, opts...)
			if def.EnableBackLinks {
				step.EnableBackLinks()
			}
		} else {
			step = wizard.NewStep(def.Title, opts...)
		}
		steps = append(steps, step)
	}
	return steps, nil
}
