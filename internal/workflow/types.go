package workflow

// Step represents a single step of a wizard workflow definition
type Step struct {
	ID               string `yaml:"id" validate:"required"`
	Title            string `yaml:"title" validate:"required"`
	NavigationSymbol string `yaml:"navigation_symbol,omitempty"`
	Optional         bool   `yaml:"optional,omitempty"`
	Completion       bool   `yaml:"completion,omitempty"`
	DefaultSelected  bool   `yaml:"default_selected,omitempty"`
	EnableBackLinks  bool   `yaml:"enable_back_links,omitempty"`

	// CanEnter and CanExit hold a bool or the name of a registered guard
	CanEnter interface{} `yaml:"can_enter,omitempty"`
	CanExit  interface{} `yaml:"can_exit,omitempty"`
}

// Workflow represents the complete wizard definition
type Workflow struct {
	Name                 string `yaml:"name" validate:"required"`
	NavigationMode       string `yaml:"navigation_mode,omitempty"`
	DefaultStepIndex     int    `yaml:"default_step_index" validate:"gte=0"`
	DisableNavigationBar bool   `yaml:"disable_navigation_bar,omitempty"`
	Steps                []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// StepIDs returns the step ids in declaration order
func (wf *Workflow) StepIDs() []string {
	ids := make([]string, 0, len(wf.Steps))
	for _, s := range wf.Steps {
		ids = append(ids, s.ID)
	}
	return ids
}
