package app

import (
	"fmt"
	"log/slog"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
	"github.com/YoshitsuguKoike/wizardnav/internal/workflow"
)

// Session is one running wizard flow built from a workflow definition
type Session struct {
	ID       string
	Workflow *workflow.Workflow
	State    *wizard.State
	Journal  *Journal

	registry *workflow.GuardRegistry
	logger   *slog.Logger
	detach   func()
}

// NewSession builds the steps of wf, initialises the state and enters the
// default step
func NewSession(wf *workflow.Workflow, registry *workflow.GuardRegistry, logger *slog.Logger) (*Session, error) {
	if wf == nil {
		return nil, fmt.Errorf("session: workflow is required")
	}
	if logger == nil {
		logger = GetLogger()
	}

	steps, err := wf.BuildSteps(registry)
	if err != nil {
		return nil, fmt.Errorf("session: build steps: %w", err)
	}

	id := NewSessionID()
	logger = WithModule(logger, "wizard").With("session", id)

	s := &Session{
		ID:       id,
		Workflow: wf,
		State:    wizard.NewState(wizard.WithLogger(logger)),
		Journal:  NewJournal(id),
		registry: registry,
		logger:   logger,
	}
	s.detach = s.Journal.Attach(s.State)

	s.State.Initialize(steps, wf.NavigationMode, wf.DefaultStepIndex, wf.DisableNavigationBar)
	if err := s.Navigation().Reset(); err != nil {
		s.detach()
		return nil, fmt.Errorf("session: reset: %w", err)
	}

	logger.Debug("session started", "workflow", wf.Name, "steps", len(steps))
	return s, nil
}

// Navigation returns the active navigation mode
func (s *Session) Navigation() wizard.NavigationMode {
	return s.State.NavigationMode()
}

// Reload applies a new definition to the running session. Steps whose id and
// kind are unchanged keep their object, progress and listeners; their
// title, navigation symbol, flags and guards are updated from the new definition.
func (s *Session) Reload(wf *workflow.Workflow, registry *workflow.GuardRegistry) error {
	if wf == nil {
		return fmt.Errorf("session: workflow is required")
	}
	if registry == nil {
		registry = s.registry
	}

	built, err := wf.BuildSteps(registry)
	if err != nil {
		return fmt.Errorf("session: build steps: %w", err)
	}

	existing := make(map[string]*wizard.Step)
	for _, step := range s.State.Steps() {
		if step.ID() != "" {
			existing[step.ID()] = step
		}
	}

	steps := make([]*wizard.Step, 0, len(built))
	for _, next := range built {
		prev, ok := existing[next.ID()]
		if !ok || prev.Kind() != next.Kind() {
			steps = append(steps, next)
			continue
		}
		prev.SetPresentation(next.Title(), next.NavigationSymbol())
		prev.SetDefaultSelected(next.IsDefaultSelected())
		prev.SetOptional(next.IsOptional())
		prev.SetCanEnter(next.CanEnter())
		prev.SetCanExit(next.CanExit())
		steps = append(steps, prev)
	}

	s.State.Initialize(steps, wf.NavigationMode, wf.DefaultStepIndex, wf.DisableNavigationBar)
	s.Workflow = wf
	s.registry = registry
	s.logger.Debug("session reloaded", "workflow", wf.Name, "steps", len(steps))
	return nil
}

// Close stops journal recording
func (s *Session) Close() {
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}
