package workflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml names so messages match the definition file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// LoadWorkflow loads and validates a wizard definition from path on fs
func LoadWorkflow(ctx context.Context, fs afero.Fs, path string) (*Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("workflow: read: %w", err)
	}
	return ParseWorkflow(data)
}

// ParseWorkflow parses and validates a wizard definition
func ParseWorkflow(data []byte) (*Workflow, error) {
	// Parse YAML with strict field checking
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var wf Workflow
	if err := dec.Decode(&wf); err != nil {
		return nil, fmt.Errorf("workflow: parse: %w", err)
	}

	normalizeWorkflow(&wf)

	if err := validate.Struct(&wf); err != nil {
		return nil, describeValidationError(err)
	}

	if err := validateSteps(&wf); err != nil {
		return nil, err
	}

	if err := applyDefaultSelected(&wf); err != nil {
		return nil, err
	}

	return &wf, nil
}

// normalizeWorkflow trims and NFC-normalises user supplied text so ids
// typed on different platforms compare equal. A missing step id is derived
// from the title.
func normalizeWorkflow(wf *Workflow) {
	wf.Name = normalizeText(wf.Name)
	wf.NavigationMode = strings.TrimSpace(wf.NavigationMode)
	for i := range wf.Steps {
		step := &wf.Steps[i]
		step.ID = normalizeText(step.ID)
		step.Title = normalizeText(step.Title)
		if step.ID == "" && step.Title != "" {
			step.ID = slug.Make(step.Title)
		}
		step.NavigationSymbol = normalizeText(step.NavigationSymbol)
		if name, ok := step.CanEnter.(string); ok {
			step.CanEnter = normalizeText(name)
		}
		if name, ok := step.CanExit.(string); ok {
			step.CanExit = normalizeText(name)
		}
	}
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// describeValidationError reports the first failed rule in the
// positional "workflow.steps[i]" style.
func describeValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("workflow: validate: %w", err)
	}

	fe := verrs[0]
	ns := strings.TrimPrefix(fe.Namespace(), "Workflow.")
	prefix := "workflow"
	if i := strings.LastIndex(ns, "."); i >= 0 {
		prefix = "workflow." + ns[:i]
	}
	field := fe.Field()

	switch {
	case fe.Kind() == reflect.Slice:
		return fmt.Errorf(`%s: "%s" must be a non-empty array`, prefix, field)
	case fe.Tag() == "required":
		return fmt.Errorf(`%s: "%s" is required`, prefix, field)
	case fe.Tag() == "gte":
		return fmt.Errorf(`%s: "%s" must be >= %s`, prefix, field, fe.Param())
	default:
		return fmt.Errorf(`%s: "%s" failed %q`, prefix, field, fe.Tag())
	}
}

func validateSteps(wf *Workflow) error {
	if wf.DefaultStepIndex >= len(wf.Steps) {
		return fmt.Errorf(`workflow: "default_step_index" %d is out of range (steps=%d)`, wf.DefaultStepIndex, len(wf.Steps))
	}

	seen := make(map[string]struct{})
	for i, step := range wf.Steps {
		idx := fmt.Sprintf("workflow.steps[%d]", i)

		if _, exists := seen[step.ID]; exists {
			return fmt.Errorf(`%s: duplicate id "%s"`, idx, step.ID)
		}
		seen[step.ID] = struct{}{}

		if step.EnableBackLinks && !step.Completion {
			return fmt.Errorf(`%s: "enable_back_links" is only allowed on completion steps`, idx)
		}

		if err := checkGuardValue(step.CanEnter); err != nil {
			return fmt.Errorf(`%s: "can_enter": %w`, idx, err)
		}
		if err := checkGuardValue(step.CanExit); err != nil {
			return fmt.Errorf(`%s: "can_exit": %w`, idx, err)
		}
	}
	return nil
}

// checkGuardValue accepts what a definition can express: nothing, a bool or a guard name.
func checkGuardValue(v interface{}) error {
	switch g := v.(type) {
	case nil, bool:
		return nil
	case string:
		if g == "" {
			return errors.New("guard name must not be empty")
		}
		return nil
	default:
		return wizard.ErrInvalidGuardType.WithDetails(map[string]interface{}{
			"type": fmt.Sprintf("%T", v),
		})
	}
}

// applyDefaultSelected lets a step marked default_selected override default_step_index.
func applyDefaultSelected(wf *Workflow) error {
	selected := -1
	for i, step := range wf.Steps {
		if !step.DefaultSelected {
			continue
		}
		if selected >= 0 {
			return fmt.Errorf(`workflow.steps[%d]: "default_selected" already set on steps[%d]`, i, selected)
		}
		selected = i
	}
	if selected >= 0 {
		wf.DefaultStepIndex = selected
	}
	return nil
}
