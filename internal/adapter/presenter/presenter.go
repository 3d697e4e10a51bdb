package presenter

import (
	"fmt"
	"io"
	"strings"
)

// Presenter renders command results
type Presenter interface {
	// PresentSuccess presents a successful result
	PresentSuccess(message string, data interface{}) error

	// PresentError presents an error and returns it
	PresentError(err error) error
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// New creates the presenter for format
func New(format string, output io.Writer) (Presenter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewTextPresenter(output), nil
	case FormatJSON:
		return NewJSONPresenter(output), nil
	case FormatYAML:
		return NewYAMLPresenter(output), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (want text, json or yaml)", format)
	}
}
