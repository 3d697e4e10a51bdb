package presenter

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLPresenter formats output as a YAML document
type YAMLPresenter struct {
	output io.Writer
}

// NewYAMLPresenter creates a new YAML presenter
func NewYAMLPresenter(output io.Writer) Presenter {
	return &YAMLPresenter{output: output}
}

type yamlResult struct {
	Success bool        `yaml:"success"`
	Message string      `yaml:"message,omitempty"`
	Error   string      `yaml:"error,omitempty"`
	Data    interface{} `yaml:"data,omitempty"`
}

// PresentSuccess presents a successful result as YAML
func (p *YAMLPresenter) PresentSuccess(message string, data interface{}) error {
	return p.encode(yamlResult{Success: true, Message: message, Data: data})
}

// PresentError presents an error as YAML
func (p *YAMLPresenter) PresentError(err error) error {
	if encErr := p.encode(yamlResult{Error: err.Error()}); encErr != nil {
		return encErr
	}
	return err
}

func (p *YAMLPresenter) encode(v interface{}) error {
	enc := yaml.NewEncoder(p.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
