// Package script decodes YAML action scripts and replays them against a
// store. Steps may bind the id an ADD_* step generates with `as: name` and
// refer to it later as `$name`.
package script

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step is one action in a script
type Step struct {
	Type        string `yaml:"type" json:"type"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	ID          string `yaml:"id,omitempty" json:"id,omitempty"`
	Project     string `yaml:"project,omitempty" json:"project,omitempty"`
	Column      string `yaml:"column,omitempty" json:"column,omitempty"`
	As          string `yaml:"as,omitempty" json:"as,omitempty"`

	// Line is the source line of the step, zero when built in code
	Line int `yaml:"-" json:"-"`
}

// Script is a named, ordered list of steps
type Script struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Parse decodes a script document. The document is either a mapping with
// a `steps` list or a bare list of steps. JSON input works as well since
// it is valid YAML.
func Parse(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyScript
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrEmptyScript
	}
	root := doc.Content[0]

	var s Script
	var stepNodes []*yaml.Node
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&s.Steps); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		stepNodes = root.Content
	case yaml.MappingNode:
		if err := root.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		stepNodes = stepsNode(root)
	default:
		return nil, fmt.Errorf("%w: line %d: expected a list of steps or a mapping", ErrDecode, root.Line)
	}

	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	for i := range s.Steps {
		if i < len(stepNodes) {
			s.Steps[i].Line = stepNodes[i].Line
		}
		s.Steps[i].Type = strings.TrimSpace(s.Steps[i].Type)
		if s.Steps[i].Type == "" {
			return nil, s.Steps[i].errorf(i, ErrMissingType)
		}
	}
	return &s, nil
}

// ParseFile reads and decodes a script file
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func stepsNode(mapping *yaml.Node) []*yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == "steps" {
			return mapping.Content[i+1].Content
		}
	}
	return nil
}

// errorf wraps err with the step's position
func (s Step) errorf(index int, err error) error {
	kind := s.Type
	if kind == "" {
		kind = "untyped"
	}
	if s.Line > 0 {
		return fmt.Errorf("step %d (%s, line %d): %w", index+1, kind, s.Line, err)
	}
	return fmt.Errorf("step %d (%s): %w", index+1, kind, err)
}
