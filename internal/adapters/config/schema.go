package config

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Fanfile represents the structure of the fanout.yaml configuration file.
type Fanfile struct {
	Version      string                    `yaml:"version"`
	Targets      []string                  `yaml:"targets"`
	Dest         string                    `yaml:"dest"`
	Files        string                    `yaml:"files"`
	OverridesDir string                    `yaml:"overridesDir"`
	Extension    string                    `yaml:"extension"`
	Concurrency  int                       `yaml:"concurrency"`
	Parser       Command                   `yaml:"parser"`
	Plugins      PluginsDTO                `yaml:"plugins"`
	Options      map[string]map[string]any `yaml:"options"`
}

// PluginsDTO represents the external collaborator commands.
type PluginsDTO struct {
	Transpiler    Command `yaml:"transpiler"`
	PostProcessor Command `yaml:"postprocessor"`
	Context       Command `yaml:"context"`
}

// Command is an argv. It is written either as a sequence or as a single
// string split on whitespace.
type Command []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Command) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = strings.Fields(node.Value)
		return nil
	case yaml.SequenceNode:
		var args []string
		if err := node.Decode(&args); err != nil {
			return err
		}
		*c = args
		return nil
	default:
		return zerr.With(zerr.New("command must be a string or a list of strings"), "line", node.Line)
	}
}
