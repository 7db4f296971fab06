package ufmt

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadVars populates c with the variables of a flat YAML mapping. Each
// value is stringified at set-time exactly as SetVar would, so registered
// formatters apply. Keys already present are overwritten.
func LoadVars(c VarContext, data []byte) error {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, v := range m {
		c.SetVar(k, v)
	}
	return nil
}

// LoadVarsFile reads path and populates c via LoadVars.
func LoadVarsFile(c VarContext, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return LoadVars(c, data)
}
