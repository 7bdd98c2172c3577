// Package history builds named trees of persistent stacks from a declarative
// script, and inspects them: rendering, fingerprinting, frame walks and branch
// points.
package history

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Script is the decoded form of a history file.
//
//	roots: [base]
//	handles:
//	  - name: a
//	    from: base
//	    push: ["hoge a"]
//
// Every handle derives from a root or from a handle declared above it.
type Script struct {
	Roots   []string     `json:"roots"`
	Handles []HandleSpec `json:"handles"`
}

// HandleSpec declares one named handle: the values in Push are pushed, in order, onto the
// handle named From.
type HandleSpec struct {
	Name string   `json:"name"`
	From string   `json:"from"`
	Push []string `json:"push,omitempty"`
}

// ParseScript decodes a YAML (or JSON) history script. Unknown fields are rejected.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.UnmarshalStrict(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse history script: %w", err)
	}
	return &script, nil
}

// LoadScript reads and decodes the history script at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history script: %w", err)
	}
	return ParseScript(data)
}
