package normalizer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type substitutionFile struct {
	Substitutions []Substitution `yaml:"substitutions"`
}

// LoadSubstitutions reads a substitution table from a YAML file of the form
//
//	substitutions:
//	  - pattern: "км/ч"
//	    replacement: "километров в час"
//	    whole_word: false
//
// Rules keep their file order. Unknown keys are rejected.
func LoadSubstitutions(path string) ([]Substitution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read substitutions: %w", err)
	}
	return ParseSubstitutions(data)
}

// ParseSubstitutions decodes a YAML substitution table. See LoadSubstitutions.
func ParseSubstitutions(data []byte) ([]Substitution, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f substitutionFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode substitutions: %w", err)
	}
	if f.Substitutions == nil {
		f.Substitutions = []Substitution{}
	}
	if _, err := compileRules(f.Substitutions); err != nil {
		return nil, err
	}
	return f.Substitutions, nil
}
