package debugger

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Script is a debug script.
//
// The script is YAML, or JSON as a subset of
// YAML:
//
//	eachIteration:
//	  - registers R4
//	lineSpecific:
//	  "5": memoryRange 0 8
type Script struct {
	EachIteration []string          `yaml:"eachIteration"` // Actions run on every cycle.
	LineSpecific  map[string]string `yaml:"lineSpecific"`  // Actions keyed by program counter.
}

// LoadScript decodes a debug script. An empty input is an empty script.
func LoadScript(input io.Reader) (script *Script, err error) {
	script = &Script{}

	err = yaml.NewDecoder(input).Decode(script)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		err = errors.Join(ErrScriptSyntax, err)
		script = nil
		return
	}

	return
}
