package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ValidOutput reports whether o is a known output format.
func ValidOutput(o string) bool {
	switch o {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// Structured writes v as JSON or YAML.
func Structured(w io.Writer, format string, v interface{}) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Writer returns w, or stdout when w is nil.
func Writer(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
