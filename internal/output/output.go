package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes
const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitConfig      = 2
	ExitNotFound    = 4
	ExitInterrupted = 130
)

var (
	flagJSON    bool
	flagYAML    bool
	flagQuiet   bool
	flagVerbose bool
)

// SetFlags is called by the root command's PersistentPreRun to propagate flag values.
func SetFlags(jsonMode, yamlMode, quiet, verbose bool) {
	flagJSON = jsonMode
	flagYAML = yamlMode
	flagQuiet = quiet
	flagVerbose = verbose
}

// IsJSON returns true when --json mode is active.
func IsJSON() bool { return flagJSON }

// IsYAML returns true when --yaml mode is active.
func IsYAML() bool { return flagYAML }

// IsStructured returns true when output goes to a machine-readable format.
func IsStructured() bool { return flagJSON || flagYAML }

// IsQuiet returns true when --quiet mode is active.
func IsQuiet() bool { return flagQuiet }

// IsVerbose returns true when --verbose mode is active.
func IsVerbose() bool { return flagVerbose }

// PrintJSON marshals v as JSON and writes it to w.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// PrintYAML marshals v as YAML and writes it to w.
func PrintYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// PrintStructured writes v in the active structured format.
func PrintStructured(w io.Writer, v any) error {
	if flagYAML {
		return PrintYAML(w, v)
	}
	return PrintJSON(w, v)
}

// PrintError writes a structured error envelope to w.
func PrintError(w io.Writer, code string, message string) error {
	return PrintStructured(w, map[string]string{
		"error":   code,
		"message": message,
	})
}
