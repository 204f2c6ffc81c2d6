package cmd

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
)

// ErrConfig marks failures loading or applying configuration.
var ErrConfig = errors.New("configuration error")

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return output.ExitSuccess
	case errors.Is(err, jdk.ErrMandatoryMissing):
		return output.ExitNotFound
	case errors.Is(err, jdk.ErrHintResolution), errors.Is(err, ErrConfig):
		return output.ExitConfig
	default:
		return output.ExitError
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, jdk.ErrMandatoryMissing):
		return "mandatory_missing"
	case errors.Is(err, jdk.ErrHintResolution):
		return "hint_unresolved"
	case errors.Is(err, ErrConfig):
		return "config"
	default:
		return "error"
	}
}

// ReportError writes err to w, either as a structured envelope or as text
// followed by any attached hints.
func ReportError(w io.Writer, err error) {
	if output.IsStructured() {
		_ = output.PrintError(w, errorCode(err), err.Error())
		return
	}
	fmt.Fprintln(w, "Error:", err)
	for _, h := range errors.GetAllHints(err) {
		fmt.Fprintln(w, "Hint:", h)
	}
}
