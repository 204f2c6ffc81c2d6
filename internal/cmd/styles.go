package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dsmmcken/jdkfind/internal/tui"
)

// paint renders s in style st unless colors are disabled.
func paint(st lipgloss.Style, s string) string {
	if noColorFlag {
		return s
	}
	return st.Render(s)
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case statusOK, statusExplicit, statusDiscovered:
		return tui.StyleFound
	case statusWarning:
		return tui.StyleWarning
	case statusError, statusMissing:
		return tui.StyleMissing
	}
	return tui.StyleOptional
}

const (
	statusOK         = "ok"
	statusWarning    = "warning"
	statusError      = "error"
	statusExplicit   = "explicit"
	statusDiscovered = "discovered"
	statusMissing    = "missing"
	statusUnset      = "not found"
)
