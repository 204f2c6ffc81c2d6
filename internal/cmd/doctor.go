package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dsmmcken/jdkfind/internal/config"
	"github.com/dsmmcken/jdkfind/internal/hints"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/dsmmcken/jdkfind/internal/resolve"
	"github.com/spf13/cobra"
)

var fixFlag bool

func addDoctorCommand(parent *cobra.Command) {
	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check JDK setup health",
		Long:  "Check the config file, every explicit hint, the platform probe and each version bucket.",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}

	doctorCmd.Flags().BoolVar(&fixFlag, "fix", false, "Remove broken hints from config.toml and print suggestions")

	parent.AddCommand(doctorCmd)
}

// CheckResult holds the result of a single doctor check.
type CheckResult struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"` // "ok", "warning", "error"
	Detail string `json:"detail" yaml:"detail"`

	hint   string
	source string
}

// DoctorReport holds the complete doctor output.
type DoctorReport struct {
	Healthy bool          `json:"healthy" yaml:"healthy"`
	Checks  []CheckResult `json:"checks" yaml:"checks"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	var checks []CheckResult

	s, err := newSession(cmd)
	if err != nil {
		checks = append(checks, CheckResult{Name: "Config", Status: statusError, Detail: err.Error()})
	} else {
		checks = append(checks, checkConfig())
		set, err := s.hints(nil)
		if err != nil {
			return err
		}
		hintChecks := checkHints(set)
		checks = append(checks, hintChecks...)

		if !anyError(hintChecks) {
			result, err := resolve.Run(resolve.Options{
				Hints:  set.Values(),
				Prober: s.prober(false),
				Log:    s.log,
			})
			if err != nil {
				checks = append(checks, CheckResult{Name: "Hints", Status: statusError, Detail: err.Error()})
			} else {
				checks = append(checks, checkProbe(result))
				checks = append(checks, checkBuckets(result.Resolution)...)
			}
		}
	}

	report := DoctorReport{
		Healthy: !anyError(checks),
		Checks:  checks,
	}

	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), report)
	}

	// Human output
	if output.IsQuiet() && report.Healthy {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "jdkfind doctor")
	fmt.Fprintln(cmd.OutOrStdout())

	var warnings, errors int
	for _, c := range checks {
		symbol := "✓" // checkmark
		switch c.Status {
		case statusWarning:
			symbol = "⚠" // warning triangle
			warnings++
		case statusError:
			symbol = "✗" // X mark
			errors++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %-16s %s\n", paint(statusStyle(c.Status), symbol), c.Name, c.Detail)
	}

	fmt.Fprintln(cmd.OutOrStdout())

	if errors > 0 {
		var parts []string
		parts = append(parts, pluralize(errors, "error"))
		if warnings > 0 {
			parts = append(parts, pluralize(warnings, "warning"))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Problems found (%s).\n", strings.Join(parts, ", "))
	} else if warnings > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Everything looks good (%s).\n", pluralize(warnings, "warning"))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Everything looks good.")
	}

	if fixFlag {
		runFixes(cmd, checks)
	}

	return nil
}

func anyError(checks []CheckResult) bool {
	for _, c := range checks {
		if c.Status == statusError {
			return true
		}
	}
	return false
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func checkConfig() CheckResult {
	path := config.ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Config", Status: statusOK, Detail: shortenHome(path) + " (not created yet)"}
	}
	return CheckResult{Name: "Config", Status: statusOK, Detail: shortenHome(path)}
}

// checkHints reports one result per collected hint, in bucket order. Every
// hint must point at a directory. A valid hint shadowed by an earlier name of
// the same bucket is not used.
func checkHints(set hints.Set) []CheckResult {
	var checks []CheckResult
	for _, b := range jdk.Buckets() {
		winner := ""
		for _, name := range b.HintNames() {
			h, ok := set[name]
			if !ok {
				continue
			}
			c := CheckResult{Name: "Hint " + name, hint: name, source: h.Source}
			from := shortenHome(h.Source)
			if winner != "" {
				from += ", shadowed by " + winner
			}
			info, err := os.Stat(strings.TrimSpace(h.Value))
			switch {
			case err != nil:
				c.Status = statusError
				c.Detail = fmt.Sprintf("%s does not exist (from %s)", h.Value, from)
			case !info.IsDir():
				c.Status = statusError
				c.Detail = fmt.Sprintf("%s is not a directory (from %s)", h.Value, from)
			case winner != "":
				c.Status = statusWarning
				c.Detail = fmt.Sprintf("%s ignored, %s takes precedence (from %s)", h.Value, winner, shortenHome(h.Source))
			default:
				c.Status = statusOK
				c.Detail = fmt.Sprintf("%s (from %s)", h.Value, from)
			}
			if winner == "" {
				winner = name
			}
			checks = append(checks, c)
		}
	}
	return checks
}

func checkProbe(result *resolve.Result) CheckResult {
	c := CheckResult{Name: "Probe", Status: statusOK}
	switch {
	case result.Prober == "disabled":
		c.Status = statusWarning
		c.Detail = "discovery disabled"
	case len(result.Discovered) == 0:
		c.Status = statusWarning
		c.Detail = fmt.Sprintf("%s: no installations found", result.Prober)
	default:
		c.Detail = fmt.Sprintf("%s: %d installations found", result.Prober, len(result.Discovered))
	}
	return c
}

func checkBuckets(res jdk.Resolution) []CheckResult {
	var checks []CheckResult
	for _, b := range jdk.Buckets() {
		c := CheckResult{Name: b.String()}
		cand, ok := res[b]
		switch {
		case !ok && b.Mandatory():
			c.Status = statusError
			c.Detail = "not found"
		case !ok:
			c.Status = statusWarning
			c.Detail = "not found (optional)"
		default:
			c.Status = statusOK
			version := cand.Version
			if version == "" {
				version = "unknown version"
			}
			c.Detail = fmt.Sprintf("%s %s", version, shortenHome(cand.Home))
		}
		checks = append(checks, c)
	}
	return checks
}

func shortenHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}

func runFixes(cmd *cobra.Command, checks []CheckResult) {
	for _, c := range checks {
		if c.Status == statusOK {
			continue
		}
		switch {
		case c.hint != "" && c.Status == statusWarning:
			continue
		case c.hint != "" && c.source == config.ConfigPath():
			if err := config.Set("hints."+c.hint, ""); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nFix: Removed broken hint %s from config.toml.\n", c.hint)
			}
		case c.hint != "":
			fmt.Fprintf(cmd.OutOrStdout(), "\nFix: Point %s at an existing JDK home or remove it from %s.\n", c.hint, shortenHome(c.source))
		case c.Name == "Probe" && c.Detail == "discovery disabled":
			fmt.Fprintln(cmd.OutOrStdout(), "\nFix: Run 'jdkfind config set probe.disabled false' to re-enable discovery.")
		case c.Name == "Probe":
			fmt.Fprintln(cmd.OutOrStdout(), "\nFix: Add JDK parent directories with 'jdkfind config set probe.extra_roots <dir>'.")
		case c.Status == statusError:
			if b, ok := jdk.ParseBucket(c.Name); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "\nFix: Install JDK %d, or run 'jdkfind pin %s <PATH>'.\n", b.Major(), b)
			}
		}
	}
}
