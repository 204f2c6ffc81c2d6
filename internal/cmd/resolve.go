package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dsmmcken/jdkfind/internal/hints"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/spf13/cobra"
)

var (
	resolveJDKFlags []string
	resolveNoProbe  bool
	resolveStrict   bool
)

func addResolveCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one JDK per major version",
		Long: `Resolve one JDK per major version bucket.

Explicit hints come from --jdk flags, the environment (JDK_8,
ORG_GRADLE_PROJECT_JDK_8, JAVA_HOME, ...), gradle.properties files and
config.toml, in that order. Remaining buckets are filled from the
installations found on this machine, keeping the highest version.`,
		Args: cobra.NoArgs,
		RunE: runResolveCmd,
	}

	cmd.Flags().StringArrayVar(&resolveJDKFlags, "jdk", nil, "Explicit hint as NAME=PATH (repeatable)")
	cmd.Flags().BoolVar(&resolveNoProbe, "no-probe", false, "Skip discovery; use explicit hints only")
	cmd.Flags().BoolVar(&resolveStrict, "strict", false, "Fail when a mandatory JDK is missing")

	parent.AddCommand(cmd)
}

// BucketReport is one row of the resolution output.
type BucketReport struct {
	Bucket    string `json:"bucket" yaml:"bucket"`
	Mandatory bool   `json:"mandatory" yaml:"mandatory"`
	Status    string `json:"status" yaml:"status"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Home      string `json:"home,omitempty" yaml:"home,omitempty"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ResolveReport is the output of the resolve command.
type ResolveReport struct {
	Prober   string         `json:"prober" yaml:"prober"`
	Complete bool           `json:"complete" yaml:"complete"`
	Missing  []string       `json:"missing" yaml:"missing"`
	Buckets  []BucketReport `json:"buckets" yaml:"buckets"`
}

func newResolveReport(res jdk.Resolution, prober string, set hints.Set) ResolveReport {
	report := ResolveReport{Prober: prober, Missing: []string{}}
	for _, b := range jdk.Buckets() {
		row := BucketReport{Bucket: b.String(), Mandatory: b.Mandatory()}
		c, ok := res[b]
		switch {
		case !ok && b.Mandatory():
			row.Status = statusMissing
			report.Missing = append(report.Missing, b.String())
		case !ok:
			row.Status = statusUnset
		case c.Explicit:
			row.Status = statusExplicit
			row.Source = set[c.ID].Source
		default:
			row.Status = statusDiscovered
			row.Source = prober
		}
		if ok {
			row.Version = c.Version
			row.ID = c.ID
			row.Home = c.Home
		}
		report.Buckets = append(report.Buckets, row)
	}
	report.Complete = len(report.Missing) == 0
	return report
}

func runResolveCmd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	result, set, err := s.resolve(resolveJDKFlags, resolveNoProbe)
	if err != nil {
		return err
	}
	report := newResolveReport(result.Resolution, result.Prober, set)

	if output.IsStructured() {
		if err := output.PrintStructured(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		printResolveTable(cmd, report)
	}

	if resolveStrict {
		return result.Resolution.Check()
	}
	return nil
}

func printResolveTable(cmd *cobra.Command, report ResolveReport) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUCKET\tVERSION\tHOME\tSOURCE\tSTATUS")
	for _, r := range report.Buckets {
		version, home, source := r.Version, r.Home, r.Source
		if version == "" {
			version = "-"
		}
		if home == "" {
			home = "-"
		}
		if source == "" {
			source = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Bucket, version, home, source, paint(statusStyle(r.Status), r.Status))
	}
	w.Flush()

	if output.IsQuiet() {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout())
	if report.Complete {
		fmt.Fprintln(cmd.OutOrStdout(), "All mandatory JDKs resolved.")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Missing mandatory JDKs: %s\n", strings.Join(report.Missing, ", "))
	}
}
