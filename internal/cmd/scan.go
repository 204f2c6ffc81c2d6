package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/dsmmcken/jdkfind/internal/probe"
	"github.com/spf13/cobra"
)

func addScanCommand(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "scan",
		Short: "List JDK installations found on this machine",
		Long:  "List every installation the platform probe reports, before any per-bucket selection.",
		Args:  cobra.NoArgs,
		RunE:  runScan,
	})
}

// ScanEntry is one discovered installation with its bucket, if any.
type ScanEntry struct {
	probe.Installation `yaml:",inline"`
	Bucket             string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
}

// ScanReport is the output of the scan command.
type ScanReport struct {
	Prober        string      `json:"prober" yaml:"prober"`
	Installations []ScanEntry `json:"installations" yaml:"installations"`
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	p := s.prober(false)
	report := ScanReport{Prober: p.Name(), Installations: []ScanEntry{}}
	for _, inst := range p.Enumerate() {
		entry := ScanEntry{Installation: inst}
		if b, err := jdk.ExtractMajorBucket(inst.Version); err == nil {
			entry.Bucket = b.String()
		}
		report.Installations = append(report.Installations, entry)
	}

	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), report)
	}

	if len(report.Installations) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No JDK installations found (probe: %s).\n", report.Prober)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tBUCKET\tID\tHOME")
	for _, e := range report.Installations {
		bucket := e.Bucket
		if bucket == "" {
			bucket = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Version, bucket, e.ID, e.Home)
	}
	return w.Flush()
}
