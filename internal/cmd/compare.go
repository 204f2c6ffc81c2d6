package cmd

import (
	"fmt"

	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/spf13/cobra"
)

func addCompareCommand(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "compare <A> <B>",
		Short: "Compare two JDK version strings",
		Long:  "Compare two version strings the way candidates are ranked. Prints -1, 0 or 1.",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompare,
	})
}

// VersionInfo is how one version string parses.
type VersionInfo struct {
	Raw        string `json:"raw" yaml:"raw"`
	Bucket     string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Components []int  `json:"components" yaml:"components"`
}

// CompareReport is the output of the compare command.
type CompareReport struct {
	Left   VersionInfo `json:"left" yaml:"left"`
	Right  VersionInfo `json:"right" yaml:"right"`
	Result int         `json:"result" yaml:"result"`
}

func describeVersion(raw string) VersionInfo {
	info := VersionInfo{Raw: raw, Components: jdk.ExtractNumericComponents(raw)}
	if info.Components == nil {
		info.Components = []int{}
	}
	if b, err := jdk.ExtractMajorBucket(raw); err == nil {
		info.Bucket = b.String()
	}
	return info
}

func runCompare(cmd *cobra.Command, args []string) error {
	report := CompareReport{
		Left:   describeVersion(args[0]),
		Right:  describeVersion(args[1]),
		Result: jdk.CompareVersions(args[0], args[1]),
	}

	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), report)
	}

	if output.IsQuiet() {
		fmt.Fprintln(cmd.OutOrStdout(), report.Result)
		return nil
	}

	op := "="
	switch report.Result {
	case -1:
		op = "<"
	case 1:
		op = ">"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], op, args[1])
	for _, v := range []VersionInfo{report.Left, report.Right} {
		bucket := v.Bucket
		if bucket == "" {
			bucket = "no bucket"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %v (%s)\n", v.Raw, v.Components, bucket)
	}
	return nil
}
