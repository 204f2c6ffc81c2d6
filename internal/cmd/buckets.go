package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/spf13/cobra"
)

func addBucketsCommand(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "buckets",
		Short: "List the major version buckets and their hint names",
		Args:  cobra.NoArgs,
		RunE:  runBuckets,
	})
}

// BucketInfo describes one bucket of the table.
type BucketInfo struct {
	Name      string   `json:"name" yaml:"name"`
	Major     int      `json:"major" yaml:"major"`
	Mandatory bool     `json:"mandatory" yaml:"mandatory"`
	Hints     []string `json:"hints" yaml:"hints"`
}

func runBuckets(cmd *cobra.Command, args []string) error {
	var infos []BucketInfo
	for _, b := range jdk.Buckets() {
		infos = append(infos, BucketInfo{
			Name:      b.String(),
			Major:     b.Major(),
			Mandatory: b.Mandatory(),
			Hints:     b.HintNames(),
		})
	}

	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), infos)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUCKET\tMAJOR\tMANDATORY\tHINTS")
	for _, i := range infos {
		mandatory := "no"
		if i.Mandatory {
			mandatory = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", i.Name, i.Major, mandatory, strings.Join(i.Hints, ", "))
	}
	return w.Flush()
}
