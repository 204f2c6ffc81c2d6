package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dsmmcken/jdkfind/internal/config"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/spf13/cobra"
)

var pinLocalFlag bool

func addPinCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pin <BUCKET> <PATH>",
		Short: "Pin a JDK home as the explicit choice for a bucket",
		Long: `Record PATH as the explicit JDK for BUCKET (JDK_8, 8, JAVA_HOME, ...).

By default the hint is stored in config.toml. Use --local to write it to
gradle.properties in the current directory instead.`,
		Args: cobra.ExactArgs(2),
		RunE: runPin,
	}

	cmd.Flags().BoolVar(&pinLocalFlag, "local", false, "Write gradle.properties in the current directory instead of config.toml")

	parent.AddCommand(cmd)
}

func runPin(cmd *cobra.Command, args []string) error {
	b, ok := jdk.ParseBucket(args[0])
	if !ok {
		err := errors.WithHintf(errors.Newf("unknown bucket %q", args[0]),
			"run 'jdkfind buckets' to list bucket and hint names")
		return errors.Mark(err, ErrConfig)
	}

	// An alias such as JAVA_HOME is pinned under its own name; a bare
	// number or bucket name under the canonical name.
	name := b.String()
	if _, isHint := jdk.LookupHint(args[0]); isHint {
		name = args[0]
	}

	home, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(home)
	if err != nil || !info.IsDir() {
		err := errors.WithHintf(errors.Newf("%s is not a directory", home),
			"pass the JDK home, the directory that contains bin/java")
		return errors.Mark(err, jdk.ErrHintResolution)
	}
	version, _ := jdk.ReadReleaseVersion(home)

	scope := "global"
	path := config.ConfigPath()
	if pinLocalFlag {
		scope = "local"
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		if path, err = config.WriteGradleProperty(cwd, name, home); err != nil {
			return err
		}
	} else {
		if err := config.Set("hints."+name, home); err != nil {
			return errors.Mark(err, ErrConfig)
		}
	}

	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), map[string]any{
			"bucket":      b.String(),
			"hint":        name,
			"home":        home,
			"version":     version,
			"scope":       scope,
			"config_path": path,
		})
	}

	if version != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Pinned %s to %s (%s) in %s\n", name, home, version, path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Pinned %s to %s in %s\n", name, home, path)
	}
	return nil
}
