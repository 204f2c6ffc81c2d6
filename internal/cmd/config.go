package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/dsmmcken/jdkfind/internal/config"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/spf13/cobra"
)

func addConfigCommands(parent *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View and edit settings",
		Long:  "Read and write config.toml. Keys: probe.disabled, probe.extra_roots, hints.<NAME>.",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "get <KEY>",
		Short: "Print a config value",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "set <KEY> <VALUE>",
		Short: "Set a config value (an empty value removes a hint)",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all config values",
		Args:  cobra.NoArgs,
		RunE:  runConfigList,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output.IsStructured() {
				return output.PrintStructured(cmd.OutOrStdout(), map[string]string{"config_path": config.ConfigPath()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.ConfigPath())
			return nil
		},
	})

	parent.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := config.Get(args[0])
	if err != nil {
		return errors.Mark(err, ErrConfig)
	}
	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), map[string]string{"key": args[0], "value": value})
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := config.Set(args[0], args[1]); err != nil {
		return errors.Mark(err, ErrConfig)
	}
	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), map[string]string{"key": args[0], "value": args[1]})
	}
	if !output.IsQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
	}
	return nil
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Mark(err, ErrConfig)
	}

	values := make(map[string]string)
	keys := config.Keys(cfg)
	for _, k := range keys {
		v, err := config.GetField(cfg, k)
		if err != nil {
			return err
		}
		values[k] = v
	}

	if output.IsStructured() {
		return output.PrintStructured(cmd.OutOrStdout(), values)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, values[k])
	}
	return w.Flush()
}
