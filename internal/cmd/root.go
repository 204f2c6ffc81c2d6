package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsmmcken/jdkfind/internal/config"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/dsmmcken/jdkfind/internal/resolve"
	"github.com/dsmmcken/jdkfind/internal/tui"
	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	jsonFlag    bool
	yamlFlag    bool
	verboseFlag bool
	quietFlag   bool
	noColorFlag bool
	ConfigDir   string
)

func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addResolveCommand(cmd)
	addScanCommand(cmd)
	addBucketsCommand(cmd)
	addCompareCommand(cmd)
	addPinCommand(cmd)
	addConfigCommands(cmd)
	addDoctorCommand(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jdkfind",
		Short:         "Locate JDK installations for a build",
		Long:          "jdkfind resolves one JDK per major version (6 through 11) from explicit hints and the installations found on this machine.",
		Version:       fmt.Sprintf("jdkfind v%s", Version),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verboseFlag && quietFlag {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			if jsonFlag && yamlFlag {
				return fmt.Errorf("--json and --yaml are mutually exclusive")
			}
			if jsonFlag || yamlFlag {
				quietFlag = true
			}
			output.SetFlags(jsonFlag, yamlFlag, quietFlag, verboseFlag)
			config.SetConfigDir(ConfigDir)
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fi, _ := os.Stdin.Stat()
			isTTY := fi != nil && (fi.Mode()&os.ModeCharDevice) != 0
			if !isTTY || output.IsStructured() {
				return cmd.Help()
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			// The TUI owns the terminal, so engine diagnostics are dropped.
			s.log.SetOutput(io.Discard)
			run := func() (*resolve.Result, error) {
				res, _, err := s.resolve(nil, false)
				return res, err
			}

			p := tea.NewProgram(tui.NewApp(run), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVarP(&jsonFlag, "json", "j", false, "Output as JSON")
	pflags.BoolVar(&yamlFlag, "yaml", false, "Output as YAML")
	pflags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log probe diagnostics to stderr")
	pflags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")
	pflags.BoolVar(&noColorFlag, "no-color", false, "Disable ANSI colors")
	pflags.StringVar(&ConfigDir, "config-dir", "", "Override config directory (default: $XDG_CONFIG_HOME/jdkfind)")

	// Environment variable bindings
	if v := os.Getenv("JDKFIND_HOME"); v != "" && ConfigDir == "" {
		ConfigDir = v
	}
	if os.Getenv("NO_COLOR") != "" {
		noColorFlag = true
	}
	if os.Getenv("JDKFIND_JSON") == "1" {
		jsonFlag = true
	}

	return rootCmd
}

// ExpandArgs rewrites the shorthand `jdkfind --jdk NAME=PATH ...` into
// `jdkfind resolve --jdk NAME=PATH ...`. Other argument lists are returned
// unchanged.
func ExpandArgs(args []string) []string {
	if len(args) > 0 && (args[0] == "--jdk" || strings.HasPrefix(args[0], "--jdk=")) {
		return slices.Concat([]string{"resolve"}, args)
	}
	return args
}

func Execute() error {
	cmd := NewRootCmd()
	cmd.SetArgs(ExpandArgs(os.Args[1:]))
	return cmd.Execute()
}
