package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/vkcapgen/internal/app"
	"github.com/specialistvlad/vkcapgen/internal/config"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitFailure = 1 // the compile failed
	ExitUsage   = 2 // bad flags or missing required input
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// AsExitError maps any error to the exit code the process should use.
func AsExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, config.ErrMissingRequiredInput) {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

// Command is the action selected on the command line.
type Command int

const (
	// CommandNone means help was printed and there is nothing to run.
	CommandNone Command = iota
	CommandGenerate
	CommandSnapshot
)

// options backs every flag of both commands.
type options struct {
	manifest      string
	outH          string
	outC          string
	snapshotOut   string
	xml           []string
	registry      []string
	prefix        string
	ceilingPolicy string
	logFormat     string
	logLevel      string
}

// Parse processes command-line arguments. It returns a validated Config and
// the command to run, CommandNone when help was requested, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, Command, error) {
	slog.Debug("CLI parser started.")

	var (
		cfg     *app.Config
		command = CommandNone
	)
	root := newRootCommand(func(c *app.Config, cmd Command) {
		cfg, command = c, cmd
	})
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, CommandNone, exitErr
		}
		return nil, CommandNone, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "command", command)
	return cfg, command, nil
}

func newRootCommand(selected func(*app.Config, Command)) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "vkcapgen",
		Short: "Compile a driver capability manifest into C extension tables",
		Long: `vkcapgen reads a capability manifest (API version steps and extensions,
each with an enable condition), cross-references every extension against the
Khronos registry, and writes a declarations header and a definitions source.

Example:
  vkcapgen --manifest lvp.hcl --xml vk.xml \
    --out-h lvp_extensions.h --out-c lvp_extensions.c`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().NFlag() == 0 {
				slog.Debug("No flags provided, printing usage and exiting.")
				return cmd.Help()
			}
			cfg, err := opts.generateConfig()
			if err != nil {
				return err
			}
			selected(cfg, CommandGenerate)
			return nil
		},
	}

	persistent := root.PersistentFlags()
	persistent.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	persistent.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	flags := root.Flags()
	flags.StringVarP(&opts.manifest, "manifest", "m", "", "Path to the manifest .hcl file or a directory of them.")
	flags.StringVar(&opts.outH, "out-h", "", "Output declarations header.")
	flags.StringVar(&opts.outC, "out-c", "", "Output definitions source.")
	addRegistryFlags(root, opts)
	flags.StringVar(&opts.prefix, "prefix", "", "Driver prefix for generated symbols. Overrides the manifest.")
	flags.StringVar(&opts.ceilingPolicy, "ceiling-policy", "", "Maximum API version rule: 'last_declared' or 'enabled_prefix'. Overrides the manifest.")

	root.AddCommand(newSnapshotCommand(opts, selected))
	return root
}

func newSnapshotCommand(opts *options, selected func(*app.Config, Command)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Pin the registry as a YAML snapshot",
		Long: `snapshot merges the given registry documents and writes the canonical
extension entries as YAML. The snapshot can be passed back with --registry so
that later builds do not depend on a particular vk.xml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.snapshotConfig()
			if err != nil {
				return err
			}
			selected(cfg, CommandSnapshot)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.snapshotOut, "out", "o", "", "Output snapshot file.")
	addRegistryFlags(cmd, opts)
	return cmd
}

func addRegistryFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringArrayVar(&opts.xml, "xml", nil, "Vulkan API XML file. Repeatable.")
	cmd.Flags().StringArrayVar(&opts.registry, "registry", nil, "Registry location: vk.xml, a YAML snapshot, or a glob of either. Repeatable.")
}

func (o *options) registryLocations() []string {
	locations := make([]string, 0, len(o.xml)+len(o.registry))
	locations = append(locations, o.xml...)
	return append(locations, o.registry...)
}

func (o *options) logging() (format, level string, err error) {
	format = strings.ToLower(o.logFormat)
	if format != "text" && format != "json" {
		return "", "", &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	level = strings.ToLower(o.logLevel)
	switch level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return "", "", &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return format, level, nil
}

func (o *options) generateConfig() (*app.Config, error) {
	format, level, err := o.logging()
	if err != nil {
		return nil, err
	}
	cfg, err := app.NewConfig(app.Config{
		ManifestPath:      o.manifest,
		RegistryLocations: o.registryLocations(),
		OutDeclarations:   o.outH,
		OutDefinitions:    o.outC,
		Prefix:            o.prefix,
		CeilingPolicy:     o.ceilingPolicy,
		LogFormat:         format,
		LogLevel:          level,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return cfg, nil
}

func (o *options) snapshotConfig() (*app.Config, error) {
	format, level, err := o.logging()
	if err != nil {
		return nil, err
	}
	cfg, err := app.NewSnapshotConfig(app.Config{
		RegistryLocations: o.registryLocations(),
		SnapshotPath:      o.snapshotOut,
		LogFormat:         format,
		LogLevel:          level,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return cfg, nil
}
