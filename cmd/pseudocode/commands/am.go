package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/pseudocode/am"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/sym"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: sym.AM + " Manage pseudocode configuration",
	Long: sym.AM + ` am — Manage pseudocode configuration

Configuration sources (later overrides earlier):
1. Built-in defaults
2. System config (/etc/pseudocode/am.toml)
3. User config (~/.pseudocode/am.toml)
4. Project config (./am.toml, searched upwards)
5. Environment variables (PSEUDOCODE_* prefix)

Examples:
  pseudocode am show                       # Show current configuration
  pseudocode am show --format json         # Show configuration as JSON
  pseudocode am get render.indent_size     # Get one value
  pseudocode am set render.no_end true     # Write to ~/.pseudocode/am.toml
  pseudocode am where                      # Show where each value comes from
  pseudocode am validate                   # Validate config and macros file`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		return showConfig(cmd.OutOrStdout(), cfg, configFormat)
	},
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., server.port, render.macros_file)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := am.Load(); err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		key := args[0]
		if !am.GetViper().IsSet(key) {
			return errors.Wrapf(errors.ErrNotFound, "configuration key %q", key)
		}
		fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
		return nil
	},
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the user config",
	Long: `Set a configuration value in ~/.pseudocode/am.toml (or --file).
The previous file is kept as a rotating .back1..3 backup. A running server
picks up the change through its config watcher.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := amFile
		if path == "" {
			path = am.UserConfigPath()
		}
		if err := am.SetValue(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s (%s)\n", args[0], args[1], path)
		return nil
	},
}

var amInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := amFile
		if path == "" {
			path = am.ConfigFileName
		}
		if err := am.WriteDefaults(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration and the macros file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "configuration validation failed")
		}

		macros, err := am.LoadMacros(cfg.Render.MacrosFile)
		if err != nil {
			return errors.Wrap(err, "macros file validation failed")
		}
		if _, err := am.LoadBundle(cfg); err != nil {
			return errors.Wrap(err, "macros file validation failed")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "✓ Configuration is valid")
		if cfg.Render.MacrosFile != "" {
			fmt.Fprintf(out, "%s %d custom macros in %s\n", sym.Macro, len(macros), cfg.Render.MacrosFile)
		}
		return nil
	},
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE: func(cmd *cobra.Command, args []string) error {
		intro, err := am.GetConfigIntrospection()
		if err != nil {
			return err
		}
		return showWhere(cmd.OutOrStdout(), intro)
	},
}

var (
	configFormat string
	amFile       string
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amSetCmd.Flags().StringVar(&amFile, "file", "", "Config file to write (default: ~/.pseudocode/am.toml)")
	amInitCmd.Flags().StringVar(&amFile, "file", "", "Config file to create (default: ./am.toml)")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amSetCmd)
	AmCmd.AddCommand(amInitCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func showConfig(out io.Writer, cfg *am.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# pseudocode configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# pseudocode configuration\n%s", data)

	default:
		return errors.WithHint(
			errors.NewInvalidRequestError("unsupported format: %s", format),
			"supported: toml, json, yaml")
	}
	return nil
}

func showWhere(out io.Writer, intro *am.ConfigIntrospection) error {
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [default]      Built-in defaults")
	fmt.Fprintf(out, "  2. [system]       %s\n", am.SystemConfig)
	fmt.Fprintln(out, "  3. [user]         ~/.pseudocode/am.toml")
	fmt.Fprintln(out, "  4. [project]      ./am.toml (searches up directories)")
	fmt.Fprintln(out, "  5. [environment]  PSEUDOCODE_* environment variables")
	fmt.Fprintln(out)

	if len(intro.ConfigFiles) == 0 {
		fmt.Fprintln(out, "No config files found, using defaults")
	} else {
		fmt.Fprintln(out, "Files:")
		for _, f := range intro.ConfigFiles {
			fmt.Fprintf(out, "  %s\n", f)
		}
	}
	fmt.Fprintln(out)

	counts := intro.CountBySource()
	fmt.Fprintln(out, "Active configuration:")
	for _, source := range []am.ConfigSource{am.SourceDefault, am.SourceSystem, am.SourceUser, am.SourceProject, am.SourceEnvironment} {
		if counts[source] == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s: %d settings\n", source, counts[source])
		for _, setting := range intro.Settings {
			if setting.Source != source {
				continue
			}
			value := fmt.Sprintf("%v", setting.Value)
			if len(value) > 50 {
				value = value[:47] + "..."
			}
			if setting.SourcePath != "" && source != am.SourceDefault {
				fmt.Fprintf(out, "  %s = %s  (%s)\n", setting.Key, value, setting.SourcePath)
			} else {
				fmt.Fprintf(out, "  %s = %s\n", setting.Key, value)
			}
		}
	}
	return nil
}
