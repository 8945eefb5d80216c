package main

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"igunfollow/pkg/config"
	"igunfollow/pkg/errors"
	"igunfollow/pkg/ui"
)

const defaultConfigPath = ".igunfollow.yaml"

const exampleConfig = `# igunfollow configuration file
#
# Every option can also be set with an environment variable prefixed with
# IGUNFOLLOW_, for example IGUNFOLLOW_FOLLOWING or IGUNFOLLOW_OUTPUT.
# Command line flags override both.

# Instagram export files
input:
  # Followers exports. Instagram splits long lists over several files.
  followers_files:
    - "data/followers_1.html"

  # Following export
  following_file: "data/following.html"

  # Usernames never reported, one per line. Glob patterns such as
  # *_official are allowed. Leave empty to disable.
  ignore_file: "ignore_list.txt"

  # Extraction backend: css, xpath
  parser: "css"

# CSV report
output:
  file: "not_following_back.csv"

# Console summary
report:
  # List every non-follower below the counts
  show_list: true

  # Enable colored output
  color_enabled: true

  # Open the interactive browser after the run
  interactive: false

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: "info"

  # Log format: text, json
  format: "text"

  # Log file path (optional)
  # Leave empty to log to stderr only
  file: ""
`

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
		Long: `Manage igunfollow configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (IGUNFOLLOW_*)
  - .env files
  - Configuration file
  - Default values (lowest priority)`,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create an example configuration file",
		Long: `Create an example configuration file with all available options.

The file will be created in the current directory as '.igunfollow.yaml'
unless a different path is specified with the --config flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, opts, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Show the effective configuration after merging values from all sources:
  - Command line flags
  - Environment variables
  - Configuration file
  - Default values`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate a configuration file for syntax errors and invalid values.

This command checks:
  - YAML syntax
  - Required fields
  - Parser, log level and log format values
  - Whether the export files exist`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigValidate(cmd, opts)
		},
	}

	configCmd.AddCommand(initCmd, showCmd, validateCmd)
	return configCmd
}

// configurePrinter points the package printer at the command output. Color
// follows report.color_enabled, which already honours NO_COLOR and --no-color.
func configurePrinter(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	ui.Configure(cmd.OutOrStdout(), colorOutput(cmd.OutOrStdout(), cfg.Report.ColorEnabled))
	ui.SetQuietMode(opts.quiet)
}

func runConfigInit(cmd *cobra.Command, opts *rootOptions, force bool) error {
	configPath := opts.configFile
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0644); err != nil {
		return errors.Write(configPath, err)
	}

	// The new file holds the defaults, so only env and flags can change them
	cfg := config.DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return errors.Config("", err)
	}
	cfg.MergeCommandLineFlags(opts.flagMap(cmd))

	configurePrinter(cmd, opts, cfg)
	ui.PrintSuccess("Configuration file created: " + configPath)
	ui.Print("\nNext steps:\n")
	ui.Print("1. Edit the input paths to point at your Instagram export\n")
	ui.Print("2. Run 'igunfollow config validate' to check the configuration\n")
	ui.Print("3. Run 'igunfollow' to write the report\n")
	return nil
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configFile, opts.flagMap(cmd))
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	configurePrinter(cmd, opts, cfg)
	ui.PrintHighlight("Current Configuration")
	ui.Print("\n" + string(data))

	ui.Print("\nConfiguration sources (in order of priority):\n")
	ui.Print("1. Command line flags\n")
	ui.Print("2. Environment variables (IGUNFOLLOW_*)\n")
	if path := configSource(opts.configFile); path != "" {
		ui.Print(fmt.Sprintf("3. Configuration file: %s\n", path))
	} else {
		ui.Print("3. Configuration file: (none found)\n")
	}
	ui.Print("4. Default values\n")
	return nil
}

func runConfigValidate(cmd *cobra.Command, opts *rootOptions) error {
	configPath := configSource(opts.configFile)
	if configPath == "" {
		return errors.Config("", stderrors.New("no configuration file found, specify one with --config"))
	}

	cfg, err := config.Load(configPath, opts.flagMap(cmd))
	if err != nil {
		return err
	}

	configurePrinter(cmd, opts, cfg)
	ui.PrintInfo("Validating configuration", configPath)

	var warnings []string
	for _, path := range append([]string{cfg.Input.FollowingFile}, cfg.Input.FollowersFiles...) {
		if missing(path) {
			warnings = append(warnings, fmt.Sprintf("export file not found: %s", path))
		}
	}
	if cfg.Input.IgnoreFile != "" && missing(cfg.Input.IgnoreFile) {
		warnings = append(warnings, fmt.Sprintf("ignore list not found, nothing will be excluded: %s", cfg.Input.IgnoreFile))
	}

	if len(warnings) > 0 {
		ui.PrintWarning("Configuration warnings")
		for _, w := range warnings {
			ui.Print(fmt.Sprintf("  - %s\n", w))
		}
		ui.Print("\n")
	}

	ui.PrintSuccess("Configuration is valid")

	ui.Print("\nConfiguration summary:\n")
	ui.PrintInfo("  Following", cfg.Input.FollowingFile)
	for _, f := range cfg.Input.FollowersFiles {
		ui.PrintInfo("  Followers", f)
	}
	ui.PrintInfo("  Ignore list", orNone(cfg.Input.IgnoreFile))
	ui.PrintInfo("  Parser", cfg.Input.Parser)
	ui.PrintInfo("  Output", cfg.Output.File)
	ui.PrintInfo("  Log level", cfg.Logging.Level)
	return nil
}

// configSource returns the explicit path, or the first config file found in
// the search locations
func configSource(path string) string {
	if path != "" {
		return path
	}
	for _, loc := range config.SearchPaths() {
		if !missing(loc) {
			return loc
		}
	}
	return ""
}

func missing(path string) bool {
	_, err := os.Stat(path)
	return stderrors.Is(err, fs.ErrNotExist)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
