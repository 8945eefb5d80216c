package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"igunfollow/pkg/errors"
	"igunfollow/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// rootOptions holds every flag of the command tree
type rootOptions struct {
	// Global flags
	configFile string
	logLevel   string
	noColor    bool
	quiet      bool
	verbose    bool

	// Inputs and output
	followers []string
	following string
	ignore    string
	output    string
	parser    string

	// Report flags
	noList      bool
	interactive bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "igunfollow",
		Short: "Find the Instagram accounts you follow that don't follow you back",
		Long: `igunfollow compares the followers and following lists of an Instagram
data export and reports the accounts you follow that do not follow you back.

Request your data from Instagram ("Download your information", HTML format),
unpack it and point igunfollow at the connections files:

  connections/followers_and_following/followers_1.html
  connections/followers_and_following/following.html

Features:
  - Several followers files (followers_1.html, followers_2.html, ...)
  - Ignore list with exact usernames and glob patterns
  - CSS or XPath extraction backends
  - CSV report plus a console summary
  - Interactive browser for the result`,
		Example: `  # Read data/followers_1.html and data/following.html
  igunfollow

  # Point at an unpacked export
  igunfollow --followers export/followers_1.html --followers export/followers_2.html \
    --following export/following.html

  # Browse the result interactively
  igunfollow -i`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(analyzeParams{
				configPath: opts.configFile,
				flags:      opts.flagMap(cmd),
				quiet:      opts.quiet,
				stdout:     cmd.OutOrStdout(),
				stderr:     cmd.ErrOrStderr(),
			})
		},
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./.igunfollow.yaml or $HOME/.config/igunfollow/config.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all output except errors")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "show debug logs")

	pf.StringSliceVar(&opts.followers, "followers", nil, "followers export file, repeat for followers_2.html and so on")
	pf.StringVar(&opts.following, "following", "", "following export file")
	pf.StringVar(&opts.ignore, "ignore", "", "ignore list file, empty to disable")
	pf.StringVarP(&opts.output, "output", "o", "", "CSV report path")
	pf.StringVar(&opts.parser, "parser", "", "extraction backend (css, xpath)")

	rootCmd.Flags().BoolVar(&opts.noList, "no-list", false, "print only the counts, not every username")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the result in an interactive terminal UI")

	rootCmd.AddCommand(newConfigCmd(opts))

	// Version template
	rootCmd.SetVersionTemplate(`igunfollow {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// flagMap collects the flags set on the command line, keyed the way
// config.MergeCommandLineFlags expects
func (o *rootOptions) flagMap(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	f := cmd.Flags()

	if f.Changed("followers") {
		flags["followers"] = o.followers
	}
	if f.Changed("following") {
		flags["following"] = o.following
	}
	if f.Changed("ignore") {
		flags["ignore"] = o.ignore
	}
	if f.Changed("output") {
		flags["output"] = o.output
	}
	if f.Changed("parser") {
		flags["parser"] = o.parser
	}
	if f.Changed("no-list") {
		flags["show-list"] = !o.noList
	}
	if f.Changed("interactive") {
		flags["interactive"] = o.interactive
	}
	if o.noColor {
		flags["color"] = false
	}

	switch {
	case o.verbose:
		flags["log-level"] = "debug"
	case o.quiet:
		flags["log-level"] = "error"
	case f.Changed("log-level"):
		flags["log-level"] = o.logLevel
	}

	return flags
}

// isTerminal reports whether w is a terminal that can show colors
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.ColorSupported(f)
}

// colorOutput reports whether styled output should be sent to w
func colorOutput(w io.Writer, enabled bool) bool {
	return enabled && isTerminal(w)
}

// exitCode maps a failed run to the process exit status. Configuration
// problems exit with 2 so scripts can tell them from failed analyses.
func exitCode(err error) int {
	switch errors.TypeOf(err) {
	case errors.ErrorTypeConfig:
		return 2
	default:
		return 1
	}
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}

	ui.Configure(os.Stderr, colorOutput(os.Stderr, os.Getenv("NO_COLOR") == ""))
	ui.PrintError("Error", err)
	if errors.IsConfig(err) {
		ui.PrintInfo("Hint", "run 'igunfollow config validate' to check the configuration")
	}
	os.Exit(exitCode(err))
}
