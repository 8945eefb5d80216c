package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"igunfollow/pkg/errors"
)

// Config holds all configuration options for the follower analysis
type Config struct {
	// Export files to compare
	Input InputConfig `yaml:"input" json:"input"`

	// CSV report destination
	Output OutputConfig `yaml:"output" json:"output"`

	// Console summary preferences
	Report ReportConfig `yaml:"report" json:"report"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// InputConfig holds the paths of the Instagram export files
type InputConfig struct {
	FollowersFiles []string `yaml:"followers_files" json:"followers_files"`
	FollowingFile  string   `yaml:"following_file" json:"following_file"`
	IgnoreFile     string   `yaml:"ignore_file" json:"ignore_file"`
	Parser         string   `yaml:"parser" json:"parser"`
}

// OutputConfig holds the CSV output configuration
type OutputConfig struct {
	File string `yaml:"file" json:"file"`
}

// ReportConfig holds console output preferences
type ReportConfig struct {
	ShowList     bool `yaml:"show_list" json:"show_list"`
	ColorEnabled bool `yaml:"color_enabled" json:"color_enabled"`
	Interactive  bool `yaml:"interactive" json:"interactive"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	File   string `yaml:"file" json:"file"`
	Format string `yaml:"format" json:"format"`
}

// Parser backends understood by the export package
const (
	ParserCSS   = "css"
	ParserXPath = "xpath"
)

// DefaultConfig returns a Config instance with the fixed paths of a plain run
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			FollowersFiles: []string{filepath.Join("data", "followers_1.html")},
			FollowingFile:  filepath.Join("data", "following.html"),
			IgnoreFile:     "ignore_list.txt",
			Parser:         ParserCSS,
		},
		Output: OutputConfig{
			File: "not_following_back.csv",
		},
		Report: ReportConfig{
			ShowList:     true,
			ColorEnabled: true,
			Interactive:  false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			File:   "",
			Format: "text",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if followers := os.Getenv("IGUNFOLLOW_FOLLOWERS"); followers != "" {
		c.Input.FollowersFiles = splitList(followers)
	}
	if following := os.Getenv("IGUNFOLLOW_FOLLOWING"); following != "" {
		c.Input.FollowingFile = following
	}
	if ignoreFile, ok := os.LookupEnv("IGUNFOLLOW_IGNORE"); ok {
		c.Input.IgnoreFile = ignoreFile
	}
	if parser := os.Getenv("IGUNFOLLOW_PARSER"); parser != "" {
		c.Input.Parser = strings.ToLower(parser)
	}

	if output := os.Getenv("IGUNFOLLOW_OUTPUT"); output != "" {
		c.Output.File = output
	}

	if color := os.Getenv("IGUNFOLLOW_COLOR"); color != "" {
		c.Report.ColorEnabled = strings.ToLower(color) == "true"
	}
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Report.ColorEnabled = false
	}

	if logLevel := os.Getenv("IGUNFOLLOW_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("IGUNFOLLOW_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	for _, loc := range SearchPaths() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// SearchPaths lists the config file locations in order of precedence
func SearchPaths() []string {
	home := os.Getenv("HOME")
	return []string{
		".igunfollow.yaml",
		".igunfollow.yml",
		filepath.Join(home, ".config", "igunfollow", "config.yaml"),
		filepath.Join(home, ".config", "igunfollow", "config.yml"),
		filepath.Join(home, ".igunfollow.yaml"),
		filepath.Join(home, ".igunfollow.yml"),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if len(c.Input.FollowersFiles) == 0 {
		errs = append(errs, stderrors.New("at least one followers file is required"))
	}
	for _, f := range c.Input.FollowersFiles {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, stderrors.New("followers file path cannot be empty"))
			break
		}
	}
	if c.Input.FollowingFile == "" {
		errs = append(errs, stderrors.New("following file is required"))
	}

	validParsers := map[string]bool{
		ParserCSS: true, ParserXPath: true,
	}
	if !validParsers[strings.ToLower(c.Input.Parser)] {
		errs = append(errs, fmt.Errorf("invalid parser %q: must be %q or %q", c.Input.Parser, ParserCSS, ParserXPath))
	}

	if c.Output.File == "" {
		errs = append(errs, stderrors.New("output file is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, stderrors.New("invalid log level"))
	}

	validFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, stderrors.New("invalid log format"))
	}

	if len(errs) > 0 {
		return stderrors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration.
// Only keys present in the map are applied.
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if followers, ok := flags["followers"].([]string); ok && len(followers) > 0 {
		c.Input.FollowersFiles = followers
	}
	if following, ok := flags["following"].(string); ok && following != "" {
		c.Input.FollowingFile = following
	}
	if ignoreFile, ok := flags["ignore"].(string); ok {
		c.Input.IgnoreFile = ignoreFile
	}
	if parser, ok := flags["parser"].(string); ok && parser != "" {
		c.Input.Parser = strings.ToLower(parser)
	}
	if output, ok := flags["output"].(string); ok && output != "" {
		c.Output.File = output
	}
	if showList, ok := flags["show-list"].(bool); ok {
		c.Report.ShowList = showList
	}
	if color, ok := flags["color"].(bool); ok {
		c.Report.ColorEnabled = color
	}
	if interactive, ok := flags["interactive"].(bool); ok {
		c.Report.Interactive = interactive
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".igunfollow.env"))

	config := DefaultConfig()

	if configPath == "" {
		configPath = config.findConfigFile()
	}
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, errors.Config(configPath, err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, errors.Config("", fmt.Errorf("failed to load environment variables: %w", err))
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, errors.Config("", fmt.Errorf("configuration validation failed: %w", err))
	}

	return config, nil
}
