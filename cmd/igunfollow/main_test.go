package main

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igunfollow/pkg/errors"
)

// isolate runs the test in an empty working directory and home
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func exportHTML(usernames ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for _, u := range usernames {
		fmt.Fprintf(&sb, `<div><a href="https://www.instagram.com/%s">%s</a></div>`, u, u)
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunWithDefaults(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "data", "following.html"), exportHTML("alice", "bob", "carol", "nike"))
	writeFile(t, filepath.Join(dir, "data", "followers_1.html"), exportHTML("bob"))
	writeFile(t, filepath.Join(dir, "ignore_list.txt"), "nike\n")

	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "INSTAGRAM FOLLOWER ANALYSIS")
	assert.Contains(t, stdout, "You follow: 4 accounts")
	assert.Contains(t, stdout, "Follow you: 1 account")
	assert.Contains(t, stdout, "Mutual following: 1 account")
	assert.Contains(t, stdout, "Ignored: 1 account")
	assert.Contains(t, stdout, "Don't follow you back: 2 accounts")
	assert.Contains(t, stdout, "• alice")
	assert.Contains(t, stdout, "• carol")
	assert.Contains(t, stdout, "Results saved to: not_following_back.csv")
	assert.NotContains(t, stdout, "Export parsed", "logs belong on stderr")
	assert.Contains(t, stderr, "Export parsed")

	data, err := os.ReadFile(filepath.Join(dir, "not_following_back.csv"))
	require.NoError(t, err)
	assert.Equal(t, "username\nalice\ncarol\n", string(data))
}

func TestRunWithFlags(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "export", "following.html"), exportHTML("a", "b", "c"))
	writeFile(t, filepath.Join(dir, "export", "followers_1.html"), exportHTML("a"))
	writeFile(t, filepath.Join(dir, "export", "followers_2.html"), exportHTML("b"))
	output := filepath.Join(dir, "reports", "out.csv")

	stdout, _, err := execute(t,
		"--followers", filepath.Join(dir, "export", "followers_1.html"),
		"--followers", filepath.Join(dir, "export", "followers_2.html"),
		"--following", filepath.Join(dir, "export", "following.html"),
		"--output", output,
		"--parser", "xpath",
		"--no-list",
		"--no-color",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Don't follow you back: 1 account")
	assert.NotContains(t, stdout, "•")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "username\nc\n", string(data))
}

func TestRunMissingExport(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "data", "followers_1.html"), exportHTML("a"))

	_, _, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), filepath.Join("data", "following.html"))
	assert.NoFileExists(t, filepath.Join(dir, "not_following_back.csv"))
}

func TestRunKeepsUsernamesStartingWithHTTP(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "data", "following.html"), exportHTML("httpster", "https.daily", "bob"))
	writeFile(t, filepath.Join(dir, "data", "followers_1.html"), exportHTML("httpster", "https.daily"))

	_, _, err := execute(t, "--no-color")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "not_following_back.csv"))
	require.NoError(t, err)
	assert.Equal(t, "username\nbob\n", string(data))
}

func TestRunQuiet(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "data", "following.html"), exportHTML("a"))
	writeFile(t, filepath.Join(dir, "data", "followers_1.html"), exportHTML())

	stdout, stderr, err := execute(t, "-q")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.NotContains(t, stderr, "Export parsed")
	assert.FileExists(t, filepath.Join(dir, "not_following_back.csv"))
}

func TestRunInvalidParser(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "--parser", "regex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parser")
}

func TestRejectsArguments(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "someone")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "igunfollow "+version)
	assert.Contains(t, stdout, "Go Version:")
}

func TestConfigInitValidateShow(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration file created: .igunfollow.yaml")
	assert.FileExists(t, filepath.Join(dir, defaultConfigPath))

	stdout, _, err = execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validating configuration: .igunfollow.yaml")
	assert.Contains(t, stdout, "export file not found: "+filepath.Join("data", "following.html"))
	assert.Contains(t, stdout, "Configuration is valid")

	stdout, _, err = execute(t, "config", "show", "--output", "custom.csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "following_file: data/following.html")
	assert.Contains(t, stdout, "file: custom.csv")
	assert.Contains(t, stdout, "3. Configuration file: .igunfollow.yaml")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "output:\n  file: keep.csv\n")

	_, _, err := execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "followers_files")
}

func TestConfigValidateWithoutFile(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
	assert.Contains(t, err.Error(), "no configuration file found")
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, defaultConfigPath), "input:\n  parser: regex\n")

	_, _, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
	assert.Contains(t, err.Error(), "invalid parser")
}

// stubTerminal records whether the terminal check ran. It only runs once the
// configuration allows color.
func stubTerminal(t *testing.T) *bool {
	t.Helper()
	checked := false
	prev := isTerminal
	isTerminal = func(w io.Writer) bool {
		checked = true
		return false
	}
	t.Cleanup(func() { isTerminal = prev })
	return &checked
}

func TestConfigCommandsFollowColorSetting(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		noColor bool
		args    []string
		want    bool
	}{
		{
			name:   "color enabled",
			config: "output:\n  file: out.csv\n",
			want:   true,
		},
		{
			name:   "color disabled in config",
			config: "report:\n  color_enabled: false\n",
			want:   false,
		},
		{
			name:    "NO_COLOR set",
			config:  "output:\n  file: out.csv\n",
			noColor: true,
			want:    false,
		},
		{
			name:   "no-color flag",
			config: "output:\n  file: out.csv\n",
			args:   []string{"--no-color"},
			want:   false,
		},
	}

	for _, tt := range tests {
		for _, sub := range []string{"show", "validate"} {
			t.Run(tt.name+"/"+sub, func(t *testing.T) {
				dir := isolate(t)
				t.Setenv("NO_COLOR", "1")
				if !tt.noColor {
					os.Unsetenv("NO_COLOR")
				}
				writeFile(t, filepath.Join(dir, defaultConfigPath), tt.config)
				checked := stubTerminal(t)

				_, _, err := execute(t, append([]string{"config", sub}, tt.args...)...)
				require.NoError(t, err)
				assert.Equal(t, tt.want, *checked)
			})
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config", errors.Config("", stderrors.New("invalid parser")), 2},
		{"wrapped config", fmt.Errorf("load: %w", errors.Config("a.yaml", stderrors.New("bad"))), 2},
		{"not found", errors.NotFound("data/following.html", os.ErrNotExist), 1},
		{"plain", stderrors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRunInvalidParserIsConfigError(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "--parser", "regex")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}
