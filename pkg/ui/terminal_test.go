package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Info("Followers", "12")
	p.Success("done")
	p.Warning("empty export", "data/followers_1.html")
	p.Error("missing file", "data/following.html")
	p.Highlight("[REPORT]")

	assert.Equal(t,
		"Followers: 12\n"+
			"done\n"+
			"empty export: data/followers_1.html\n"+
			"missing file: data/following.html\n"+
			"[REPORT]\n",
		buf.String())
}

func TestPrinterQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.SetQuiet(true)

	p.Info("Followers", "12")
	p.Success("done")
	p.Warning("warn")
	p.Highlight("hi")
	p.Print("text")
	assert.Empty(t, buf.String())

	p.Error("failed")
	assert.Equal(t, "failed\n", buf.String())
}

func TestConfigure(t *testing.T) {
	previous := std
	defer func() { std = previous }()

	var buf bytes.Buffer
	assert.Same(t, std, Configure(&buf, false))
	PrintHighlight("Current Configuration")
	PrintInfo("Output", "not_following_back.csv")
	PrintWarning("Configuration warnings")
	PrintSuccess("ok")
	Print("  - raw\n")
	PrintError("boom")

	assert.Equal(t, "Current Configuration\nOutput: not_following_back.csv\nConfiguration warnings\nok\n  - raw\nboom\n", buf.String())
}

func TestQuietModeSurvivesConfigure(t *testing.T) {
	previous := std
	defer func() { std = previous }()

	var first, second bytes.Buffer
	Configure(&first, false)
	SetQuietMode(true)
	Configure(&second, false)

	PrintSuccess("hidden")
	Print("hidden")
	PrintError("shown")

	assert.Empty(t, first.String())
	assert.Equal(t, "shown\n", second.String())
}

func TestColorSupportedOnFile(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer file.Close()

	assert.False(t, ColorSupported(file), "a regular file is never a terminal")
}
