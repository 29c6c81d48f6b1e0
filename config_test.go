package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParse(t *testing.T) {
	rc := `
# curvelab settings
family = bezier
offsetstep = 0.25
offsetcount = 5
exportwidth = 640
export_height = 480
savedirectory = ~/curves
logfile = /tmp/curvelab.log
help = true

not a setting
offsetcount = -3
exportwidth = wide
offsetstep = 0
`
	cfg := defaultConfig()
	cfg.parse(strings.NewReader(rc), "/home/test")

	diff(t, &Config{
		SaveDirectory: "/home/test/curves",
		StartFamily:   FamilyBezier,
		OffsetStep:    0.25,
		OffsetCount:   5,
		ExportWidth:   640,
		ExportHeight:  480,
		LogFile:       "/tmp/curvelab.log",
		ShowHelp:      true,
	}, cfg)
}

func TestConfigParseUnknownFamily(t *testing.T) {
	cfg := defaultConfig()
	cfg.parse(strings.NewReader("family = fractal\nFAMILY = Exponential"), "/home/test")
	assert.Equal(t, FamilyExponential, cfg.StartFamily)

	cfg = defaultConfig()
	cfg.parse(strings.NewReader("family = fractal"), "/home/test")
	assert.Equal(t, FamilyPolynomial, cfg.StartFamily)
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CURVELAB_LOG", "")
	rc := "family = trigonometric\nlogfile = ~/curvelab.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".curvelabrc"), []byte(rc), 0644))

	cfg := loadConfig()
	assert.Equal(t, FamilyTrigonometric, cfg.StartFamily)
	assert.Equal(t, filepath.Join(home, "curvelab.log"), cfg.LogFile)

	t.Setenv("CURVELAB_LOG", "/var/tmp/other.log")
	assert.Equal(t, "/var/tmp/other.log", loadConfig().LogFile)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CURVELAB_LOG", "")
	diff(t, defaultConfig(), loadConfig())
}

func TestGetSavePath(t *testing.T) {
	cfg := defaultConfig()
	path, err := cfg.GetSavePath("curve.png")
	require.NoError(t, err)
	assert.Equal(t, "curve.png", path)

	dir := filepath.Join(t.TempDir(), "nested", "exports")
	cfg.SaveDirectory = dir
	path, err = cfg.GetSavePath("curve.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "curve.png"), path)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetSavePathUnusableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	cfg := defaultConfig()
	cfg.SaveDirectory = filepath.Join(file, "exports")
	_, err := cfg.GetSavePath("curve.png")
	assert.ErrorContains(t, err, "cannot create save directory")
}
