package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	StartFamily   Family
	OffsetStep    float64
	OffsetCount   int
	ExportWidth   int
	ExportHeight  int
	LogFile       string
	ShowHelp      bool
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		StartFamily:   FamilyPolynomial,
		OffsetStep:    defaultOffStep,
		OffsetCount:   defaultOffCount,
		ExportWidth:   1024,
		ExportHeight:  768,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".curvelabrc")
		if file, err := os.Open(configPath); err == nil {
			config.parse(file, homeDir)
			file.Close()
		}
	}

	if env := os.Getenv("CURVELAB_LOG"); env != "" {
		config.LogFile = env
	}
	return config
}

// parse reads key=value lines. Unknown keys and malformed values are
// ignored so a bad line never prevents startup.
func (c *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			c.SaveDirectory = expandPath(value, homeDir)
		case "family", "start_family":
			if f, ok := parseFamily(value); ok {
				c.StartFamily = f
			}
		case "offsetstep", "offset_step":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
				c.OffsetStep = v
			}
		case "offsetcount", "offset_count":
			if v, err := strconv.Atoi(value); err == nil && v >= 0 {
				c.OffsetCount = v
			}
		case "exportwidth", "export_width":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				c.ExportWidth = v
			}
		case "exportheight", "export_height":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				c.ExportHeight = v
			}
		case "logfile", "log_file", "log":
			c.LogFile = expandPath(value, homeDir)
		case "help", "showhelp":
			c.ShowHelp = strings.ToLower(value) == "true"
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath places filename in the save directory, creating it if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("cannot create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
