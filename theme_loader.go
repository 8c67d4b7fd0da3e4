package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLTheme represents the structure of user theme YAML files
// These come from terminal color schemes with 16 ANSI colors
type YAMLTheme struct {
	Name       string `yaml:"name"`
	Author     string `yaml:"author"`
	Variant    string `yaml:"variant"` // dark or light
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Cursor     string `yaml:"cursor"`

	// 16 ANSI colors (color_01 through color_16)
	Color01 string `yaml:"color_01"` // Black
	Color02 string `yaml:"color_02"` // Red
	Color03 string `yaml:"color_03"` // Green
	Color04 string `yaml:"color_04"` // Yellow
	Color05 string `yaml:"color_05"` // Blue
	Color06 string `yaml:"color_06"` // Magenta
	Color07 string `yaml:"color_07"` // Cyan
	Color08 string `yaml:"color_08"` // White
	Color09 string `yaml:"color_09"` // Bright Black
	Color10 string `yaml:"color_10"` // Bright Red
	Color11 string `yaml:"color_11"` // Bright Green
	Color12 string `yaml:"color_12"` // Bright Yellow
	Color13 string `yaml:"color_13"` // Bright Blue
	Color14 string `yaml:"color_14"` // Bright Magenta
	Color15 string `yaml:"color_15"` // Bright Cyan
	Color16 string `yaml:"color_16"` // Bright White
}

// ConvertToTheme converts a YAML theme to our internal Theme structure
// Maps ANSI terminal colors to semantic UI colors with proper contrast
func (yt *YAMLTheme) ConvertToTheme() Theme {
	return Theme{
		// Base colors
		Background: yt.Background,
		Foreground: yt.Foreground,
		Subtle:     generateShade(yt.Background, 1.3), // Slightly lighter than background for subtle areas

		// Primary ANSI colors (0-7)
		Black:   yt.Color01,
		Red:     yt.Color02,
		Green:   yt.Color03,
		Yellow:  yt.Color04,
		Blue:    yt.Color05,
		Magenta: yt.Color06,
		Cyan:    yt.Color07,
		White:   yt.Color08,

		// Bright ANSI colors (8-15)
		BrightBlack:   yt.Color09,
		BrightRed:     yt.Color10,
		BrightGreen:   yt.Color11,
		BrightYellow:  yt.Color12,
		BrightBlue:    yt.Color13,
		BrightMagenta: yt.Color14,
		BrightCyan:    yt.Color15,
		BrightWhite:   yt.Color16,

		// Semantic UI colors - map from bright ANSI colors
		Purple: yt.Color14, // Bright Magenta - special status
		Gray:   yt.Color08, // White (dimmer) - labels, muted text
		Dark:   yt.Color01, // Black - darker muted

		// Heatmap gradient from the theme's green, matching the built-ins
		ContribNone:   generateShade(yt.Background, 1.15),
		ContribLow:    generateShade(yt.Color11, 0.35),
		ContribMed:    generateShade(yt.Color11, 0.55),
		ContribHigh:   generateShade(yt.Color11, 0.75),
		ContribHigher: yt.Color11,
	}
}

// LoadThemeFromYAML loads a single YAML theme file
func LoadThemeFromYAML(filePath string) (*YAMLTheme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var yamlTheme YAMLTheme
	if err := yaml.Unmarshal(data, &yamlTheme); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &yamlTheme, nil
}

// LoadAllThemes loads all YAML themes from a directory
// Returns a map of theme-name -> Theme
func LoadAllThemes(themesDir string) (map[string]Theme, error) {
	themeMap := make(map[string]Theme)

	// Find all .yml files
	files, err := filepath.Glob(filepath.Join(themesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list theme files: %w", err)
	}

	// Load each theme
	for _, file := range files {
		yamlTheme, err := LoadThemeFromYAML(file)
		if err != nil {
			// Skip invalid themes, don't fail entire load
			continue
		}

		themeMap[themeKey(yamlTheme.Name)] = yamlTheme.ConvertToTheme()
	}

	return themeMap, nil
}

// GetThemesByVariant filters user themes by dark/light variant
func GetThemesByVariant(themesDir string, variant string) []string {
	var filtered []string

	files, _ := filepath.Glob(filepath.Join(themesDir, "*.yml"))
	for _, file := range files {
		yamlTheme, err := LoadThemeFromYAML(file)
		if err != nil {
			continue
		}

		if yamlTheme.Variant == variant {
			filtered = append(filtered, themeKey(yamlTheme.Name))
		}
	}

	return filtered
}

// themeKey normalizes a theme name for registry lookup
func themeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
