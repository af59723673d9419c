package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration. Zero values mean "not set" so
// command line flags and built in defaults can take over.
type Config struct {
	Theme      string
	SaveDir    string
	Tool       string
	Color      string
	Width      float64
	Fill       bool
	Background string
	Format     string
	Quality    int
	WidthPx    int
	HeightPx   int
	Notify     Notify
	Themes     map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Notify: Notify{
			Save: false,
			Copy: false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	writeString := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%s = %s\n", key, value)
		}
	}
	writeString("theme", c.Theme)
	writeString("save_dir", c.SaveDir)
	writeString("tool", c.Tool)
	writeString("color", c.Color)
	if c.Width > 0 {
		fmt.Fprintf(&sb, "width = %s\n", strconv.FormatFloat(c.Width, 'g', -1, 64))
	}
	if c.Fill {
		sb.WriteString("fill = true\n")
	}
	writeString("background", c.Background)
	writeString("format", c.Format)
	if c.Quality > 0 {
		fmt.Fprintf(&sb, "quality = %d\n", c.Quality)
	}
	if c.WidthPx > 0 {
		fmt.Fprintf(&sb, "width_px = %d\n", c.WidthPx)
	}
	if c.HeightPx > 0 {
		fmt.Fprintf(&sb, "height_px = %d\n", c.HeightPx)
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		_, _ = c.Themes[name].WriteTo(&sb)
		sb.WriteString("\n")
	}

	return sb.String()
}
