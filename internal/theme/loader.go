package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const themeExt = ".theme"

// Loader finds toolbar themes by name or path.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader looks in $XDG_CONFIG_HOME/sketchpad/themes (or ~/.config) and the
// shared system directory.
func NewLoader() *Loader {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return &Loader{
		ConfigDir: filepath.Join(base, "sketchpad", "themes"),
		SystemDir: "/usr/share/sketchpad/themes",
	}
}

// Load resolves name in order: an existing file path, the embedded themes,
// ConfigDir, SystemDir. An empty name or "default" gives Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" || strings.EqualFold(name, "default") {
		return Default(), nil
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return parseFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}

	filename := name
	if !strings.HasSuffix(filename, themeExt) {
		filename += themeExt
	}
	for _, src := range l.sources() {
		if _, err := fs.Stat(src, filename); err == nil {
			return parseFile(src, filename)
		}
	}
	return nil, fmt.Errorf("theme '%s' not found (available: %s)", name, strings.Join(l.Names(), ", "))
}

// Names lists every theme Load can find by name, sorted and without
// duplicates.
func (l *Loader) Names() []string {
	seen := map[string]bool{"default": true}
	for _, src := range l.sources() {
		matches, _ := fs.Glob(src, "*"+themeExt)
		for _, m := range matches {
			seen[strings.TrimSuffix(m, themeExt)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (l *Loader) sources() []fs.FS {
	embedded, _ := fs.Sub(EmbeddedThemes, "defaults")
	srcs := []fs.FS{embedded}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir != "" {
			srcs = append(srcs, os.DirFS(dir))
		}
	}
	return srcs
}

func parseFile(fsys fs.FS, name string) (*Theme, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return t, nil
}
