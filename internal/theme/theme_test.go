package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: mine\n# comment\ntoolbarbackground: #102030\nSwatchHover: #01020304\nUnknown: #FFFFFF\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if th.Name != "mine" {
		t.Fatalf("name = %q", th.Name)
	}
	if th.ToolbarBackground != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Fatalf("toolbar = %v", th.ToolbarBackground)
	}
	if th.SwatchHover != (color.RGBA{1, 2, 3, 4}) {
		t.Fatalf("swatch hover = %v", th.SwatchHover)
	}
	if th.ButtonBorder != Default().ButtonBorder {
		t.Fatalf("unset keys should keep defaults")
	}
}

func TestParseRejectsBadColour(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red\n")); err == nil {
		t.Fatalf("expected error for non-hex colour")
	}
	if _, err := ParseHex("#12345"); err == nil {
		t.Fatalf("expected error for short hex")
	}
}

func TestWriteToRoundTrips(t *testing.T) {
	th := Default()
	th.Name = "round"
	th.SwatchSelected = color.RGBA{9, 8, 7, 6}
	var buf bytes.Buffer
	if _, err := th.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *got != *th {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, th)
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{ConfigDir: dir, SystemDir: filepath.Join(dir, "missing")}

	th, err := l.Load("")
	if err != nil || th.Name != "Default" {
		t.Fatalf("empty name should give the default theme, got %v %v", th, err)
	}
	th, err = l.Load("dark")
	if err != nil {
		t.Fatalf("embedded dark: %v", err)
	}
	if th.Name != "dark" {
		t.Fatalf("name = %q, want dark", th.Name)
	}
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err = l.Load("mine")
	if err != nil || th.Name != "mine" {
		t.Fatalf("config dir theme: %v %v", th, err)
	}
	if _, err := l.Load("nope"); err == nil {
		t.Fatalf("expected error for missing theme")
	}
}

func TestLoaderNamesAndPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, SystemDir: filepath.Join(dir, "missing")}
	got := l.Names()
	want := []string{"dark", "default", "light", "mine"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("names = %v, want %v", got, want)
	}

	th, err := l.Load(filepath.Join(dir, "mine.theme"))
	if err != nil || th.Name != "mine" {
		t.Fatalf("load by path: %v %v", th, err)
	}
	th, err = l.Load("Default")
	if err != nil || th.Name != "Default" {
		t.Fatalf("default: %v %v", th, err)
	}
	_, err = l.Load("nope")
	if err == nil || !strings.Contains(err.Error(), "available: dark, default, light, mine") {
		t.Fatalf("expected available list, got %v", err)
	}
}

func TestNewLoaderHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := NewLoader().ConfigDir; got != filepath.Join("/xdg", "sketchpad", "themes") {
		t.Fatalf("config dir = %q", got)
	}
}
