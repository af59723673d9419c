package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/shapes"
)

// drawSettings are the flags shared by every command that owns a drawing.
// Defaults come from the configuration file.
type drawSettings struct {
	tool       string
	color      string
	width      float64
	fill       bool
	background string
	size       string
	saveDir    string
	format     string
	quality    int
}

func bindDrawSettings(fs *flag.FlagSet, r *root) *drawSettings {
	cfg := r.cfg()
	s := &drawSettings{
		tool:       shapes.DefaultStyle().Tool.String(),
		color:      "black",
		width:      shapes.DefaultWidth,
		background: "white",
		size:       "800x600",
		saveDir:    ".",
		format:     string(export.FormatJPEG),
		quality:    export.DefaultQuality,
	}
	if cfg.Tool != "" {
		s.tool = cfg.Tool
	}
	if cfg.Color != "" {
		s.color = cfg.Color
	}
	if cfg.Width > 0 {
		s.width = cfg.Width
	}
	s.fill = cfg.Fill
	if cfg.Background != "" {
		s.background = cfg.Background
	}
	if cfg.WidthPx > 0 && cfg.HeightPx > 0 {
		s.size = fmt.Sprintf("%dx%d", cfg.WidthPx, cfg.HeightPx)
	}
	if cfg.SaveDir != "" {
		s.saveDir = cfg.SaveDir
	}
	if cfg.Format != "" {
		s.format = cfg.Format
	}
	if cfg.Quality > 0 {
		s.quality = cfg.Quality
	}

	fs.StringVar(&s.tool, "tool", s.tool, "drawing tool ("+strings.Join(toolNames(), ", ")+")")
	fs.StringVar(&s.color, "color", s.color, "stroke and fill color name or hex value")
	fs.Float64Var(&s.width, "width", s.width, "stroke width in pixels")
	fs.BoolVar(&s.fill, "fill", s.fill, "fill closed shapes instead of outlining them")
	fs.StringVar(&s.background, "background", s.background, "background and eraser color")
	fs.StringVar(&s.size, "size", s.size, "drawing size as WIDTHxHEIGHT")
	fs.StringVar(&s.saveDir, "save-dir", s.saveDir, "directory for timestamped exports")
	fs.StringVar(&s.format, "format", s.format, "export format (jpg, png, pdf)")
	fs.IntVar(&s.quality, "quality", s.quality, "JPEG quality between 1 and 100")
	return s
}

// options validates the settings and turns them into AppState options.
func (s *drawSettings) options() ([]appstate.Option, error) {
	tool, err := shapes.ParseTool(s.tool)
	if err != nil {
		return nil, err
	}
	col, err := appstate.ParseColor(s.color)
	if err != nil {
		return nil, err
	}
	bg, err := appstate.ParseColor(s.background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if s.width <= 0 {
		return nil, fmt.Errorf("width must be positive")
	}
	w, h, err := parseSize(s.size)
	if err != nil {
		return nil, err
	}
	opts, err := s.exportOptions()
	if err != nil {
		return nil, err
	}
	return []appstate.Option{
		appstate.WithSize(w, h),
		appstate.WithBackground(bg),
		appstate.WithTool(tool),
		appstate.WithColor(col),
		appstate.WithWidth(s.width),
		appstate.WithFill(s.fill),
		appstate.WithSaveDir(s.saveDir),
		appstate.WithExport(opts),
	}, nil
}

func (s *drawSettings) exportOptions() (export.Options, error) {
	format, err := export.ParseFormat(s.format)
	if err != nil {
		return export.Options{}, err
	}
	if s.quality < 1 || s.quality > 100 {
		return export.Options{}, fmt.Errorf("quality must be between 1 and 100")
	}
	return export.Options{Format: format, Quality: s.quality}, nil
}

func parseSize(spec string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", spec)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width in size %q", spec)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height in size %q", spec)
	}
	return w, h, nil
}

func toolNames() []string {
	var names []string
	for _, t := range shapes.Tools() {
		names = append(names, t.String())
	}
	return names
}
