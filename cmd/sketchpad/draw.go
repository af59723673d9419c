package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/canvas"
)

// drawCmd replays a single press, drag and release on a fresh drawing and
// exports the result.
type drawCmd struct {
	output      string
	toClipboard bool
	points      []canvas.Point
	settings    *drawSettings
	state       *appstate.AppState
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	d.settings = bindDrawSettings(fs, r)
	fs.StringVar(&d.output, "output", "", "output file path (defaults to a timestamped file in -save-dir)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) == 0 {
		return nil, &UsageError{of: d}
	}
	d.points, err = expectPoints(positionals)
	if err != nil {
		return nil, err
	}
	opts, err := d.settings.options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, appstate.WithOnCopy(d.root.notifyCopy))
	if d.output == "" {
		opts = append(opts, appstate.WithOnSave(d.root.notifySave))
	}
	d.state = appstate.New(opts...)
	return d, nil
}

func (d *drawCmd) Run() error {
	m := d.state.Gesture()
	m.PointerDown(d.points[0])
	for _, p := range d.points[1:] {
		m.PointerMove(p)
	}
	m.PointerUp()

	s := newSession(d.state, d.root.errOut())
	s.onSave = d.root.notifySave
	var args []string
	if d.output != "" {
		args = []string{d.output}
	}
	if err := s.save(args); err != nil {
		return err
	}
	if d.toClipboard {
		if err := d.state.Copy(); err != nil {
			return fmt.Errorf("copy drawing to clipboard: %w", err)
		}
		detail := "drawing"
		if d.output != "" {
			detail = filepath.Base(d.output)
		}
		fmt.Fprintf(d.root.errOut(), "copied %s to clipboard\n", detail)
	}
	return nil
}

// expectPoints reads x y pairs. At least two points are needed for a drag.
func expectPoints(args []string) ([]canvas.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("coordinates must come in x y pairs")
	}
	if len(args) < 4 {
		return nil, fmt.Errorf("draw requires at least two points")
	}
	pts := make([]canvas.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", args[i])
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", args[i+1])
		}
		pts = append(pts, canvas.Pt(x, y))
	}
	return pts, nil
}

var drawFlagNames = map[string]struct{}{
	"tool":         {},
	"color":        {},
	"width":        {},
	"fill":         {},
	"background":   {},
	"size":         {},
	"save-dir":     {},
	"format":       {},
	"quality":      {},
	"output":       {},
	"to-clipboard": {},
	"to-clip":      {},
}

var drawBoolFlags = map[string]struct{}{
	"fill":         {},
	"to-clipboard": {},
	"to-clip":      {},
}

// splitDrawArgs separates known flags from coordinates so that negative
// numbers and flags may be mixed freely.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		// Normalise to single dash form for the flag parser.
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
