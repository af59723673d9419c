package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/shapes"
)

// session applies pointer script commands to one drawing.
type session struct {
	state  *appstate.AppState
	out    io.Writer
	onSave func(path string)
	saved  int
}

func newSession(state *appstate.AppState, out io.Writer) *session {
	return &session{state: state, out: out}
}

// run executes every line of r, stopping at the first failing command.
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := s.exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

// exec runs a single script line. Blank lines and lines starting with '#'
// are ignored.
func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	m := s.state.Gesture()
	switch cmd {
	case "down":
		p, err := parsePoint(args)
		if err != nil {
			return err
		}
		m.PointerDown(p)
	case "move":
		p, err := parsePoint(args)
		if err != nil {
			return err
		}
		m.PointerMove(p)
	case "up":
		if len(args) != 0 {
			return fmt.Errorf("up takes no arguments")
		}
		m.PointerUp()
	case "tool":
		if len(args) != 1 {
			return fmt.Errorf("tool requires a name")
		}
		t, err := shapes.ParseTool(args[0])
		if err != nil {
			return err
		}
		s.state.SetTool(t)
	case "color", "colour":
		if len(args) != 1 {
			return fmt.Errorf("color requires a value")
		}
		c, err := appstate.ParseColor(args[0])
		if err != nil {
			return err
		}
		s.state.SetColor(c)
	case "width":
		if len(args) != 1 {
			return fmt.Errorf("width requires a value")
		}
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid width %q", args[0])
		}
		s.state.SetWidth(w)
	case "fill":
		if len(args) != 1 {
			return fmt.Errorf("fill requires on or off")
		}
		fill, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		s.state.SetFill(fill)
	case "clear":
		s.state.Clear()
	case "save":
		return s.save(args)
	case "copy":
		if err := s.state.Copy(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "copied drawing to clipboard")
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}

func (s *session) save(args []string) error {
	var path string
	switch len(args) {
	case 0:
		p, err := s.state.Save()
		if err != nil {
			return err
		}
		path = p
	case 1:
		if err := s.saveTo(args[0]); err != nil {
			return err
		}
		path = args[0]
		if s.onSave != nil {
			s.onSave(path)
		}
	default:
		return fmt.Errorf("save takes at most one path")
	}
	s.saved++
	fmt.Fprintf(s.out, "saved %s\n", path)
	return nil
}

// saveTo writes the drawing to path, taking the format from its extension.
func (s *session) saveTo(path string) error {
	opts := s.state.Export
	if ext := filepath.Ext(path); ext != "" {
		format, err := export.ParseFormat(ext)
		if err != nil {
			return err
		}
		opts.Format = format
	}
	return export.WriteFile(path, s.state.Surface, opts)
}

func parsePoint(args []string) (canvas.Point, error) {
	if len(args) != 2 {
		return canvas.Point{}, fmt.Errorf("expected x y")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return canvas.Point{}, fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return canvas.Point{}, fmt.Errorf("invalid y %q", args[1])
	}
	return canvas.Pt(x, y), nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid switch %q, want on or off", s)
}
