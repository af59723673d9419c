package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/example/sketchpad/internal/appstate"
)

type replayCmd struct {
	*root
	fs       *flag.FlagSet
	settings *drawSettings
	output   string
	script   string
	stdin    io.Reader
	state    *appstate.AppState
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs, stdin: os.Stdin}
	fs.Usage = usageFunc(c)
	c.settings = bindDrawSettings(fs, r)
	fs.StringVar(&c.output, "output", "", "output file path written after the script finishes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
		c.script = "-"
	case 1:
		c.script = fs.Arg(0)
	default:
		return nil, &UsageError{of: c}
	}
	opts, err := c.settings.options()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		appstate.WithOnSave(c.root.notifySave),
		appstate.WithOnCopy(c.root.notifyCopy),
	)
	c.state = appstate.New(opts...)
	return c, nil
}

func (c *replayCmd) Run() error {
	in := c.stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("error closing %q: %v", f.Name(), err)
			}
		}()
		in = f
	}

	s := newSession(c.state, c.root.errOut())
	s.onSave = c.root.notifySave
	if err := s.run(in); err != nil {
		return fmt.Errorf("replay %s: %w", c.scriptName(), err)
	}
	// A gesture left open by the script still belongs in the export.
	c.state.Gesture().PointerUp()

	switch {
	case c.output != "":
		return s.save([]string{c.output})
	case s.saved == 0:
		return s.save(nil)
	}
	return nil
}

func (c *replayCmd) scriptName() string {
	if c.script == "-" {
		return "stdin"
	}
	return c.script
}
