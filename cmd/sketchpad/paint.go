package main

import (
	"flag"

	"github.com/example/sketchpad/internal/appstate"
)

type paintCmd struct {
	*root
	fs       *flag.FlagSet
	settings *drawSettings
	state    *appstate.AppState
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	p := &paintCmd{root: r, fs: fs}
	fs.Usage = usageFunc(p)
	p.settings = bindDrawSettings(fs, r)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	opts, err := p.settings.options()
	if err != nil {
		return nil, err
	}
	if r != nil {
		opts = append(opts,
			appstate.WithTheme(r.activeTheme),
			appstate.WithOnSave(r.notifySave),
			appstate.WithOnCopy(r.notifyCopy),
		)
	}
	p.state = appstate.New(opts...)
	return p, nil
}

func (p *paintCmd) Run() error {
	p.state.Run()
	return nil
}
