package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/appstate"
)

type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

// interactiveCmd reads script commands from a prompt and applies them to one
// shared drawing.
type interactiveCmd struct {
	*root
	fs       *flag.FlagSet
	settings *drawSettings
	execs    commandList
	stdin    io.Reader
	session  *session
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	i := &interactiveCmd{root: r, fs: fs, stdin: os.Stdin}
	fs.Usage = usageFunc(i)
	i.settings = bindDrawSettings(fs, r)
	fs.Var(&i.execs, "e", "execute a command in immediate mode (may be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	opts, err := i.settings.options()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		appstate.WithOnSave(i.root.notifySave),
		appstate.WithOnCopy(i.root.notifyCopy),
	)
	i.session = newSession(appstate.New(opts...), i.root.out())
	i.session.onSave = i.root.notifySave
	return i, nil
}

func (i *interactiveCmd) Run() error {
	if len(i.execs) > 0 {
		for _, line := range i.execs {
			done, err := i.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	out := i.root.out()
	fmt.Fprintln(out, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.root.errOut(), err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// executeLine runs one command and reports whether the session should end.
func (i *interactiveCmd) executeLine(line string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprint(i.root.out(), interactiveHelp)
		return false, nil
	}
	return false, i.session.exec(line)
}

const interactiveHelp = `down X Y | move X Y | up
tool NAME | color COLOR | width N | fill on|off
clear | save [PATH] | copy | exit
`
