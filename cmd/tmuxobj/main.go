package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/tmuxobj"
	"github.com/abhinav/tmuxobj/internal/log"
	"github.com/abhinav/tmuxobj/tmuxopt"
	"go.uber.org/multierr"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := cmd.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer

	// To override the tmux driver for tests.
	tmux tmuxobj.Driver
}

const _usage = `usage: %v [options]

Prints the session/window/pane tree of a running tmux server.

The following flags are available:

	-socket-name NAME
		name of the server socket to connect to (tmux -L).
	-socket-path PATH
		full path of the server socket to connect to (tmux -S).
	-log FILE
		file to write logs to.
		Uses stderr by default.
		May also be set with the @tmuxobj-log tmux option.
	-verbose
		log more output.
		May also be set with the @tmuxobj-verbose tmux option.
`

func (cmd *mainCmd) Run(args []string) (err error) {
	flag := flag.NewFlagSet("tmuxobj", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), _usage, flag.Name())
	}

	var cfg config
	cfg.RegisterFlags(flag)

	if err := flag.Parse(args); err != nil {
		return err
	}

	if args := flag.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected arguments %q", args)
	}

	var shell *tmuxobj.ShellDriver
	driver := cmd.tmux
	if driver == nil {
		shell = &tmuxobj.ShellDriver{
			SocketName: cfg.SocketName,
			SocketPath: cfg.SocketPath,
		}
		driver = shell
	}

	// Options must load before the log writer is built so that a log
	// file named only by a tmux option still takes effect.
	loader := tmuxopt.Loader{Tmux: driver}
	var tmuxCfg config
	tmuxCfg.RegisterOptions(&loader)
	if err := loader.Load(true /* global */); err != nil {
		return fmt.Errorf("load options: %v", err)
	}
	cfg.FillFrom(&tmuxCfg)

	logW, closeLog, err := cfg.BuildLogWriter(cmd.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closeLog())
	}()

	logger := log.New(logW)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}
	if shell != nil {
		shell.SetLogger(logger.WithName("tmux"))
	}

	return cmd.printTree(&tmuxobj.Server{
		Tmux: driver,
		Log:  logger,
	})
}

func (cmd *mainCmd) printTree(server *tmuxobj.Server) error {
	sessions, err := server.Sessions()
	if err != nil {
		return err
	}

	for _, sess := range sessions {
		windows, err := sess.Windows()
		if err != nil {
			return err
		}

		attached := ""
		if v, err := sess.Get("session_attached"); err == nil && v != "0" {
			attached = " (attached)"
		}
		fmt.Fprintf(cmd.Stdout, "%s: %d windows%s\n", sess.Name(), len(windows), attached)

		for _, w := range windows {
			idx, _ := w.Index()
			active := ""
			if v, err := w.Get("window_active"); err == nil && v == "1" {
				active = " (active)"
			}
			fmt.Fprintf(cmd.Stdout, "  %d: %s%s\n", idx, w.Name(), active)

			panes, err := w.Panes()
			if err != nil {
				return err
			}
			for _, p := range panes {
				current, _ := p.Get("pane_current_command")
				width, _ := p.Int("pane_width")
				height, _ := p.Int("pane_height")
				active := ""
				if v, err := p.Get("pane_active"); err == nil && v == "1" {
					active = " (active)"
				}
				fmt.Fprintf(cmd.Stdout, "    %s: %s [%dx%d]%s\n", p.ID(), current, width, height, active)
			}
		}
	}
	return nil
}
