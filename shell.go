package tmuxobj

import (
	"bytes"
	"errors"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"github.com/abhinav/tmuxobj/internal/log"
)

const _defaultTmux = "tmux"

// minimal hook to change how exec.Cmd are run. Tests will provide a
// different implementation.
type runner struct {
	Run func(*exec.Cmd) error
}

var defaultRunner = runner{Run: (*exec.Cmd).Run}

// ShellDriver is a Driver implementation that shells out to the tmux binary
// to run commands.
type ShellDriver struct {
	// Path to the tmux executable. Defaults to "tmux".
	Path string

	// SocketName selects an alternative server socket by name (tmux -L).
	SocketName string

	// SocketPath selects a server socket by full path (tmux -S). Takes
	// effect after SocketName if both are set.
	SocketPath string

	log  *log.Logger
	run  *runner
	once sync.Once
}

var _ Driver = (*ShellDriver)(nil)

func (s *ShellDriver) init() {
	s.once.Do(func() {
		if s.log == nil {
			s.log = log.Discard
		}

		if s.Path == "" {
			s.Path = _defaultTmux
		}

		if s.run == nil {
			s.run = &defaultRunner
		}
	})
}

// SetLogger specifies the logger for the ShellDriver. By default, the
// ShellDriver does not log anything.
func (s *ShellDriver) SetLogger(log *log.Logger) {
	s.log = log
}

// Exec invokes tmux with the given arguments, blocking the calling
// goroutine until the process exits, and captures both of its streams as
// line sequences with empty lines dropped.
//
// Exec is best effort: a failure to launch the process is logged at error
// level and yields an empty Output instead of an error. A non-zero exit is
// not a launch failure; tmux reports boundary conditions, such as a missing
// session, on stderr with a non-zero exit, and those streams are still
// returned.
func (s *ShellDriver) Exec(args ...string) Output {
	s.init()

	argv := make([]string, 0, len(args)+4)
	if s.SocketName != "" {
		argv = append(argv, "-L", s.SocketName)
	}
	if s.SocketPath != "" {
		argv = append(argv, "-S", s.SocketPath)
	}
	argv = append(argv, args...)

	cmd := exec.Command(s.Path, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := s.run.Run(cmd); err != nil {
		var exit *exec.ExitError
		if !errors.As(err, &exit) {
			s.log.Errorf("exec %q: %v", argv, err)
			return Output{failed: true}
		}
	}

	out := Output{
		Stdout: splitLines(stdout.Bytes()),
		Stderr: splitLines(stderr.Bytes()),
	}

	// tmux answers a has-session query for a missing session on stderr.
	// Surface that report on stdout so that presence checks have a single
	// channel to inspect.
	if len(out.Stdout) == 0 && len(out.Stderr) > 0 && slices.Contains(args, "has-session") {
		out.Stdout = []string{out.Stderr[0]}
	}

	s.log.Debugf("%s: %q", strings.Join(argv, " "), out.Stdout)
	return out
}

// splitLines splits the raw output into lines, dropping empty ones.
func splitLines(bs []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(bs), "\n") {
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}
