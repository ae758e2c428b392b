package tmuxobj

import (
	"strconv"

	"github.com/abhinav/tmuxobj/internal/stringobj"
	shellwords "github.com/mattn/go-shellwords"
)

// NewSessionRequest specifies the parameters for a new-session command.
type NewSessionRequest struct {
	// Name of the session, if any.
	Name string

	// Name of the initial window, if any.
	WindowName string

	// Working directory of the new session.
	Dir string

	// Size of the new session's window.
	Width, Height int

	// Whether the new session should be detached from this client.
	Detached bool

	// Output format, if any. Without this, the command will not report the
	// new session.
	Format string

	// Shell command to run in the initial window, using shell quoting
	// rules. Leaves tmux's default shell in place if empty.
	Shell string
}

func (r NewSessionRequest) args() ([]string, error) {
	args := []string{"new-session"}
	if n := r.Name; len(n) > 0 {
		args = append(args, "-s", n)
	}
	if n := r.WindowName; len(n) > 0 {
		args = append(args, "-n", n)
	}
	if d := r.Dir; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if f := r.Format; len(f) > 0 {
		args = append(args, "-P", "-F", f)
	}
	if w := r.Width; w > 0 {
		args = append(args, "-x", strconv.Itoa(w))
	}
	if h := r.Height; h > 0 {
		args = append(args, "-y", strconv.Itoa(h))
	}
	if r.Detached {
		args = append(args, "-d")
	}
	return appendShell(args, r.Shell)
}

func (r NewSessionRequest) String() string {
	var b stringobj.Builder
	b.Put("name", r.Name)
	b.Put("windowName", r.WindowName)
	b.Put("dir", r.Dir)
	b.Put("width", r.Width)
	b.Put("height", r.Height)
	b.Put("detached", r.Detached)
	b.Put("shell", r.Shell)
	return b.String()
}

// NewWindowRequest specifies the parameters for a new-window command.
type NewWindowRequest struct {
	// Target session or window the new window is created in or after.
	Target string

	// Name of the window, if any.
	Name string

	// Working directory of the new window.
	Dir string

	// Whether the window should be created without making it the current
	// window.
	Detached bool

	// Output format, if any.
	Format string

	// Shell command to run in the window, using shell quoting rules.
	Shell string
}

func (r NewWindowRequest) args() ([]string, error) {
	args := []string{"new-window"}
	if t := r.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if n := r.Name; len(n) > 0 {
		args = append(args, "-n", n)
	}
	if d := r.Dir; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if f := r.Format; len(f) > 0 {
		args = append(args, "-P", "-F", f)
	}
	if r.Detached {
		args = append(args, "-d")
	}
	return appendShell(args, r.Shell)
}

func (r NewWindowRequest) String() string {
	var b stringobj.Builder
	b.Put("target", r.Target)
	b.Put("name", r.Name)
	b.Put("dir", r.Dir)
	b.Put("detached", r.Detached)
	b.Put("shell", r.Shell)
	return b.String()
}

// SplitWindowRequest specifies the parameters for a split-window command.
type SplitWindowRequest struct {
	// Target pane to split. Defaults to the current pane.
	Target string

	// Split left/right instead of top/bottom.
	Horizontal bool

	// Working directory of the new pane.
	Dir string

	// Output format, if any.
	Format string

	// Shell command to run in the new pane, using shell quoting rules.
	Shell string
}

func (r SplitWindowRequest) args() ([]string, error) {
	args := []string{"split-window"}
	if r.Horizontal {
		args = append(args, "-h")
	} else {
		args = append(args, "-v")
	}
	if t := r.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if d := r.Dir; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if f := r.Format; len(f) > 0 {
		args = append(args, "-P", "-F", f)
	}
	return appendShell(args, r.Shell)
}

func (r SplitWindowRequest) String() string {
	var b stringobj.Builder
	b.Put("target", r.Target)
	b.Put("horizontal", r.Horizontal)
	b.Put("dir", r.Dir)
	b.Put("shell", r.Shell)
	return b.String()
}

// SendKeysRequest specifies the parameters for a send-keys command.
type SendKeysRequest struct {
	// Target pane the keys are sent to. Defaults to the current pane.
	Target string

	// Text to send.
	Text string

	// Disable key name lookup, sending the text verbatim.
	Literal bool

	// Press Enter after the text. Sent as a separate key stroke so that
	// it combines with Literal.
	Enter bool
}

func (r SendKeysRequest) args() ([]string, error) {
	args := []string{"send-keys"}
	if t := r.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if r.Literal {
		args = append(args, "-l")
	}
	return append(args, r.Text), nil
}

func (r SendKeysRequest) String() string {
	var b stringobj.Builder
	b.Put("target", r.Target)
	b.Put("text", r.Text)
	b.Put("literal", r.Literal)
	b.Put("enter", r.Enter)
	return b.String()
}

// CapturePaneRequest specifies the parameters for a capture-pane command.
type CapturePaneRequest struct {
	// Target pane to capture. Defaults to the current pane.
	Target string

	// Start and end positions of the captured text. Negative lines are
	// positions in history.
	StartLine, EndLine int
}

func (r CapturePaneRequest) args() ([]string, error) {
	args := []string{"capture-pane", "-p"}
	if t := r.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if s := r.StartLine; s != 0 {
		args = append(args, "-S", strconv.Itoa(s))
	}
	if e := r.EndLine; e != 0 {
		args = append(args, "-E", strconv.Itoa(e))
	}
	return args, nil
}

func (r CapturePaneRequest) String() string {
	var b stringobj.Builder
	b.Put("target", r.Target)
	b.Put("startLine", r.StartLine)
	b.Put("endLine", r.EndLine)
	return b.String()
}

// appendShell splits the given shell command with shell quoting rules and
// appends the words to args.
func appendShell(args []string, shell string) ([]string, error) {
	if len(shell) == 0 {
		return args, nil
	}

	words, err := shellwords.Parse(shell)
	if err != nil {
		return nil, err
	}
	return append(args, words...), nil
}
