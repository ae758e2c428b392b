package tmuxobj

import (
	"fmt"

	"github.com/abhinav/tmuxobj/internal/log"
)

// Session is a tmux session: a named collection of windows managed by a
// server. Its FieldSet holds the fields tmux reported for it when it was
// listed or last refreshed.
type Session struct {
	FieldSet

	tmux Driver
	log  *log.Logger
}

// ID returns the unique identifier of the session ($0, $1, ...).
func (s *Session) ID() string {
	v, _ := s.Get("session_id")
	return v
}

// Name returns the name of the session.
func (s *Session) Name() string {
	v, _ := s.Get("session_name")
	return v
}

// target identifies this session to tmux commands. The session ID is
// preferred since it is stable across renames.
func (s *Session) target() string {
	if id := s.ID(); len(id) > 0 {
		return id
	}
	return s.Name()
}

// Windows lists the windows of this session. Each call reports a fresh
// snapshot; windows returned by earlier calls are not updated.
func (s *Session) Windows() ([]*Window, error) {
	out := s.tmux.Exec("list-windows", "-t", s.target(), "-F", _windowRecord.Format())
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("list-windows: %w", err)
	}

	windows := make([]*Window, 0, len(out.Stdout))
	for _, line := range out.Stdout {
		fields, err := _windowRecord.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("list-windows: %w", err)
		}
		windows = append(windows, &Window{
			FieldSet: *FieldSetFrom(fields),
			tmux:     s.tmux,
			log:      s.log,
		})
	}
	return windows, nil
}

// AttachedWindow returns the currently active window of this session.
func (s *Session) AttachedWindow() (*Window, error) {
	windows, err := s.Windows()
	if err != nil {
		return nil, err
	}

	for _, w := range windows {
		if active, err := w.Get("window_active"); err == nil && active == "1" {
			return w, nil
		}
	}
	return nil, fmt.Errorf("session %q: no active window", s.Name())
}

// NewWindow creates a new window in this session and reports it back.
func (s *Session) NewWindow(req NewWindowRequest) (*Window, error) {
	s.log.Debugf("new window: %v", req)

	if len(req.Target) == 0 {
		req.Target = s.target()
	}
	req.Format = _windowRecord.Format()
	args, err := req.args()
	if err != nil {
		return nil, fmt.Errorf("new-window: %w", err)
	}

	out := s.tmux.Exec(args...)
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("new-window: %w", err)
	}
	if len(out.Stdout) == 0 {
		return nil, fmt.Errorf("new-window: tmux reported nothing back")
	}

	fields, err := _windowRecord.Parse(out.first())
	if err != nil {
		return nil, fmt.Errorf("new-window: %w", err)
	}
	return &Window{
		FieldSet: *FieldSetFrom(fields),
		tmux:     s.tmux,
		log:      s.log,
	}, nil
}

// Rename renames the session. The local session_name field is updated to
// match; the session stays dirty until the next Refresh.
func (s *Session) Rename(name string) error {
	out := s.tmux.Exec("rename-session", "-t", s.target(), name)
	if err := out.Err(); err != nil {
		return fmt.Errorf("rename-session: %w", err)
	}
	s.Set("session_name", name)
	return nil
}

// Kill destroys the session.
func (s *Session) Kill() error {
	out := s.tmux.Exec("kill-session", "-t", s.target())
	if err := out.Err(); err != nil {
		return fmt.Errorf("kill-session: %w", err)
	}
	return nil
}

// Refresh refetches the session's fields from the server, replacing the
// FieldSet with a clean one.
func (s *Session) Refresh() error {
	out := s.tmux.Exec("display-message", "-p", "-t", s.target(), _sessionRecord.Format())
	if err := out.Err(); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	if len(out.Stdout) == 0 {
		return fmt.Errorf("refresh session: tmux reported nothing back")
	}

	fields, err := _sessionRecord.Parse(out.first())
	if err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	s.FieldSet = *FieldSetFrom(fields)
	return nil
}
