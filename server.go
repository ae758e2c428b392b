package tmuxobj

import (
	"fmt"

	"github.com/abhinav/tmuxobj/internal/log"
)

// Server represents the tmux server behind the socket its Driver points at.
// It is the root of the session/window/pane hierarchy.
type Server struct {
	// Tmux runs commands against the server. Required.
	Tmux Driver

	// Log is used for logging. Defaults to no logging.
	Log *log.Logger
}

func (s *Server) logger() *log.Logger {
	if s.Log == nil {
		return log.Discard
	}
	return s.Log
}

// HasSession reports whether a session with the given name exists on the
// server. A missing session, like any other failure to answer the query, is
// reported as absence.
func (s *Server) HasSession(name string) bool {
	out := s.Tmux.Exec("has-session", "-t", name)
	return !out.failed && len(out.Stdout) == 0 && len(out.Stderr) == 0
}

// Sessions lists the sessions running on the server. Each call reports a
// fresh snapshot; sessions returned by earlier calls are not updated.
func (s *Server) Sessions() ([]*Session, error) {
	out := s.Tmux.Exec("list-sessions", "-F", _sessionRecord.Format())
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("list-sessions: %w", err)
	}

	sessions := make([]*Session, 0, len(out.Stdout))
	for _, line := range out.Stdout {
		fields, err := _sessionRecord.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("list-sessions: %w", err)
		}
		sessions = append(sessions, &Session{
			FieldSet: *FieldSetFrom(fields),
			tmux:     s.Tmux,
			log:      s.logger(),
		})
	}
	return sessions, nil
}

// NewSession creates a new session on the server and reports it back.
func (s *Server) NewSession(req NewSessionRequest) (*Session, error) {
	s.logger().Debugf("new session: %v", req)

	req.Format = _sessionRecord.Format()
	args, err := req.args()
	if err != nil {
		return nil, fmt.Errorf("new-session: %w", err)
	}

	out := s.Tmux.Exec(args...)
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("new-session: %w", err)
	}
	if len(out.Stdout) == 0 {
		return nil, fmt.Errorf("new-session: tmux reported nothing back")
	}

	fields, err := _sessionRecord.Parse(out.first())
	if err != nil {
		return nil, fmt.Errorf("new-session: %w", err)
	}
	return &Session{
		FieldSet: *FieldSetFrom(fields),
		tmux:     s.Tmux,
		log:      s.logger(),
	}, nil
}

// KillSession destroys the named session.
func (s *Server) KillSession(name string) error {
	out := s.Tmux.Exec("kill-session", "-t", name)
	if err := out.Err(); err != nil {
		return fmt.Errorf("kill-session %q: %w", name, err)
	}
	return nil
}

// KillServer kills the server and with it every session it manages.
func (s *Server) KillServer() error {
	out := s.Tmux.Exec("kill-server")
	if err := out.Err(); err != nil {
		return fmt.Errorf("kill-server: %w", err)
	}
	return nil
}
