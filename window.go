package tmuxobj

import (
	"fmt"

	"github.com/abhinav/tmuxobj/internal/log"
)

// Window is a single window of a tmux session, holding one or more panes.
// Its FieldSet holds the fields tmux reported for it when it was listed or
// last refreshed.
type Window struct {
	FieldSet

	tmux Driver
	log  *log.Logger
}

// ID returns the unique identifier of the window (@0, @1, ...).
func (w *Window) ID() string {
	v, _ := w.Get("window_id")
	return v
}

// Index returns the position of the window inside its session.
func (w *Window) Index() (int, error) {
	return w.Int("window_index")
}

// Name returns the name of the window.
func (w *Window) Name() string {
	v, _ := w.Get("window_name")
	return v
}

func (w *Window) target() string {
	return w.ID()
}

// Panes lists the panes of this window. Each call reports a fresh snapshot;
// panes returned by earlier calls are not updated.
func (w *Window) Panes() ([]*Pane, error) {
	out := w.tmux.Exec("list-panes", "-t", w.target(), "-F", _paneRecord.Format())
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("list-panes: %w", err)
	}

	panes := make([]*Pane, 0, len(out.Stdout))
	for _, line := range out.Stdout {
		fields, err := _paneRecord.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("list-panes: %w", err)
		}
		panes = append(panes, &Pane{
			FieldSet: *FieldSetFrom(fields),
			tmux:     w.tmux,
			log:      w.log,
		})
	}
	return panes, nil
}

// ActivePane returns the currently active pane of this window.
func (w *Window) ActivePane() (*Pane, error) {
	panes, err := w.Panes()
	if err != nil {
		return nil, err
	}

	for _, p := range panes {
		if active, err := p.Get("pane_active"); err == nil && active == "1" {
			return p, nil
		}
	}
	return nil, fmt.Errorf("window %q: no active pane", w.ID())
}

// Split splits a pane of this window in two and reports the new pane back.
// The request's target defaults to the window's active pane.
func (w *Window) Split(req SplitWindowRequest) (*Pane, error) {
	w.log.Debugf("split window: %v", req)

	if len(req.Target) == 0 {
		req.Target = w.target()
	}
	req.Format = _paneRecord.Format()
	args, err := req.args()
	if err != nil {
		return nil, fmt.Errorf("split-window: %w", err)
	}

	out := w.tmux.Exec(args...)
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("split-window: %w", err)
	}
	if len(out.Stdout) == 0 {
		return nil, fmt.Errorf("split-window: tmux reported nothing back")
	}

	fields, err := _paneRecord.Parse(out.first())
	if err != nil {
		return nil, fmt.Errorf("split-window: %w", err)
	}
	return &Pane{
		FieldSet: *FieldSetFrom(fields),
		tmux:     w.tmux,
		log:      w.log,
	}, nil
}

// Select makes this the current window of its session.
func (w *Window) Select() error {
	out := w.tmux.Exec("select-window", "-t", w.target())
	if err := out.Err(); err != nil {
		return fmt.Errorf("select-window: %w", err)
	}
	return nil
}

// Rename renames the window. The local window_name field is updated to
// match; the window stays dirty until the next Refresh.
func (w *Window) Rename(name string) error {
	out := w.tmux.Exec("rename-window", "-t", w.target(), name)
	if err := out.Err(); err != nil {
		return fmt.Errorf("rename-window: %w", err)
	}
	w.Set("window_name", name)
	return nil
}

// Kill destroys the window.
func (w *Window) Kill() error {
	out := w.tmux.Exec("kill-window", "-t", w.target())
	if err := out.Err(); err != nil {
		return fmt.Errorf("kill-window: %w", err)
	}
	return nil
}

// Refresh refetches the window's fields from the server, replacing the
// FieldSet with a clean one.
func (w *Window) Refresh() error {
	out := w.tmux.Exec("display-message", "-p", "-t", w.target(), _windowRecord.Format())
	if err := out.Err(); err != nil {
		return fmt.Errorf("refresh window: %w", err)
	}
	if len(out.Stdout) == 0 {
		return fmt.Errorf("refresh window: tmux reported nothing back")
	}

	fields, err := _windowRecord.Parse(out.first())
	if err != nil {
		return fmt.Errorf("refresh window: %w", err)
	}
	w.FieldSet = *FieldSetFrom(fields)
	return nil
}
