package tmuxobj

import (
	"fmt"

	"github.com/abhinav/tmuxobj/internal/log"
)

// Pane is a single pane of a tmux window: one pseudo terminal running a
// command. Its FieldSet holds the fields tmux reported for it when it was
// listed or last refreshed.
type Pane struct {
	FieldSet

	tmux Driver
	log  *log.Logger
}

// ID returns the unique identifier of the pane (%0, %1, ...).
func (p *Pane) ID() string {
	v, _ := p.Get("pane_id")
	return v
}

// Index returns the position of the pane inside its window.
func (p *Pane) Index() (int, error) {
	return p.Int("pane_index")
}

func (p *Pane) target() string {
	return p.ID()
}

// SendKeys sends key strokes to the pane. The request's target defaults to
// this pane.
func (p *Pane) SendKeys(req SendKeysRequest) error {
	p.log.Debugf("send keys: %v", req)

	if len(req.Target) == 0 {
		req.Target = p.target()
	}
	args, err := req.args()
	if err != nil {
		return fmt.Errorf("send-keys: %w", err)
	}

	out := p.tmux.Exec(args...)
	if err := out.Err(); err != nil {
		return fmt.Errorf("send-keys: %w", err)
	}

	if req.Enter {
		out := p.tmux.Exec("send-keys", "-t", req.Target, "Enter")
		if err := out.Err(); err != nil {
			return fmt.Errorf("send-keys: %w", err)
		}
	}
	return nil
}

// Capture captures the visible contents of the pane, or a slice of its
// history, as a sequence of non-empty lines. The request's target defaults
// to this pane.
func (p *Pane) Capture(req CapturePaneRequest) ([]string, error) {
	if len(req.Target) == 0 {
		req.Target = p.target()
	}
	args, err := req.args()
	if err != nil {
		return nil, fmt.Errorf("capture-pane: %w", err)
	}

	out := p.tmux.Exec(args...)
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("capture-pane: %w", err)
	}
	return out.Stdout, nil
}

// Select makes this the active pane of its window.
func (p *Pane) Select() error {
	out := p.tmux.Exec("select-pane", "-t", p.target())
	if err := out.Err(); err != nil {
		return fmt.Errorf("select-pane: %w", err)
	}
	return nil
}

// Kill destroys the pane.
func (p *Pane) Kill() error {
	out := p.tmux.Exec("kill-pane", "-t", p.target())
	if err := out.Err(); err != nil {
		return fmt.Errorf("kill-pane: %w", err)
	}
	return nil
}

// Refresh refetches the pane's fields from the server, replacing the
// FieldSet with a clean one.
func (p *Pane) Refresh() error {
	out := p.tmux.Exec("display-message", "-p", "-t", p.target(), _paneRecord.Format())
	if err := out.Err(); err != nil {
		return fmt.Errorf("refresh pane: %w", err)
	}
	if len(out.Stdout) == 0 {
		return fmt.Errorf("refresh pane: tmux reported nothing back")
	}

	fields, err := _paneRecord.Parse(out.first())
	if err != nil {
		return fmt.Errorf("refresh pane: %w", err)
	}
	p.FieldSet = *FieldSetFrom(fields)
	return nil
}
