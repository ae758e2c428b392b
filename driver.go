package tmuxobj

import (
	"errors"
	"strings"
)

//go:generate go run github.com/golang/mock/mockgen -source driver.go -destination tmuxtest/mockdriver.go -package tmuxtest

// Driver is the low-level API to access tmux. Every command the library
// issues goes through a single Exec call.
type Driver interface {
	// Exec invokes tmux with the given arguments, blocks until it exits,
	// and captures its output.
	//
	// Exec never fails: if the binary cannot be launched, the failure is
	// logged and an empty Output is returned.
	Exec(args ...string) Output
}

// Output holds the captured streams of a single tmux invocation, split into
// lines with empty lines dropped. An Output is fully materialized and must
// not be modified once returned.
type Output struct {
	Stdout []string
	Stderr []string

	// The process never ran; both streams are meaningless, not merely
	// empty. Presence checks must not read this as a positive answer.
	failed bool
}

// Err converts the error stream into an error. tmux reports command
// failures as one or more lines on stderr; Err joins them. Returns nil if
// stderr was empty.
func (o Output) Err() error {
	if len(o.Stderr) == 0 {
		return nil
	}
	return errors.New(strings.Join(o.Stderr, "; "))
}

// first returns the first stdout line, or an empty string if there is none.
func (o Output) first() string {
	if len(o.Stdout) == 0 {
		return ""
	}
	return o.Stdout[0]
}
