// Package tmuxopt loads tmux options into user-specified variables.
package tmuxopt

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/abhinav/tmuxobj"
	"go.uber.org/multierr"
)

// Value is a receiver for a tmux option value.
type Value interface {
	Set(value string) error
}

var _ Value = flag.Value(nil) // interface matching

// Loader loads tmux options into user-specified variables.
type Loader struct {
	// Tmux runs the show-options command. Required.
	Tmux tmuxobj.Driver

	once   sync.Once
	values map[string]Value
}

func (l *Loader) init() {
	l.once.Do(func() { l.values = make(map[string]Value) })
}

// Var specifies that the given option should be loaded into the provided
// Value object.
func (l *Loader) Var(val Value, option string) {
	l.init()

	l.values[option] = val
}

// StringVar specifies that the given option should be loaded as a string.
func (l *Loader) StringVar(dest *string, option string) {
	l.Var((*stringValue)(dest), option)
}

// BoolVar specifies that the given option should be loaded as a boolean.
// tmux spells booleans "on" and "off".
func (l *Loader) BoolVar(dest *bool, option string) {
	l.Var((*boolValue)(dest), option)
}

// IntVar specifies that the given option should be loaded as an integer.
func (l *Loader) IntVar(dest *int, option string) {
	l.Var((*intValue)(dest), option)
}

// Load loads tmux options through the underlying Driver, filling all
// previously specified values and vars. Reads the global options if global
// is true, the current session's otherwise.
func (l *Loader) Load(global bool) (err error) {
	if len(l.values) == 0 {
		return nil
	}

	args := []string{"show-options"}
	if global {
		args = append(args, "-g")
	}

	out := l.Tmux.Exec(args...)
	if lerr := out.Err(); lerr != nil {
		return fmt.Errorf("show-options: %w", lerr)
	}

	for _, line := range out.Stdout {
		name, value, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}

		r, ok := l.values[name]
		if !ok {
			continue
		}

		if serr := r.Set(unquote(value)); serr != nil {
			err = multierr.Append(err, fmt.Errorf("load option %q: %v", name, serr))
		}
	}

	return err
}

// unquote strips the quoting tmux applies to option values that need it.
// Values that don't unquote cleanly are returned as is.
func unquote(s string) string {
	if len(s) > 0 {
		switch s[0] {
		case '"', '\'':
			if o, err := strconv.Unquote(s); err == nil {
				return o
			}
		}
	}
	return s
}

type stringValue string

func (v *stringValue) Set(s string) error {
	*(*string)(v) = s
	return nil
}

type boolValue bool

func (v *boolValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "on", "yes", "1":
		*(*bool)(v) = true
	case "off", "no", "0":
		*(*bool)(v) = false
	default:
		return fmt.Errorf("invalid boolean value %q", s)
	}
	return nil
}

type intValue int

func (v *intValue) Set(s string) error {
	i, err := strconv.Atoi(s)
	if err == nil {
		*(*int)(v) = i
	}
	return err
}
