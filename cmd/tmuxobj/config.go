package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/tmuxobj/tmuxopt"
)

type config struct {
	SocketName string
	SocketPath string
	LogFile    string
	Verbose    bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.SocketName, "socket-name", "", "")
	flag.StringVar(&c.SocketPath, "socket-path", "", "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

func (c *config) RegisterOptions(load *tmuxopt.Loader) {
	load.StringVar(&c.LogFile, "@tmuxobj-log")
	load.BoolVar(&c.Verbose, "@tmuxobj-verbose")
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.SocketName) == 0 {
		c.SocketName = o.SocketName
	}
	if len(c.SocketPath) == 0 {
		c.SocketPath = o.SocketPath
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Verbose = c.Verbose || o.Verbose
}

// BuildLogWriter builds the writer logs should be written to, and a function
// to release it.
func (c *config) BuildLogWriter(stderr io.Writer) (w io.Writer, close func() error, err error) {
	if len(c.LogFile) == 0 {
		return stderr, func() error { return nil }, nil
	}

	f, err := os.Create(c.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create log file: %w", err)
	}
	return f, f.Close, nil
}
