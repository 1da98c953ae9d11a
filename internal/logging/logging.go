// Package logging builds the hclog loggers used by the CLI.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/ramptone/internal/colour"
	"github.com/jmylchreest/ramptone/internal/tokens"
)

// Name is the root logger name.
const Name = "ramptone"

// New returns a logger writing debug output to w when verbose is set, and a
// silent logger otherwise.
func New(w io.Writer, verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   Name,
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// Install routes the colour and token package logs through l.
func Install(l hclog.Logger) {
	colour.SetLogger(l)
	tokens.SetLogger(l)
}
