package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmylchreest/ramptone/internal/colour"
)

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	if !l.IsDebug() {
		t.Fatal("verbose logger is not at debug level")
	}
	l.Debug("hello", "key", "value")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), Name) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Error("nope")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}
}

func TestInstallRoutesColourWarnings(t *testing.T) {
	var buf bytes.Buffer
	Install(New(&buf, true))
	defer Install(nil)

	colour.HexToOKLCH("not-a-colour")
	if !strings.Contains(buf.String(), "colour") {
		t.Errorf("expected a colour warning, got %q", buf.String())
	}
}
