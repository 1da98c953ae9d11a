package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/theme"
)

type fakeExporter struct {
	name string
}

func (f fakeExporter) Name() string                 { return f.name }
func (f fakeExporter) Description() string          { return "fake " + f.name }
func (f fakeExporter) RegisterFlags(*cobra.Command) {}
func (f fakeExporter) Validate() error              { return nil }

func (f fakeExporter) Generate(th *theme.Theme) (map[string][]byte, error) {
	if th == nil {
		return nil, errors.New("theme cannot be nil")
	}
	return map[string][]byte{f.name + ".txt": []byte(f.name)}, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(fakeExporter{"b"}, fakeExporter{"a"})
	r.Register(fakeExporter{"c"})

	if got := strings.Join(r.List(), ","); got != "a,b,c" {
		t.Errorf("List() = %s, want a,b,c", got)
	}
	if _, ok := r.Get("a"); !ok {
		t.Error("Get(a) not found")
	}
	if _, ok := r.Get("z"); ok {
		t.Error("Get(z) found an unregistered exporter")
	}
}

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry(fakeExporter{"css"}, fakeExporter{"json"})

	got, err := r.Select([]string{"json", "css"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(got) != 2 || got[0].Name() != "json" || got[1].Name() != "css" {
		t.Errorf("Select() kept the wrong order: %v", got)
	}

	if _, err := r.Select([]string{"css", "pdf"}); err == nil || !strings.Contains(err.Error(), "unknown exporter: pdf") {
		t.Errorf("Select() error = %v, want unknown exporter", err)
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "theme")
	paths, err := Write(dir, map[string][]byte{
		"b.txt": []byte("bee"),
		"a.txt": []byte("ay"),
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "a.txt" {
		t.Errorf("Write() = %v, want a.txt first", paths)
	}
	data, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	if err != nil || string(data) != "bee" {
		t.Errorf("b.txt = %q, %v", data, err)
	}
}
