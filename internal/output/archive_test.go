package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestArchiveRoundTrip(t *testing.T) {
	files := map[string][]byte{
		"ramp.css":  []byte(":root {\n  --brand-100: #1E1B4B;\n}\n"),
		"ramp.json": []byte(`{"stops":[]}`),
		"empty.txt": {},
	}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, files); err != nil {
		t.Fatalf("WriteArchive() error = %v", err)
	}

	got, err := ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive() error = %v", err)
	}
	if len(got) != len(files) {
		t.Fatalf("ReadArchive() returned %d files, want %d", len(got), len(files))
	}
	for name, want := range files {
		if !bytes.Equal(got[name], want) {
			t.Errorf("%s = %q, want %q", name, got[name], want)
		}
	}
}

func TestWriteArchiveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "theme.tar.xz")
	if err := WriteArchiveFile(path, map[string][]byte{"a.txt": []byte("a")}); err != nil {
		t.Fatalf("WriteArchiveFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	got, err := ReadArchive(f)
	if err != nil {
		t.Fatalf("ReadArchive() error = %v", err)
	}
	if string(got["a.txt"]) != "a" {
		t.Errorf("a.txt = %q, want %q", got["a.txt"], "a")
	}
}

func TestReadArchiveRejectsGarbage(t *testing.T) {
	if _, err := ReadArchive(bytes.NewReader([]byte("not an archive"))); err == nil {
		t.Error("ReadArchive() expected an error for non-xz input")
	}
}

func TestLimitedReader(t *testing.T) {
	l := &limitedReader{r: bytes.NewReader(make([]byte, 10)), remaining: 4}
	p := make([]byte, 10)

	n, err := l.Read(p)
	if n != 4 || err != nil {
		t.Fatalf("Read() = %d, %v, want 4, nil", n, err)
	}
	if _, err := l.Read(p); err == nil {
		t.Error("Read() past the limit expected an error")
	}
}
