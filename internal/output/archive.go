package output

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ulikunitz/xz"
)

// MaxArchiveSize caps the bytes ReadArchive will decompress.
const MaxArchiveSize = 32 * 1024 * 1024

// WriteArchive writes files as a tar.xz stream, entries in name order.
func WriteArchive(w io.Writer, files map[string][]byte) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	now := time.Now()
	for _, name := range names {
		header := &tar.Header{
			Name:    name,
			Mode:    0o644,
			Size:    int64(len(files[name])),
			ModTime: now,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write archive header for %s: %w", name, err)
		}
		if _, err := tw.Write(files[name]); err != nil {
			return fmt.Errorf("failed to write %s to archive: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to close tar archive: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to close xz stream: %w", err)
	}
	return nil
}

// WriteArchiveFile writes files to a tar.xz archive at path, creating parent
// directories as needed.
func WriteArchiveFile(path string, files map[string][]byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	out, err := os.Create(path) // #nosec G304 - User-specified archive path
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	writeErr := WriteArchive(out, files)
	closeErr := out.Close()

	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close archive: %w", closeErr)
	}
	return nil
}

// ReadArchive reads a tar.xz stream written by WriteArchive. Directory entries
// are skipped; decompression stops with an error past MaxArchiveSize.
func ReadArchive(r io.Reader) (map[string][]byte, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	tr := tar.NewReader(&limitedReader{r: xzr, remaining: MaxArchiveSize})

	files := make(map[string][]byte)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return files, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag == tar.TypeDir {
			continue
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from archive: %w", header.Name, err)
		}
		files[header.Name] = data
	}
}

// limitedReader fails once more than remaining bytes have been read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
