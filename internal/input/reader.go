package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineSize caps a single scanned line at 1 MiB.
const maxLineSize = 1024 * 1024

// Reader opens files for line-oriented scanning. The search loop takes a
// Reader rather than calling os.Open directly so tests can inject
// in-memory content.
type Reader interface {
	Open(path string) (io.ReadCloser, error)
}

// FileReader opens files from the filesystem.
type FileReader struct{}

// NewFileReader creates a FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

func (r *FileReader) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// ScanLines calls fn for each line of rc in order, with the 0-based line
// index and the line content without its terminator. Returns the first
// error from the underlying read or from fn.
func ScanLines(rc io.ReadCloser, fn func(idx int, line []byte) error) error {
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	idx := 0
	for scanner.Scan() {
		if err := fn(idx, scanner.Bytes()); err != nil {
			return err
		}
		idx++
	}
	return scanner.Err()
}
