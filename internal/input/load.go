// Package input loads the whole contents of a file into a read-only byte
// buffer for a single extraction pass.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/rs/zerolog/log"
)

// ErrEmptyFile is returned for zero-length inputs; there is nothing to
// scan and the run is aborted before extraction starts.
var ErrEmptyFile = errors.New("empty file")

// Load returns the contents of path and a release function the caller must
// invoke once done with the bytes. Regular files are memory-mapped
// read-only; when mapping fails the file is read in one slurp instead. A
// zero-length file is an error.
func Load(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat %q: %w", path, err)
	}
	if fi.Mode().IsRegular() && fi.Size() == 0 {
		return nil, nil, fmt.Errorf("%q: %w", path, ErrEmptyFile)
	}

	if fi.Mode().IsRegular() {
		mm, err := mmap.Map(f, mmap.RDONLY, 0)
		if err == nil {
			return mm, func() { _ = mm.Unmap() }, nil
		}
		log.Debug().Err(err).Str("path", path).Msg("mmap failed, reading instead")
	}

	return slurp(f, path, fi.Size())
}

// slurp reads up to size bytes from f in one go. A short read is reported
// as a warning and the bytes actually read are used.
func slurp(f *os.File, path string, size int64) ([]byte, func(), error) {
	if size <= 0 {
		// Pipes and special files report size 0; read until EOF.
		buf, err := io.ReadAll(f)
		if err != nil {
			return nil, nil, fmt.Errorf("read %q: %w", path, err)
		}
		if len(buf) == 0 {
			return nil, nil, fmt.Errorf("%q: %w", path, ErrEmptyFile)
		}
		return buf, func() {}, nil
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF):
		if n == 0 {
			return nil, nil, fmt.Errorf("%q: %w", path, ErrEmptyFile)
		}
		log.Warn().Str("path", path).Int64("want", size).Int("got", n).
			Msg("short read, continuing with partial contents")
	case err != nil:
		return nil, nil, fmt.Errorf("read %q: %w", path, err)
	}
	return buf[:n], func() {}, nil
}
