// Package console provides the line-oriented input used by the order session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/makkah-counter/internal/domain"
)

// Ensure Reader implements domain.LineReader.
var _ domain.LineReader = (*Reader)(nil)

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 * 1024

// Reader reads newline-terminated lines from an io.Reader.
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, maxLineBytes)}
}

// ReadLine returns the next line without its line terminator.
// A final line without a trailing newline is still returned.
// A line longer than maxLineBytes is skipped up to its newline and
// reported as domain.ErrLineTooLong; the next call reads the line after it.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadSlice('\n')
	switch {
	case err == nil:
		return trimEOL(line), nil
	case errors.Is(err, bufio.ErrBufferFull):
		if err := r.discardLine(); err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", domain.ErrInputClosed, err)
		}
		return "", domain.ErrLineTooLong
	case errors.Is(err, io.EOF):
		if len(line) > 0 {
			return trimEOL(line), nil
		}
		return "", domain.ErrInputClosed
	default:
		return "", fmt.Errorf("%w: %w", domain.ErrInputClosed, err)
	}
}

// discardLine consumes input through the next newline.
func (r *Reader) discardLine() error {
	for {
		_, err := r.r.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

func trimEOL(line []byte) string {
	s := strings.TrimSuffix(string(line), "\n")
	return strings.TrimSuffix(s, "\r")
}
