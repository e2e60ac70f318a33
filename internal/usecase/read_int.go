package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/runoshun/makkah-counter/internal/receipt"
)

// IntPrompt asks for an integer until the answer lies within a range.
// It is the only place user-typed numbers enter the system.
// Fields are ordered to minimize memory padding.
type IntPrompt struct {
	in      domain.LineReader
	out     io.Writer
	logger  domain.Logger
	printer *receipt.Printer
	round   int
}

// NewIntPrompt creates a new IntPrompt.
func NewIntPrompt(in domain.LineReader, out io.Writer, printer *receipt.Printer, logger domain.Logger) *IntPrompt {
	return &IntPrompt{
		in:      in,
		out:     out,
		printer: printer,
		logger:  logger,
	}
}

// ForRound returns a copy that tags its log entries with the given round.
func (p *IntPrompt) ForRound(round int) *IntPrompt {
	cp := *p
	cp.round = round
	return &cp
}

// ReadIntInRange writes prompt, reads a line and returns it as an integer in [lo, hi].
// Anything else prints a warning naming the range and asks again, with no retry limit.
// An over-long line counts as malformed input.
// The only errors are a failing input stream and a done context.
func (p *IntPrompt) ReadIntInRange(ctx context.Context, prompt string, lo, hi int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		_, _ = fmt.Fprint(p.out, prompt)
		line, err := p.in.ReadLine()
		switch {
		case errors.Is(err, domain.ErrLineTooLong):
			p.logger.Debug(p.round, "input", fmt.Sprintf("rejected over-long line, want %d-%d", lo, hi))
		case err != nil:
			return 0, fmt.Errorf("read number: %w", err)
		default:
			if n, ok := parseIntInRange(line, lo, hi); ok {
				return n, nil
			}
			p.logger.Debug(p.round, "input", fmt.Sprintf("rejected %q, want %d-%d", line, lo, hi))
		}
		_, _ = fmt.Fprint(p.out, p.printer.Warning(lo, hi))
	}
}

// parseIntInRange accepts an optionally signed decimal integer with
// surrounding whitespace.
func parseIntInRange(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}
