// Package report prints the fixed text report: the original text, its
// length, its reversed form and a per-character ASCII table, in that order.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"textreport/internal/text"

	"go.uber.org/zap"
)

// ErrAlreadyRun is returned by Run on a Reporter that has already run.
var ErrAlreadyRun = errors.New("report already run")

// Section names, in output order.
const (
	SectionOriginal = "original"
	SectionLength   = "length"
	SectionReversed = "reversed"
	SectionASCII    = "ascii"
)

type section struct {
	name  string
	write func(w io.Writer, t text.Text) error
}

var sections = []section{
	{SectionOriginal, writeOriginal},
	{SectionLength, writeLength},
	{SectionReversed, writeReversed},
	{SectionASCII, writeASCII},
}

// Reporter writes the report for one Text to one writer, exactly once.
type Reporter struct {
	w      io.Writer
	text   text.Text
	logger *zap.Logger
	ran    bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLogger sets the diagnostic logger. Nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Reporter that will write the report for t to w.
func New(w io.Writer, t text.Text, opts ...Option) *Reporter {
	r := &Reporter{
		w:      w,
		text:   t,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run writes every section in order. The first write error stops the run
// and is returned wrapped with the name of the failing section.
func (r *Reporter) Run(ctx context.Context) error {
	if r.ran {
		return ErrAlreadyRun
	}
	r.ran = true

	r.logger.Debug("Writing report", zap.Int("length", r.text.Len()))

	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.write(r.w, r.text); err != nil {
			r.logger.Debug("Section write failed", zap.String("section", s.name), zap.Error(err))
			return fmt.Errorf("%s: %w", s.name, err)
		}
		r.logger.Debug("Section written", zap.String("section", s.name))
	}
	return nil
}

// Write is shorthand for New(w, t, opts...).Run(ctx).
func Write(ctx context.Context, w io.Writer, t text.Text, opts ...Option) error {
	return New(w, t, opts...).Run(ctx)
}

func writeOriginal(w io.Writer, t text.Text) error {
	_, err := fmt.Fprintf(w, "Original string: %s\n", t.Value())
	return err
}

func writeLength(w io.Writer, t text.Text) error {
	_, err := fmt.Fprintf(w, "String length: %d\n", t.Len())
	return err
}

func writeReversed(w io.Writer, t text.Text) error {
	_, err := fmt.Fprintf(w, "Reversed string: %s\n", t.Reversed())
	return err
}

func writeASCII(w io.Writer, t text.Text) error {
	if _, err := io.WriteString(w, "ASCII values:\n"); err != nil {
		return err
	}
	for _, c := range t.Codes() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
