package logging

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes every message to all of its writers. A failing writer does
// not stop the others; the failures are returned combined.
type TeeWriter struct {
	writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{writers: writers}
}

func (tw *TeeWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range tw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	return len(p), err
}
