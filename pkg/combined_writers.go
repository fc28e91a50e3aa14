package pkg

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// CombinedWriter writes every message to all of its writers, e.g. stdout and a log file.
// A failing writer doesn't stop the others; its error is returned and kept in Err.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error

	mu sync.Mutex
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	var err error
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}

	if err != nil {
		cw.Err = multierr.Append(cw.Err, err)
		return 0, err
	}
	return len(p), nil
}
