package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// MultiWriter fans out every Write to all of its sinks. Unlike
// io.MultiWriter it does not stop at the first failing sink; it keeps
// writing to the remaining ones and returns the combined error.
type MultiWriter struct {
	sinks []io.Writer
}

func NewMultiWriter(sinks ...io.Writer) *MultiWriter {
	mw := &MultiWriter{}
	for _, s := range sinks {
		if s == nil {
			continue
		}
		mw.sinks = append(mw.sinks, s)
	}
	return mw
}

func (mw *MultiWriter) Write(p []byte) (n int, err error) {
	for _, s := range mw.sinks {
		written, werr := s.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
