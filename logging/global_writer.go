package logging

import (
	"io"
	"os"
	"sync"
)

// stderrSink stands in for stderr in every logger so the destination can be
// swapped after loggers have been built.
type stderrSink struct {
	mu  sync.RWMutex
	dst io.Writer
}

func (s *stderrSink) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dst.Write(p)
}

func (s *stderrSink) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.dst
	s.dst = w
	return prev
}

var sink = &stderrSink{dst: os.Stderr}

// SetGlobalOutput points the stderr sink at w and returns the previous
// destination. The diff viewer discards log lines while it owns the screen.
func SetGlobalOutput(w io.Writer) io.Writer {
	return sink.swap(w)
}

// GetGlobalOutput returns the shared stderr sink.
func GetGlobalOutput() io.Writer {
	return sink
}
