// Package log provides debug logging for the prompt helpers.
// Messages are buffered in memory until a log file is configured,
// so early startup lines are not lost when the debug log path only
// becomes known after the configuration has been loaded.
package log

import (
	"log"
	"os"
	"sync"
)

// debugWriter implements io.Writer so it can back a standard log.Logger.
type debugWriter struct {
	mu      sync.Mutex
	file    *os.File
	pending []byte
	discard bool
}

var (
	writer    = &debugWriter{}
	stdLogger = log.New(writer, "", log.LstdFlags|log.Lmicroseconds)
)

// Write appends to the file when one is set, buffers otherwise.
func (w *debugWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.discard {
		return len(p), nil
	}

	if w.file != nil {
		n, err := w.file.Write(p)
		_ = w.file.Sync()
		return n, err
	}

	// p may be reused by the caller, keep a copy
	w.pending = append(w.pending, p...)
	return len(p), nil
}

// SetFile routes debug output to path, flushing anything buffered so far.
// An empty path drops buffered messages and disables logging.
func SetFile(path string) error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file != nil {
		_ = writer.file.Close()
		writer.file = nil
	}

	if path == "" {
		writer.discard = true
		writer.pending = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		writer.discard = true
		writer.pending = nil
		return err
	}

	writer.file = f
	writer.discard = false

	if len(writer.pending) > 0 {
		_, _ = f.Write(writer.pending)
		_ = f.Sync()
		writer.pending = nil
	}

	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Close closes the debug log file if one is open.
func Close() error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file == nil {
		return nil
	}

	err := writer.file.Close()
	writer.file = nil
	return err
}
