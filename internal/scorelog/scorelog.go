// Package scorelog appends finished-run scores to a plain text file, one
// line per run: "<local timestamp> - <score>".
package scorelog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// DefaultPath is the log file used when none is configured.
const DefaultPath = "highscores.txt"

// TimeLayout formats the timestamp at the start of each line.
const TimeLayout = "2006-01-02 15:04:05.000000"

// Log is an append-only score file. It is safe for concurrent use.
type Log struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// New creates a log writing to path. An empty path means DefaultPath.
func New(path string) *Log {
	if path == "" {
		path = DefaultPath
	}
	return &Log{path: path, now: time.Now}
}

// Path returns the file the log appends to.
func (l *Log) Path() string {
	return l.path
}

// Append writes one line for score. The file is created if missing.
func (l *Log) Append(score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scorelog: cannot open %s: %w", l.path, err)
	}

	line := FormatLine(l.now(), score)
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("scorelog: cannot write %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("scorelog: cannot close %s: %w", l.path, err)
	}
	return nil
}

// FormatLine renders one log line, newline included.
func FormatLine(t time.Time, score int) string {
	return fmt.Sprintf("%s - %d\n", t.Format(TimeLayout), score)
}
