package scorelog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestFormatLine(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 123456000, time.UTC)
	if got := FormatLine(ts, 42); got != "2024-03-09 14:05:07.123456 - 42\n" {
		t.Errorf("FormatLine() = %q", got)
	}
}

func TestAppendCreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("existing line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(path)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return ts }

	if err := l.Append(3); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := l.Append(11); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "existing line\n" +
		"2024-01-02 03:04:05.000000 - 3\n" +
		"2024-01-02 03:04:05.000000 - 11\n"
	if string(data) != expected {
		t.Errorf("file content = %q, expected %q", data, expected)
	}
}

func TestAppendMissingDirectory(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "missing", "scores.txt"))
	if err := l.Append(1); err == nil {
		t.Error("Append() into a missing directory should fail")
	}
}

func TestDefaultPath(t *testing.T) {
	if New("").Path() != DefaultPath {
		t.Errorf("empty path should fall back to %s", DefaultPath)
	}
}

func TestAppendConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	l := New(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := l.Append(score); err != nil {
				t.Errorf("Append() error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, " - ") {
			t.Errorf("malformed line %q", line)
		}
	}
}
