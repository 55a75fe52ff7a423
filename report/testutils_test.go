package report

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// NewTestReporter returns a Reporter writing into a buffer, with logs
// discarded.
func NewTestReporter(t *testing.T) (*Reporter, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReporter(&out, logger), &out
}

// ReadLines splits everything written so far into lines, dropping the
// trailing newline.
func ReadLines(t *testing.T, out *bytes.Buffer) []string {
	t.Helper()

	text := out.String()
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		t.Fatalf("Output does not end with a newline: %q", text)
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}
