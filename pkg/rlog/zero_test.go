package rlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZeroDefaultLevelIsInfo(t *testing.T) {
	level := NewZeroLogger("").GetLevel()
	if level != zerolog.InfoLevel {
		t.Fatalf("expected default log level to be Info, got: %v", level)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "fatal", want: zerolog.FatalLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "verbose", want: zerolog.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := parseLevel(tc.in); got != tc.want {
				t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestUpdateZeroLogLevel(t *testing.T) {
	prev := Zero
	t.Cleanup(func() { Zero = prev })

	if err := UpdateZeroLogLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if Zero.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got: %v", Zero.GetLevel())
	}
}

func TestNewZeroLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.log")

	logger := NewZeroLogger(path)
	logger.Info().Str("table", "occurrence").Msg("test message")

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "test message") {
		t.Fatalf("expected message in log file, got: %s", raw)
	}
}

func TestLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := NewZeroLogger("").Output(&buf)
	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message leaked at info level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("expected warning in output, got: %s", out)
	}
}
