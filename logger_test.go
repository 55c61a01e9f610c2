package geom3

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs installs a debug-level text logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger should discard the solver's debug records")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	buf := captureLogs(t)
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should install a silent logger, not nil")
	}
	Solve(Seg(V3(0, 0, 0), V3(1, 0, 0)), Seg(V3(0, 1, 0), V3(1, 1, 0)))
	if buf.Len() != 0 {
		t.Errorf("silenced solver still logged: %s", buf.String())
	}
}

func TestSolveLogsRejectionReason(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want []string
	}{
		{
			name: "parallel",
			a:    Seg(V3(0, 0, 0), V3(1, 0, 0)),
			b:    Seg(V3(0, 1, 0), V3(1, 1, 0)),
			want: []string{"segments parallel", "cross_length_sq=0", "epsilon=1e-08"},
		},
		{
			name: "out of range",
			a:    Seg(V3(0, 0, 0), V3(1, 0, 0)),
			b:    Seg(V3(5, -1, 0), V3(5, 1, 0)),
			want: []string{"parameter outside segment", "t1=5", "t2=0.5"},
		},
		{
			name: "crossing",
			a:    Seg(V3(0, 0, 0), V3(1, 0, 0)),
			b:    Seg(V3(1, 0, 0), V3(1, 1, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			Solve(tt.a, tt.b)

			out := buf.String()
			if len(tt.want) == 0 && out != "" {
				t.Errorf("accepted pair should not log, got: %s", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("log = %q, missing %q", out, w)
				}
			}
			if strings.Count(out, "\n") > 1 {
				t.Errorf("want at most one record, got: %s", out)
			}
		})
	}
}

func TestSolveWithLoggerSwaps(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	verbose := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	a := Seg(V3(0, 0, 0), V3(1, 0, 0))
	b := Seg(V3(5, -1, 0), V3(5, 1, 0))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if i%4 == 0 {
					SetLogger(verbose)
					SetLogger(nil)
					continue
				}
				if r := Solve(a, b); r.Kind != OutOfRange {
					t.Errorf("Kind = %v, want out of range", r.Kind)
					return
				}
			}
		}()
	}
	wg.Wait()
}
