package output

import (
	"errors"
	"strings"
	"testing"

	"axesarif/internal/sarif"
)

type recordingSink struct {
	name     string
	writes   []*sarif.Log
	closed   bool
	writeErr error
	closeErr error
}

func (s *recordingSink) Write(log *sarif.Log) error {
	s.writes = append(s.writes, log)
	return s.writeErr
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.closeErr
}

func (s *recordingSink) String() string { return s.name }

// anonymousSink has no String method.
type anonymousSink struct{ closeErr error }

func (anonymousSink) Write(*sarif.Log) error { return nil }
func (s anonymousSink) Close() error        { return s.closeErr }

func newTestManager(t *testing.T, sinks ...Sink) *Manager {
	t.Helper()
	mgr := NewManager()
	for _, s := range sinks {
		if err := mgr.AddSink(s); err != nil {
			t.Fatalf("AddSink error: %v", err)
		}
	}
	return mgr
}

func TestManager(t *testing.T) {
	t.Run("writes to all sinks", func(t *testing.T) {
		a := &recordingSink{name: "a"}
		b := &recordingSink{name: "b"}
		mgr := newTestManager(t, a, b)

		if mgr.Len() != 2 {
			t.Fatalf("Len: want 2, got %d", mgr.Len())
		}
		if err := mgr.Write(&sarif.Log{Version: sarif.Version}); err != nil {
			t.Fatalf("Write(first) error: %v", err)
		}
		if err := mgr.Write(&sarif.Log{Version: sarif.Version}); err != nil {
			t.Fatalf("Write(second) error: %v", err)
		}
		if err := mgr.Close(); err != nil {
			t.Fatalf("Close() error: %v", err)
		}

		if len(a.writes) != 2 || len(b.writes) != 2 {
			t.Fatalf("writes: want 2 each, got %d and %d", len(a.writes), len(b.writes))
		}
		if a.writes[0] != b.writes[0] {
			t.Fatalf("sinks should receive the same log")
		}
	})

	t.Run("AddSink rejects nil", func(t *testing.T) {
		mgr := NewManager()
		if err := mgr.AddSink(nil); err == nil {
			t.Fatalf("AddSink(nil) want error, got nil")
		}
	})

	t.Run("nil manager", func(t *testing.T) {
		var mgr *Manager
		if mgr.Len() != 0 {
			t.Fatalf("nil Len: want 0")
		}
		if err := mgr.Write(&sarif.Log{}); err == nil {
			t.Fatalf("nil Write want error")
		}
	})

	tests := []struct {
		name  string
		sinks []Sink
		run   func(*Manager) error
		want  []string
	}{
		{
			name: "Write aggregates sink errors",
			sinks: []Sink{
				&recordingSink{name: "file a.sarif", writeErr: errors.New("boom-a")},
				&recordingSink{name: "report b.md", writeErr: errors.New("boom-b")},
			},
			run:  func(m *Manager) error { return m.Write(&sarif.Log{}) },
			want: []string{"errors in write", "write file a.sarif: boom-a", "write report b.md: boom-b"},
		},
		{
			name: "Close aggregates sink errors",
			sinks: []Sink{
				&recordingSink{name: "a", closeErr: errors.New("close-a")},
				anonymousSink{closeErr: errors.New("close-b")},
			},
			run:  (*Manager).Close,
			want: []string{"errors in close", "close a: close-a", "output.anonymousSink: close-b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(newTestManager(t, tt.sinks...))
			if err == nil {
				t.Fatalf("want error, got nil")
			}
			for _, want := range tt.want {
				if !strings.Contains(err.Error(), want) {
					t.Fatalf("error missing %q; got: %s", want, err.Error())
				}
			}
		})
	}
}

func TestManager_DeliverClosesAfterWriteFailure(t *testing.T) {
	a := &recordingSink{name: "a", writeErr: errors.New("disk full")}
	b := &recordingSink{name: "b"}
	mgr := newTestManager(t, a, b)

	err := mgr.Deliver(&sarif.Log{Version: sarif.Version})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Deliver error: want disk full, got %v", err)
	}
	if !a.closed || !b.closed {
		t.Fatalf("expected every sink closed, got a=%v b=%v", a.closed, b.closed)
	}
	if len(b.writes) != 1 {
		t.Fatalf("expected healthy sink written once, got %d", len(b.writes))
	}
}
