package output

import (
	"errors"
	"fmt"

	"axesarif/internal/sarif"
)

// Sink is a destination for converted logs. File-backed sinks only commit
// their output on Close.
type Sink interface {
	Write(log *sarif.Log) error
	Close() error
}

// Manager fans a log out to every registered sink.
type Manager struct {
	sinks []Sink
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) AddSink(s Sink) error {
	if m == nil {
		return errors.New("output manager is nil")
	}
	if s == nil {
		return errors.New("sink must not be nil")
	}
	m.sinks = append(m.sinks, s)
	return nil
}

// Len reports the number of registered sinks.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.sinks)
}

// Write hands log to every sink. A failing sink does not stop the others.
func (m *Manager) Write(log *sarif.Log) error {
	return m.each("write", func(s Sink) error { return s.Write(log) })
}

// Close closes every sink.
func (m *Manager) Close() error {
	return m.each("close", Sink.Close)
}

// Deliver writes log to every sink and closes them all, even when a write
// failed.
func (m *Manager) Deliver(log *sarif.Log) error {
	writeErr := m.Write(log)
	closeErr := m.Close()
	return errors.Join(writeErr, closeErr)
}

func (m *Manager) each(op string, fn func(Sink) error) error {
	if m == nil {
		return errors.New("output manager is nil")
	}
	var errs []error
	for _, s := range m.sinks {
		if err := fn(s); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", op, sinkName(s), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors in %s: %w", op, errors.Join(errs...))
	}
	return nil
}

func sinkName(s Sink) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
