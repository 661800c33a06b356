// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase.
package testutil

import (
	"bytes"
	"log/slog"
	"sync"
)

// === Query Recorder Mock ===

// MockRecorder implements domain.QueryRecorder and remembers the order of
// calls.
type MockRecorder struct {
	mu    sync.Mutex
	Calls []string // "memory" or "physical"
}

// AddMemoryQuery implements the interface method for testing.
func (m *MockRecorder) AddMemoryQuery() { m.add("memory") }

// AddPhysicalQuery implements the interface method for testing.
func (m *MockRecorder) AddPhysicalQuery() { m.add("physical") }

func (m *MockRecorder) add(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, kind)
}

// Count returns how many calls of kind were recorded.
func (m *MockRecorder) Count(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == kind {
			n++
		}
	}
	return n
}

// === Prefix Source Mock ===

// MockPrefix implements domain.PrefixSource with a mutable value.
type MockPrefix struct {
	mu    sync.Mutex
	Value string
	Reads int
}

// Prefix implements the interface method for testing.
func (m *MockPrefix) Prefix() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reads++
	return m.Value
}

// Set changes the value returned by Prefix.
func (m *MockPrefix) Set(v string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Value = v
}

// === Subject Mock ===

// MockSubject implements domain.Subject.
type MockSubject struct {
	PlayerName string
	WorldName  string
}

// Name implements the interface method for testing.
func (s MockSubject) Name() string { return s.PlayerName }

// World implements the interface method for testing.
func (s MockSubject) World() string { return s.WorldName }

// === Permission Handler Mock ===

// MockPermissionHandler implements permissions.Handler.
type MockPermissionHandler struct {
	HasFn   func(world, player, node string) bool
	GroupFn func(world, player string) string
}

// Has implements the interface method for testing.
func (m *MockPermissionHandler) Has(world, player, node string) bool {
	if m.HasFn != nil {
		return m.HasFn(world, player, node)
	}
	panic("unexpected call to MockPermissionHandler.Has")
}

// Group implements the interface method for testing.
func (m *MockPermissionHandler) Group(world, player string) string {
	if m.GroupFn != nil {
		return m.GroupFn(world, player)
	}
	panic("unexpected call to MockPermissionHandler.Group")
}

// === Logger ===

// BufferLogger returns a debug-level text logger writing into the returned
// buffer, for asserting on log output.
func BufferLogger() (*slog.Logger, *SafeBuffer) {
	buf := &SafeBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// SafeBuffer is a bytes.Buffer guarded for concurrent writers.
type SafeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
