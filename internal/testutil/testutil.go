// Package testutil holds small helpers shared by tests.
package testutil

import (
	"bytes"
	"fmt"
	"net"
	"sync"
	"testing"
)

var (
	portMu    sync.Mutex
	usedPorts = map[int]struct{}{}
)

// GetRandomListeningPort returns a localhost address with a free port that no
// other test in this process has been handed yet.
func GetRandomListeningPort(t *testing.T) string {
	t.Helper()

	portMu.Lock()
	defer portMu.Unlock()

	for {
		listener, err := net.Listen("tcp", "localhost:0")
		if err != nil {
			t.Fatalf("failed to find a free port: %v", err)
		}
		port := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("failed to close listener: %v", err)
		}

		if _, taken := usedPorts[port]; taken {
			continue
		}
		usedPorts[port] = struct{}{}
		return fmt.Sprintf("localhost:%d", port)
	}
}

// ThreadSafeBuffer is a bytes.Buffer safe for concurrent writers, handy as a
// log sink in tests.
type ThreadSafeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *ThreadSafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *ThreadSafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *ThreadSafeBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}
