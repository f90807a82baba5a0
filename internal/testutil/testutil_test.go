package testutil

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomListeningPort(t *testing.T) {
	seen := make(map[string]bool)
	for range 5 {
		addr := GetRandomListeningPort(t)
		assert.True(t, strings.HasPrefix(addr, "localhost:"))
		assert.False(t, seen[addr], "address %s handed out twice", addr)
		seen[addr] = true
	}
}

func TestThreadSafeBuffer(t *testing.T) {
	var buf ThreadSafeBuffer
	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := buf.Write([]byte("line\n"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, strings.Count(buf.String(), "line"))
	buf.Reset()
	assert.Empty(t, buf.String())
}
