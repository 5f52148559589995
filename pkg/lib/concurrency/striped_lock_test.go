//go:build unit || !integration

package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripedLockSerializesSameKey(t *testing.T) {
	locks := NewStripedLock(4)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("job-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	require.Equal(t, 100, counter)
}

func TestStripedLockZeroStripesUsesDefault(t *testing.T) {
	locks := NewStripedLock(0)
	unlock := locks.Lock("key")
	unlock()
}

func TestStripedLockStableStripeForKey(t *testing.T) {
	locks := NewStripedLock(8)
	require.Equal(t, locks.hash("job-1"), locks.hash("job-1"))
}
