package interview

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionLocksSerializeSameID(t *testing.T) {
	locks := newSessionLocks()

	const workers = 8
	const iterations = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				release := locks.acquire("s1")
				counter++
				release()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, workers*iterations, counter)
}

func TestSessionLocksDropUnreferencedEntries(t *testing.T) {
	locks := newSessionLocks()

	release := locks.acquire("s1")
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	require.Empty(t, locks.held)
}

func TestSessionLocksIndependentIDs(t *testing.T) {
	locks := newSessionLocks()

	releaseA := locks.acquire("a")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB := locks.acquire("b")
		releaseB()
		close(done)
	}()
	<-done
}
