package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
)

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	var m keyedMutex
	var counter int

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("k")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 100, counter)
}

// Concurrent creates against one owner must not lose updates: each cycle
// reads the whole collection, mutates it and writes it back, so without
// per-key locking overlapping writers would clobber each other.
func TestCreateNote_ConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := NewNotesService(store, &fakeFiles{dir: "/durable"}, &fakeSession{}, nil)

	const writers = 20
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- svc.CreateNote(ctx, 1, fmt.Sprintf("note %d", n), "", "")
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, svc.ListNotes(ctx, 1), writers)
}
