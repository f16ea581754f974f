package services

import "sync"

// keyedMutex serializes read-modify-write cycles per storage key. Every
// mutation reads a whole collection, edits it in memory and writes it back;
// without per-key locking two overlapping mutations would silently drop one
// of the writes.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Lock locks the mutex for key and returns the unlock function.
func (m *keyedMutex) Lock(key string) func() {
	m.mu.Lock()
	if m.locks == nil {
		m.locks = make(map[string]*sync.Mutex)
	}
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
