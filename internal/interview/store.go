package interview

import (
	"sync"
	"time"
)

// Store keeps live sessions in memory. Sessions are never persisted;
// abandoned ones are swept after the idle TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*storeEntry
	ttl      time.Duration
}

type storeEntry struct {
	session  *Session
	lastSeen time.Time
}

func NewStore(ttl time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*storeEntry),
		ttl:      ttl,
	}
	go st.cleanupLoop()
	return st
}

func (st *Store) Put(session *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = &storeEntry{session: session, lastSeen: time.Now()}
}

func (st *Store) Get(sessionID string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	entry, ok := st.sessions[sessionID]
	if !ok {
		return nil, false
	}
	entry.lastSeen = time.Now()
	return entry.session, true
}

func (st *Store) Delete(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionID)
}

func (st *Store) Size() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		st.cleanup()
	}
}

func (st *Store) cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := time.Now().Add(-st.ttl)
	for id, entry := range st.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}
