package store

import (
	"context"
	"fmt"
	"sync"
)

// InMemorySessionStore is the degraded-mode session registry used when redis
// is unreachable. Sessions live until the process does.
type InMemorySessionStore struct {
	sessionLock *sync.RWMutex
	historyMap  map[string][]string
}

func InitInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessionLock: new(sync.RWMutex),
		historyMap:  make(map[string][]string),
	}
}

func (store *InMemorySessionStore) InitSession(ctx context.Context, id string) error {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()
	store.historyMap[id] = make([]string, 0)
	return nil
}

func (store *InMemorySessionStore) ValidateSession(ctx context.Context, id string) bool {
	store.sessionLock.RLock()
	defer store.sessionLock.RUnlock()
	_, ok := store.historyMap[id]
	return ok
}

func (store *InMemorySessionStore) DropSession(ctx context.Context, id string) error {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()
	delete(store.historyMap, id)
	return nil
}

func (store *InMemorySessionStore) SaveExchange(ctx context.Context, sessionId string, question string, answer string) error {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()
	if _, ok := store.historyMap[sessionId]; !ok {
		return fmt.Errorf("unknown session %s", sessionId)
	}
	store.historyMap[sessionId] = append(store.historyMap[sessionId], formatExchange(question, answer))
	return nil
}

func (store *InMemorySessionStore) GetHistory(ctx context.Context, sessionId string) ([]string, error) {
	store.sessionLock.RLock()
	defer store.sessionLock.RUnlock()
	history := store.historyMap[sessionId]
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	out := make([]string, len(history))
	copy(out, history)
	return out, nil
}
