package recommend

import "sync"

// HistoryStore keeps each user's purchased product ids in memory.
// Insertion order is preserved; duplicates are never stored.
type HistoryStore struct {
	mu      sync.RWMutex
	history map[int64][]int64
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{history: make(map[int64][]int64)}
}

// NewHistoryStoreWith seeds the store from existing per-user histories.
func NewHistoryStoreWith(seed map[int64][]int64) *HistoryStore {
	s := NewHistoryStore()
	for userID, productIDs := range seed {
		for _, id := range productIDs {
			s.Record(userID, id)
		}
	}
	return s
}

// DefaultHistoryStore returns the store seeded with the reference data.
func DefaultHistoryStore() *HistoryStore {
	return NewHistoryStoreWith(map[int64][]int64{
		1: {1, 3, 5},
		2: {2, 4, 6},
	})
}

// Get returns a copy of the user's history. Unknown users get an empty
// slice.
func (s *HistoryStore) Get(userID int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64(nil), s.history[userID]...)
}

// Record appends productID to the user's history unless already
// present, and returns a copy of the updated history. The
// check-and-insert is atomic with respect to concurrent recorders.
func (s *HistoryStore) Record(userID, productID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.history[userID]
	for _, id := range owned {
		if id == productID {
			return append([]int64(nil), owned...)
		}
	}
	owned = append(owned, productID)
	s.history[userID] = owned
	return append([]int64(nil), owned...)
}
