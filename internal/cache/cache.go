package cache

import (
	"strconv"
	"sync"
)

// Key addresses one cached server query result.
type Key string

const BooksKey Key = "books"

func ReservationsKey(username string) Key {
	return Key("reservations:" + username)
}

func BookKey(id int) Key {
	return Key("book:" + strconv.Itoa(id))
}

func UnreadKey(username string) Key {
	return Key("unread:" + username)
}

func LastErrorKey(username string, bookID int) Key {
	return Key("lasterr:" + username + ":" + strconv.Itoa(bookID))
}

// Store is a key-addressed cache of server query results. Invalidation
// removes entries so readers refetch; between invalidation and refetch
// completion readers see a miss, never a stale write.
type Store struct {
	mu    sync.RWMutex
	items map[Key]any
}

func New() *Store {
	return &Store{
		items: make(map[Key]any),
	}
}

func (s *Store) Get(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[k]
	return v, ok
}

func (s *Store) Set(k Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[k] = v
}

func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.items, k)
	}
}

// Lookup is a typed Get; a value of the wrong type counts as a miss.
func Lookup[T any](s *Store, k Key) (T, bool) {
	v, ok := s.Get(k)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
