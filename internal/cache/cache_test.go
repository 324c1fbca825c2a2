package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shelfmate/shelfmate/internal/cache"
)

func TestStore(t *testing.T) {
	t.Parallel()

	s := cache.New()

	_, ok := s.Get(cache.BooksKey)
	require.False(t, ok)

	s.Set(cache.UnreadKey("alice"), 2)
	n, ok := cache.Lookup[int](s, cache.UnreadKey("alice"))
	require.True(t, ok)
	require.Equal(t, 2, n)

	// wrong type is a miss
	_, ok = cache.Lookup[string](s, cache.UnreadKey("alice"))
	require.False(t, ok)

	s.Invalidate(cache.UnreadKey("alice"), cache.BooksKey)
	_, ok = s.Get(cache.UnreadKey("alice"))
	require.False(t, ok)
}

func TestStore_KeysAreDisjoint(t *testing.T) {
	t.Parallel()

	s := cache.New()
	s.Set(cache.ReservationsKey("alice"), 1)
	s.Set(cache.ReservationsKey("bob"), 2)
	s.Set(cache.BookKey(1), 3)
	s.Set(cache.LastErrorKey("alice", 1), "boom")

	s.Invalidate(cache.ReservationsKey("alice"))

	_, ok := s.Get(cache.ReservationsKey("alice"))
	require.False(t, ok)
	for _, k := range []cache.Key{cache.ReservationsKey("bob"), cache.BookKey(1), cache.LastErrorKey("alice", 1)} {
		_, ok := s.Get(k)
		require.True(t, ok)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := cache.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := cache.BookKey(i % 5)
			s.Set(key, i)
			_, _ = s.Get(key)
			s.Invalidate(key)
		}()
	}
	wg.Wait()
}
