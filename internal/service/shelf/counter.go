package shelf

import (
	"context"

	"go.uber.org/zap"

	"github.com/shelfmate/shelfmate/internal/cache"
)

// unreadRollback captures what the counter looked like before a mutation's
// speculative increment.
type unreadRollback struct {
	previous int
	tracked  bool
}

// bumpUnread speculatively increments the cached unread count. When the
// count was never cached there is nothing to bump; the resync fills it in.
func (s *Service) bumpUnread(username string) unreadRollback {
	key := cache.UnreadKey(username)
	n, ok := cache.Lookup[int](s.cache, key)
	if !ok {
		return unreadRollback{}
	}
	s.cache.Set(key, n+1)
	return unreadRollback{previous: n, tracked: true}
}

func (s *Service) rollbackUnread(username string, rb unreadRollback) {
	if !rb.tracked {
		return
	}
	s.cache.Set(cache.UnreadKey(username), rb.previous)
}

// resyncUnread overwrites the cached count with server truth. Resyncs of
// concurrent mutations may race; each one re-reads ground truth, so the
// last to complete leaves the cache correct.
func (s *Service) resyncUnread(ctx context.Context, username string) {
	n, _, err := s.ntf.UnreadCount(ctx, username)
	if err != nil {
		s.log.Warn("unread resync", zap.String("username", username), zap.Error(err))
		return
	}
	s.cache.Set(cache.UnreadKey(username), n)
}

// Unread is the read-through used by plain reads, as opposed to the
// mutation-protocol resync above.
func (s *Service) Unread(ctx context.Context, username string) (int, error) {
	key := cache.UnreadKey(username)
	if n, ok := cache.Lookup[int](s.cache, key); ok {
		return n, nil
	}
	var count int
	if err := s.cbNtf.Call(func() error {
		n, _, err := s.ntf.UnreadCount(ctx, username)
		if err != nil {
			return err
		}
		count = n
		return nil
	}); err != nil {
		return 0, err
	}
	s.cache.Set(key, count)
	return count, nil
}
