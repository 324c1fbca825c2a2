package shelf

import (
	"context"

	"go.uber.org/zap"

	"github.com/shelfmate/shelfmate/internal/cache"
	"github.com/shelfmate/shelfmate/internal/errs"
	"github.com/shelfmate/shelfmate/internal/model"
	"github.com/shelfmate/shelfmate/internal/mybooks"
)

func (s *Service) Reserve(ctx context.Context, username string, bookID int) (model.Reservation, error) {
	book, err := s.book(ctx, bookID)
	if err != nil {
		return model.Reservation{}, err
	}
	cur, err := s.currentFor(ctx, username, bookID)
	if err != nil {
		return model.Reservation{}, err
	}
	if !mybooks.Guards(cur, book.Status).CanReserve {
		return model.Reservation{}, errs.ErrActionNotAllowed
	}
	return s.mutate(ctx, username, bookID, func(ctx context.Context) (model.Reservation, int, error) {
		return s.rsv.Reserve(ctx, username, bookID)
	})
}

func (s *Service) Take(ctx context.Context, username string, reservationID int) (model.Reservation, error) {
	cur, err := s.reservationByID(ctx, username, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	if !mybooks.Guards(cur, model.BookStatusUnknown).CanTake {
		return model.Reservation{}, errs.ErrActionNotAllowed
	}
	return s.mutate(ctx, username, cur.BookID, func(ctx context.Context) (model.Reservation, int, error) {
		return s.rsv.Take(ctx, username, reservationID)
	})
}

func (s *Service) Return(ctx context.Context, username string, reservationID int) (model.Reservation, error) {
	cur, err := s.reservationByID(ctx, username, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	if !mybooks.Guards(cur, model.BookStatusUnknown).CanReturn {
		return model.Reservation{}, errs.ErrActionNotAllowed
	}
	return s.mutate(ctx, username, cur.BookID, func(ctx context.Context) (model.Reservation, int, error) {
		return s.rsv.Return(ctx, username, reservationID)
	})
}

func (s *Service) Cancel(ctx context.Context, username string, reservationID int) (model.Reservation, error) {
	cur, err := s.reservationByID(ctx, username, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	if !mybooks.Guards(cur, model.BookStatusUnknown).CanCancel {
		return model.Reservation{}, errs.ErrActionNotAllowed
	}
	return s.mutate(ctx, username, cur.BookID, func(ctx context.Context) (model.Reservation, int, error) {
		return s.rsv.Cancel(ctx, username, reservationID)
	})
}

// mutate runs one reservation action under the optimistic-counter protocol:
// bump, dispatch, then either invalidate the affected reads or roll the
// counter back and classify the failure. The resync always runs last so the
// cached count converges to server truth whatever happened in between.
func (s *Service) mutate(ctx context.Context, username string, bookID int, call func(context.Context) (model.Reservation, int, error)) (model.Reservation, error) {
	// Detached from the caller: if the initiating view is torn down
	// mid-flight the rollback/resync sequence must still complete, or the
	// cached count drifts permanently.
	ctx = context.WithoutCancel(ctx)

	rb := s.bumpUnread(username)
	rsv, code, err := call(ctx)
	if err != nil {
		s.rollbackUnread(username, rb)
		actErr := errs.Classify(code, err.Error())
		s.cache.Set(cache.LastErrorKey(username, bookID), actErr.Message)
		s.resyncUnread(ctx, username)
		s.log.Debug("mutation failed",
			zap.String("username", username),
			zap.Int("bookId", bookID),
			zap.Int("code", code),
			zap.String("classified", actErr.Message),
		)
		return model.Reservation{}, actErr
	}

	s.cache.Invalidate(
		cache.ReservationsKey(username),
		cache.BooksKey,
		cache.BookKey(bookID),
		cache.LastErrorKey(username, bookID),
	)
	s.resyncUnread(ctx, username)
	return rsv, nil
}
