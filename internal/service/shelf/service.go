package shelf

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shelfmate/shelfmate/internal/cache"
	"github.com/shelfmate/shelfmate/internal/errs"
	"github.com/shelfmate/shelfmate/internal/model"
	"github.com/shelfmate/shelfmate/internal/mybooks"
	"github.com/shelfmate/shelfmate/internal/service/library"
	"github.com/shelfmate/shelfmate/internal/service/notification"
	"github.com/shelfmate/shelfmate/internal/service/reservation"
	"github.com/shelfmate/shelfmate/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ ReservationService  = (*reservation.Service)(nil)
	_ LibraryService      = (*library.Service)(nil)
	_ NotificationService = (*notification.Service)(nil)
)

type ReservationService interface {
	List(ctx context.Context, username string) ([]model.Reservation, int, error)
	Reserve(ctx context.Context, username string, bookID int) (model.Reservation, int, error)
	Take(ctx context.Context, username string, reservationID int) (model.Reservation, int, error)
	Return(ctx context.Context, username string, reservationID int) (model.Reservation, int, error)
	Cancel(ctx context.Context, username string, reservationID int) (model.Reservation, int, error)
}

type LibraryService interface {
	ListBooks(ctx context.Context) ([]model.Book, int, error)
	GetBook(ctx context.Context, id int) (model.Book, int, error)
}

type NotificationService interface {
	UnreadCount(ctx context.Context, username string) (int, int, error)
}

// Service keeps the local read model coherent with the backend and drives
// reservation mutations through it.
type Service struct {
	log   *zap.Logger
	rsv   ReservationService
	lib   LibraryService
	ntf   NotificationService
	cache *cache.Store

	cbRsv circuit_breaker.CircuitBreaker
	cbLib circuit_breaker.CircuitBreaker
	cbNtf circuit_breaker.CircuitBreaker
}

const (
	cbRecordLength     = 100
	cbTimeout          = 5 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 10
)

func NewService(log *zap.Logger, rsv ReservationService, lib LibraryService, ntf NotificationService, store *cache.Store) *Service {
	return &Service{
		log:   log.Named("shelf"),
		rsv:   rsv,
		lib:   lib,
		ntf:   ntf,
		cache: store,
		cbRsv: circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		cbLib: circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		cbNtf: circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
	}
}

// MyBooks builds the per-book view model for the presentation layer:
// catalog books plus any book the user has reservation history for.
func (s *Service) MyBooks(ctx context.Context, username string) ([]model.MyBook, error) {
	var (
		rr []model.Reservation
		bb []model.Book
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		rr, err = s.reservations(gctx, username)
		return err
	})
	gg.Go(func() error {
		var err error
		bb, err = s.Books(gctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}

	current := mybooks.PickCurrent(rr)
	bookByID := make(map[int]model.Book, len(bb))
	ids := make([]int, 0, len(bb)+len(current))
	for _, b := range bb {
		bookByID[b.ID] = b
		ids = append(ids, b.ID)
	}
	for id := range current {
		if _, ok := bookByID[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]model.MyBook, 0, len(ids))
	for _, id := range ids {
		bookStatus := model.BookStatusUnknown
		if b, ok := bookByID[id]; ok {
			bookStatus = b.Status
		}
		var cur *model.Reservation
		if r, ok := current[id]; ok {
			r := r
			cur = &r
		}
		acts := mybooks.Guards(cur, bookStatus)
		mb := model.MyBook{
			BookID:     id,
			CanReserve: acts.CanReserve,
			CanTake:    acts.CanTake,
			CanReturn:  acts.CanReturn,
			CanCancel:  acts.CanCancel,
		}
		if cur != nil {
			mb.Status = mybooks.Resolve(*cur, bookStatus)
			mb.ReservedAt = cur.ReservedAt
			mb.TakenAt = cur.TakenAt
			mb.ReturnedAt = cur.ReturnedAt
		}
		if msg, ok := cache.Lookup[string](s.cache, cache.LastErrorKey(username, id)); ok {
			mb.LastError = msg
		}
		out = append(out, mb)
	}
	return out, nil
}

// Books is a read-through over the cached catalog.
func (s *Service) Books(ctx context.Context) ([]model.Book, error) {
	if v, ok := cache.Lookup[[]model.Book](s.cache, cache.BooksKey); ok {
		return v, nil
	}
	var list []model.Book
	if err := s.cbLib.Call(func() error {
		l, _, err := s.lib.ListBooks(ctx)
		if err != nil {
			return err
		}
		list = l
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	s.cache.Set(cache.BooksKey, list)
	return list, nil
}

func (s *Service) reservations(ctx context.Context, username string) ([]model.Reservation, error) {
	key := cache.ReservationsKey(username)
	if v, ok := cache.Lookup[[]model.Reservation](s.cache, key); ok {
		return v, nil
	}
	var list []model.Reservation
	if err := s.cbRsv.Call(func() error {
		l, _, err := s.rsv.List(ctx, username)
		if err != nil {
			return err
		}
		list = l
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "list reservations")
	}
	s.cache.Set(key, list)
	return list, nil
}

func (s *Service) book(ctx context.Context, id int) (model.Book, error) {
	key := cache.BookKey(id)
	if v, ok := cache.Lookup[model.Book](s.cache, key); ok {
		return v, nil
	}
	var (
		book model.Book
		code int
	)
	if err := s.cbLib.Call(func() error {
		b, c, err := s.lib.GetBook(ctx, id)
		if err != nil {
			code = c
			return err
		}
		book = b
		return nil
	}); err != nil {
		if code == http.StatusNotFound {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, errors.Wrapf(err, "get book %d", id)
	}
	s.cache.Set(key, book)
	return book, nil
}

// currentFor returns the user's current reservation for a book, nil when
// the history holds none.
func (s *Service) currentFor(ctx context.Context, username string, bookID int) (*model.Reservation, error) {
	rr, err := s.reservations(ctx, username)
	if err != nil {
		return nil, err
	}
	if r, ok := mybooks.PickCurrent(rr)[bookID]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *Service) reservationByID(ctx context.Context, username string, reservationID int) (*model.Reservation, error) {
	rr, err := s.reservations(ctx, username)
	if err != nil {
		return nil, err
	}
	for i := range rr {
		if rr[i].ID == reservationID {
			return &rr[i], nil
		}
	}
	return nil, errs.ErrNotFound
}
