package mybooks

import (
	"time"

	"github.com/shelfmate/shelfmate/internal/model"
)

// statusPriority ranks derived statuses so timestamp ties resolve toward
// the more advanced end of the lifecycle.
func statusPriority(s model.MyBookStatus) int {
	switch s {
	case model.MyBookReturned:
		return 4
	case model.MyBookTaken:
		return 3
	case model.MyBookReserved:
		return 2
	case model.MyBookCancelled:
		return 1
	default:
		return 0
	}
}

// relevantAt coalesces a reservation's timestamps, most advanced first.
// A reservation with no timestamps at all reports the zero time.
func relevantAt(r model.Reservation) time.Time {
	switch {
	case r.ReturnedAt != nil:
		return *r.ReturnedAt
	case r.TakenAt != nil:
		return *r.TakenAt
	case r.ReservedAt != nil:
		return *r.ReservedAt
	default:
		return time.Time{}
	}
}

// MoreRelevant picks the reservation that best represents the current state
// of its book: larger timestamp, then higher status priority, then larger
// id. The tie chain makes the reduction order independent.
func MoreRelevant(a, b model.Reservation) model.Reservation {
	at, bt := relevantAt(a), relevantAt(b)
	if at.After(bt) {
		return a
	}
	if bt.After(at) {
		return b
	}
	ap := statusPriority(Resolve(a, model.BookStatusUnknown))
	bp := statusPriority(Resolve(b, model.BookStatusUnknown))
	if ap > bp {
		return a
	}
	if bp > ap {
		return b
	}
	if a.ID > b.ID {
		return a
	}
	return b
}

// PickCurrent reduces a user's full reservation history to the single
// current reservation per book, regardless of the order reservations
// arrive from the backend.
func PickCurrent(reservations []model.Reservation) map[int]model.Reservation {
	current := make(map[int]model.Reservation, len(reservations))
	for _, r := range reservations {
		if prev, ok := current[r.BookID]; ok {
			current[r.BookID] = MoreRelevant(prev, r)
		} else {
			current[r.BookID] = r
		}
	}
	return current
}
