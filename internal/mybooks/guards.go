package mybooks

import (
	"github.com/shelfmate/shelfmate/internal/model"
)

// Actions says which reservation actions are currently available.
type Actions struct {
	CanReserve bool
	CanTake    bool
	CanReturn  bool
	CanCancel  bool
}

// Guards computes the action availability for one book. r is the current
// reservation for the book, nil when the user has none.
func Guards(r *model.Reservation, bookStatus model.BookStatus) Actions {
	if r == nil {
		return Actions{
			CanReserve: bookStatus == model.BookStatusAvailable,
		}
	}
	return Actions{
		CanTake:   r.TakenAt == nil,
		CanReturn: r.TakenAt != nil && r.ReturnedAt == nil,
		CanCancel: r.TakenAt == nil,
	}
}
