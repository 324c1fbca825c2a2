// Package mybooks derives the lifecycle view of a user's reservations from
// backend snapshots. Everything here is pure: no I/O, no hidden state.
package mybooks

import (
	"github.com/shelfmate/shelfmate/internal/model"
)

// Resolve derives the lifecycle status of a reservation. bookStatus may be
// model.BookStatusUnknown when the book snapshot is unavailable. Rules are
// checked in order; later rules apply only when earlier ones do not match.
func Resolve(r model.Reservation, bookStatus model.BookStatus) model.MyBookStatus {
	if r.ReturnedAt != nil || r.Status == model.StatusReturned {
		return model.MyBookReturned
	}
	// The backend sometimes leaves a reservation COMPLETED after the book
	// record already reflects the physical return. When the book is not in
	// anyone's hands, trust the book record over the lagging reservation.
	if r.Status == model.StatusCompleted && !inHand(bookStatus) {
		return model.MyBookReturned
	}
	if r.TakenAt != nil || r.Status == model.StatusCompleted {
		return model.MyBookTaken
	}
	if r.Status == model.StatusCancelled || r.Status == model.StatusExpired {
		return model.MyBookCancelled
	}
	return model.MyBookReserved
}

func inHand(bookStatus model.BookStatus) bool {
	return bookStatus == model.BookStatusInYourHands || bookStatus == model.BookStatusTaken
}
