package model

import (
	"time"
)

type ReservationStatus string

const (
	StatusPendingReserved ReservationStatus = "PENDING_RESERVED"
	StatusCompleted       ReservationStatus = "COMPLETED"
	StatusCancelled       ReservationStatus = "CANCELLED"
	StatusExpired         ReservationStatus = "EXPIRED"
	StatusReturned        ReservationStatus = "RETURNED"
)

type BookStatus string

const (
	BookStatusUnknown     BookStatus = ""
	BookStatusAvailable   BookStatus = "AVAILABLE"
	BookStatusReserved    BookStatus = "RESERVED"
	BookStatusTaken       BookStatus = "TAKEN"
	BookStatusInYourHands BookStatus = "IN_YOUR_HANDS"
	BookStatusReturned    BookStatus = "RETURNED"
)

// Reservation is an immutable snapshot of a backend reservation record.
type Reservation struct {
	ID         int               `json:"id"`
	BookID     int               `json:"bookId"`
	Status     ReservationStatus `json:"status"`
	ReservedAt *time.Time        `json:"reservedAt,omitempty"`
	TakenAt    *time.Time        `json:"takenAt,omitempty"`
	ReturnedAt *time.Time        `json:"returnedAt,omitempty"`
}

// Book is the client-visible availability projection. Its status may lag
// behind the reservation record while the backend settles.
type Book struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Author string     `json:"author"`
	Genre  string     `json:"genre"`
	Status BookStatus `json:"status"`
}

// MyBookStatus is derived, never persisted.
type MyBookStatus string

const (
	MyBookTaken     MyBookStatus = "TAKEN"
	MyBookReserved  MyBookStatus = "RESERVED"
	MyBookReturned  MyBookStatus = "RETURNED"
	MyBookCancelled MyBookStatus = "CANCELLED"
)

// MyBook is the read-only view model exposed to the presentation layer,
// recomputed whenever the underlying reservation or book data changes.
type MyBook struct {
	BookID     int          `json:"bookId"`
	Status     MyBookStatus `json:"status,omitempty"`
	ReservedAt *time.Time   `json:"reservedAt,omitempty"`
	TakenAt    *time.Time   `json:"takenAt,omitempty"`
	ReturnedAt *time.Time   `json:"returnedAt,omitempty"`
	CanReserve bool         `json:"canReserve"`
	CanTake    bool         `json:"canTake"`
	CanReturn  bool         `json:"canReturn"`
	CanCancel  bool         `json:"canCancel"`
	LastError  string       `json:"lastError,omitempty"`
}

type UnreadCount struct {
	Count int `json:"count"`
}
