package mybooks_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shelfmate/shelfmate/internal/model"
	"github.com/shelfmate/shelfmate/internal/mybooks"
)

func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return &v
}

func TestResolve(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name        string
		reservation model.Reservation
		bookStatus  model.BookStatus
		want        model.MyBookStatus
	}{
		{
			name: "reserved and book available",
			reservation: model.Reservation{
				Status:     model.StatusPendingReserved,
				ReservedAt: ts(t, "2024-01-01T00:00:00Z"),
			},
			bookStatus: model.BookStatusAvailable,
			want:       model.MyBookReserved,
		},
		{
			name: "completed but book already returned",
			reservation: model.Reservation{
				Status:  model.StatusCompleted,
				TakenAt: ts(t, "2024-02-01T10:00:00Z"),
			},
			bookStatus: model.BookStatusReturned,
			want:       model.MyBookReturned,
		},
		{
			name: "completed and book in hand",
			reservation: model.Reservation{
				Status:  model.StatusCompleted,
				TakenAt: ts(t, "2024-02-01T10:00:00Z"),
			},
			bookStatus: model.BookStatusInYourHands,
			want:       model.MyBookTaken,
		},
		{
			name: "completed and book marked taken",
			reservation: model.Reservation{
				Status: model.StatusCompleted,
			},
			bookStatus: model.BookStatusTaken,
			want:       model.MyBookTaken,
		},
		{
			name: "takenAt set without completed status",
			reservation: model.Reservation{
				Status:  model.StatusPendingReserved,
				TakenAt: ts(t, "2024-02-01T10:00:00Z"),
			},
			bookStatus: model.BookStatusInYourHands,
			want:       model.MyBookTaken,
		},
		{
			name: "cancelled",
			reservation: model.Reservation{
				Status: model.StatusCancelled,
			},
			bookStatus: model.BookStatusAvailable,
			want:       model.MyBookCancelled,
		},
		{
			name: "expired maps to cancelled",
			reservation: model.Reservation{
				Status: model.StatusExpired,
			},
			bookStatus: model.BookStatusAvailable,
			want:       model.MyBookCancelled,
		},
		{
			name: "returned status without timestamp",
			reservation: model.Reservation{
				Status: model.StatusReturned,
			},
			bookStatus: model.BookStatusInYourHands,
			want:       model.MyBookReturned,
		},
		{
			name: "unknown book status falls back to reserved",
			reservation: model.Reservation{
				Status:     model.StatusPendingReserved,
				ReservedAt: ts(t, "2024-01-01T00:00:00Z"),
			},
			bookStatus: model.BookStatusUnknown,
			want:       model.MyBookReserved,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, mybooks.Resolve(tt.reservation, tt.bookStatus))
		})
	}
}

func TestResolve_ReturnedAtDominates(t *testing.T) {
	t.Parallel()

	r := model.Reservation{
		Status:     model.StatusCompleted,
		TakenAt:    ts(t, "2024-02-01T10:00:00Z"),
		ReturnedAt: ts(t, "2024-02-05T10:00:00Z"),
	}
	for _, bs := range []model.BookStatus{
		model.BookStatusUnknown,
		model.BookStatusAvailable,
		model.BookStatusReserved,
		model.BookStatusTaken,
		model.BookStatusInYourHands,
		model.BookStatusReturned,
	} {
		require.Equal(t, model.MyBookReturned, mybooks.Resolve(r, bs), "bookStatus=%s", bs)
	}
}
