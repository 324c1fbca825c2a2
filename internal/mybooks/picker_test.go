package mybooks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shelfmate/shelfmate/internal/model"
	"github.com/shelfmate/shelfmate/internal/mybooks"
)

func TestPickCurrent_LatestTimestampWins(t *testing.T) {
	t.Parallel()

	taken := model.Reservation{ID: 10, BookID: 5, Status: model.StatusCompleted, TakenAt: ts(t, "2024-03-01T00:00:00Z")}
	returned := model.Reservation{ID: 11, BookID: 5, Status: model.StatusReturned, ReturnedAt: ts(t, "2024-03-02T00:00:00Z")}

	current := mybooks.PickCurrent([]model.Reservation{taken, returned})
	require.Len(t, current, 1)
	require.Equal(t, 11, current[5].ID)
}

func TestPickCurrent_TieBreaksOnLargerID(t *testing.T) {
	t.Parallel()

	a := model.Reservation{ID: 3, BookID: 7, Status: model.StatusPendingReserved, ReservedAt: ts(t, "2024-01-01T00:00:00Z")}
	b := model.Reservation{ID: 8, BookID: 7, Status: model.StatusPendingReserved, ReservedAt: ts(t, "2024-01-01T00:00:00Z")}

	require.Equal(t, 8, mybooks.PickCurrent([]model.Reservation{a, b})[7].ID)
	require.Equal(t, 8, mybooks.PickCurrent([]model.Reservation{b, a})[7].ID)
}

func TestPickCurrent_TieBreaksOnStatusPriority(t *testing.T) {
	t.Parallel()

	// identical timestamps: the cancelled reservation loses to the active
	// one even though its id is larger
	active := model.Reservation{ID: 1, BookID: 2, Status: model.StatusPendingReserved, ReservedAt: ts(t, "2024-01-01T00:00:00Z")}
	cancelled := model.Reservation{ID: 9, BookID: 2, Status: model.StatusCancelled, ReservedAt: ts(t, "2024-01-01T00:00:00Z")}

	require.Equal(t, 1, mybooks.PickCurrent([]model.Reservation{active, cancelled})[2].ID)
	require.Equal(t, 1, mybooks.PickCurrent([]model.Reservation{cancelled, active})[2].ID)
}

func TestPickCurrent_OrderIndependent(t *testing.T) {
	t.Parallel()

	rr := []model.Reservation{
		{ID: 1, BookID: 4, Status: model.StatusCancelled, ReservedAt: ts(t, "2024-01-01T00:00:00Z")},
		{ID: 2, BookID: 4, Status: model.StatusPendingReserved, ReservedAt: ts(t, "2024-02-01T00:00:00Z")},
		{ID: 3, BookID: 4, Status: model.StatusCompleted, TakenAt: ts(t, "2024-02-01T00:00:00Z")},
		{ID: 4, BookID: 9, Status: model.StatusPendingReserved},
	}

	want := mybooks.PickCurrent(rr)
	require.Len(t, want, 2)

	var permute func(list []model.Reservation, k int)
	permute = func(list []model.Reservation, k int) {
		if k == len(list) {
			perm := make([]model.Reservation, len(list))
			copy(perm, list)
			require.Equal(t, want, mybooks.PickCurrent(perm), "permutation %v", perm)
			return
		}
		for i := k; i < len(list); i++ {
			list[k], list[i] = list[i], list[k]
			permute(list, k+1)
			list[k], list[i] = list[i], list[k]
		}
	}
	permute(rr, 0)
}

func TestPickCurrent_NoTimestampsTreatedAsZero(t *testing.T) {
	t.Parallel()

	bare := model.Reservation{ID: 20, BookID: 1, Status: model.StatusPendingReserved}
	stamped := model.Reservation{ID: 2, BookID: 1, Status: model.StatusPendingReserved, ReservedAt: ts(t, "2024-01-01T00:00:00Z")}

	require.Equal(t, 2, mybooks.PickCurrent([]model.Reservation{bare, stamped})[1].ID)
}
