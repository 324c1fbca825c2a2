package errs_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shelfmate/shelfmate/internal/errs"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name        string
		code        int
		message     string
		wantKind    errs.Kind
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "limit marker beats conflict status",
			code:        http.StatusConflict,
			message:     "You have reached the Maximum number of reserved books",
			wantKind:    errs.KindLimitExceeded,
			wantMessage: "reservation limit reached",
			wantStatus:  http.StatusConflict,
		},
		{
			name:        "conflict",
			code:        http.StatusConflict,
			message:     "book is already reserved",
			wantKind:    errs.KindConflict,
			wantMessage: "book no longer available",
			wantStatus:  http.StatusConflict,
		},
		{
			name:        "validation passes message verbatim",
			code:        http.StatusBadRequest,
			message:     "bookId must be positive",
			wantKind:    errs.KindValidation,
			wantMessage: "bookId must be positive",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "bad request without message is generic",
			code:        http.StatusBadRequest,
			message:     "",
			wantKind:    errs.KindGeneric,
			wantMessage: "action failed",
			wantStatus:  http.StatusBadGateway,
		},
		{
			name:        "server error is generic",
			code:        http.StatusInternalServerError,
			message:     "pq: deadlock detected",
			wantKind:    errs.KindGeneric,
			wantMessage: "action failed",
			wantStatus:  http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := errs.Classify(tt.code, tt.message)
			require.Equal(t, tt.wantKind, got.Kind)
			require.Equal(t, tt.wantMessage, got.Message)
			require.Equal(t, tt.wantMessage, got.Error())
			require.Equal(t, tt.wantStatus, got.HTTPStatus())
		})
	}
}
