package errs

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUserName         = errors.New("username is required")
	ErrActionNotAllowed = errors.New("action is not available")
)

type Kind uint8

const (
	KindLimitExceeded Kind = iota + 1
	KindConflict
	KindValidation
	KindGeneric
)

const (
	limitMarker = "maximum number of reserved books"

	msgLimit    = "reservation limit reached"
	msgConflict = "book no longer available"
	msgGeneric  = "action failed"
)

// ActionError is the only error shape that crosses the mutation boundary;
// the raw transport error never reaches the view layer.
type ActionError struct {
	Kind    Kind
	Message string
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) HTTPStatus() int {
	switch e.Kind {
	case KindLimitExceeded, KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// Classify maps a failed mutation to its user-visible error, checked in
// precedence order: limit marker, conflict status, validation, generic.
func Classify(code int, message string) *ActionError {
	switch {
	case strings.Contains(strings.ToLower(message), limitMarker):
		return &ActionError{Kind: KindLimitExceeded, Message: msgLimit}
	case code == http.StatusConflict:
		return &ActionError{Kind: KindConflict, Message: msgConflict}
	case code == http.StatusBadRequest && message != "":
		return &ActionError{Kind: KindValidation, Message: message}
	default:
		return &ActionError{Kind: KindGeneric, Message: msgGeneric}
	}
}

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
