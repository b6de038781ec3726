package errors

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a failure so handlers can map it to an HTTP status
// without inspecting message text.
type Kind string

const (
	KindValidation         Kind = "VALIDATION"
	KindConflict           Kind = "CONFLICT"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindAuthMissing        Kind = "AUTH_MISSING"
	KindAuthExpired        Kind = "AUTH_EXPIRED"
	KindAuthInvalid        Kind = "AUTH_INVALID"
	KindNotFound           Kind = "NOT_FOUND"
	KindDeleted            Kind = "DELETED"
	KindInternal           Kind = "INTERNAL"
)

// Error is a classified, user-presentable failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates a classified Error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the Kind of err, defaulting to KindInternal for
// anything that is not a classified *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// statusOf maps a failure Kind to its HTTP status. Deleted is a 400
// rather than a 404: the account is known to exist, the client just
// has to recover it first.
func statusOf(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict, KindInvalidCredentials, KindDeleted:
		return http.StatusBadRequest
	case KindAuthMissing, KindAuthExpired, KindAuthInvalid:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond converts err into the flat, per-operation-keyed JSON error
// payload the API exposes. Internal causes are logged server-side and
// replaced with an opaque message.
func Respond(c *gin.Context, key string, err error) {
	kind := KindOf(err)
	message := err.Error()
	if kind == KindInternal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "An unexpected error occurred. Please try again later."
	}
	c.JSON(statusOf(kind), gin.H{key: message})
}
