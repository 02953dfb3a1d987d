package booking

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a booking failure for the transport layer.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "notFound"
	KindInvalidState ErrorKind = "invalidState"
	KindNotAvailable ErrorKind = "notAvailable"
	KindForbidden    ErrorKind = "forbidden"
)

// BookingError is returned for every rejected booking operation.
type BookingError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(kind ErrorKind, code, format string, args ...any) error {
	return &BookingError{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewUserNotFound(userID string) error {
	return newError(KindNotFound, "userNotFound", "User ID: %s not found", userID)
}

func NewItemNotFound(itemID string) error {
	return newError(KindNotFound, "itemNotFound", "Item ID: %s not found", itemID)
}

func NewBookingNotFound(bookingID string) error {
	return newError(KindNotFound, "bookingNotFound", "Booking ID %s not found", bookingID)
}

func NewUnknownState(keyword string) error {
	return newError(KindInvalidState, "unknownState", "Unknown state: %s", keyword)
}

func NewAlreadyDecided(bookingID string) error {
	return newError(KindInvalidState, "alreadyDecided", "Booking ID %s was already decided by the owner", bookingID)
}

// NewInvalidPage takes the parameters as the client sent them.
func NewInvalidPage(from, size string) error {
	return newError(KindInvalidState, "invalidPage", "invalid pagination parameters from=%s size=%s", from, size)
}

func NewNotAvailable(reason string) error {
	return newError(KindNotAvailable, "notAvailable", "Not available for booking: %s", reason)
}

func NewOwnerSelfBooking() error {
	return newError(KindForbidden, "ownerSelfBooking", "Owner cannot book his own item")
}

func NewNotOwner() error {
	return newError(KindForbidden, "notOwner", "The booking can only be decided by the item owner")
}

func NewNotVisible(bookingID string) error {
	return newError(KindForbidden, "notVisible", "Booking ID %s is not available to you", bookingID)
}

// KindOf returns the kind of a booking error anywhere in the chain, or "" if
// err is not a booking error.
func KindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
