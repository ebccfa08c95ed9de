package booking

import "errors"

// Kind is the caller-facing classification of a booking error. The transport
// layer maps kinds to status codes; the Reason stays distinguishable for
// diagnostics.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindUnavailable
)

type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

var (
	ErrNoEnrollment       = &Error{Kind: KindForbidden, Reason: "user has no enrollment"}
	ErrNoTicket           = &Error{Kind: KindForbidden, Reason: "user has no ticket"}
	ErrTicketNotPaid      = &Error{Kind: KindForbidden, Reason: "ticket has not been paid"}
	ErrRemoteTicket       = &Error{Kind: KindForbidden, Reason: "ticket is for remote attendance"}
	ErrNoHotelEntitlement = &Error{Kind: KindForbidden, Reason: "ticket does not include hotel"}
	ErrAlreadyBooked      = &Error{Kind: KindForbidden, Reason: "user already has a booking"}
	ErrRoomFull           = &Error{Kind: KindForbidden, Reason: "room is full"}
	ErrBookingNotFound    = &Error{Kind: KindForbidden, Reason: "booking not found"}
	ErrNotOwner           = &Error{Kind: KindForbidden, Reason: "booking belongs to another user"}

	ErrRoomNotFound    = &Error{Kind: KindNotFound, Reason: "room not found"}
	ErrNoActiveBooking = &Error{Kind: KindNotFound, Reason: "user has no booking"}

	// ErrTxConflict is returned by the store when the room transaction lost a
	// serialization conflict. The allocator retries it; callers only see it
	// once retries are exhausted.
	ErrTxConflict = &Error{Kind: KindUnavailable, Reason: "booking conflict, try again"}
)

// KindOf extracts the Kind from err, or 0 when err is not a booking error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
