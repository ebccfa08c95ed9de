// Package booking implements the room allocation engine: eligibility
// checking, capacity admission, and the create/relocate/query operations over
// a transactional booking store.
package booking

import (
	"context"
	"errors"
	"fmt"

	"hotelBooker/internal/models"
)

// txAttempts bounds how many times an operation retries after losing a
// serialization conflict before reporting ErrTxConflict to the caller.
const txAttempts = 3

// Allocator orchestrates the eligibility gate, the capacity guard and the
// store. One instance is shared by all request handlers.
type Allocator struct {
	store Store
}

func NewAllocator(store Store) *Allocator {
	return &Allocator{store: store}
}

// ActiveBooking returns the user's booking together with its room snapshot,
// or ErrNoActiveBooking.
func (a *Allocator) ActiveBooking(ctx context.Context, userID int) (*models.BookingWithRoom, error) {
	const op = "booking.Allocator.ActiveBooking"

	bwr, err := a.store.FindActiveBookingByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if bwr == nil {
		return nil, ErrNoActiveBooking
	}

	return bwr, nil
}

// CreateBooking reserves a slot in the room for the user and returns the new
// booking id. Eligibility is checked first; the capacity check and the insert
// run in one room-serialized transaction.
func (a *Allocator) CreateBooking(ctx context.Context, userID, roomID int) (int, error) {
	const op = "booking.Allocator.CreateBooking"

	facts, err := a.fetchFacts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := CheckEligibility(facts); err != nil {
		return 0, err
	}

	existing, err := a.store.FindActiveBookingByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return 0, ErrAlreadyBooked
	}

	var bookingID int
	err = a.inTxWithRetry(ctx, func(tx Tx) error {
		if err := TryAdmit(ctx, tx, roomID, 0); err != nil {
			return err
		}

		id, err := tx.InsertBooking(ctx, userID, roomID)
		if err != nil {
			return err
		}
		bookingID = id

		return nil
	})
	if err != nil {
		return 0, err
	}

	return bookingID, nil
}

// RelocateBooking moves the user's booking to another room. The destination's
// capacity check excludes the booking being moved, the booking must exist and
// belong to the caller, and the update commits in the same transaction that
// validated capacity.
func (a *Allocator) RelocateBooking(ctx context.Context, userID, bookingID, roomID int) error {
	return a.inTxWithRetry(ctx, func(tx Tx) error {
		if err := TryAdmit(ctx, tx, roomID, bookingID); err != nil {
			return err
		}

		b, err := tx.FindBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if b.UserID != userID {
			return ErrNotOwner
		}

		return tx.UpdateBookingRoom(ctx, bookingID, roomID)
	})
}

func (a *Allocator) fetchFacts(ctx context.Context, userID int) (Facts, error) {
	enrollment, err := a.store.FindEnrollmentByUser(ctx, userID)
	if err != nil {
		return Facts{}, err
	}

	var ticket *models.Ticket
	if enrollment != nil {
		ticket, err = a.store.FindTicketByEnrollment(ctx, enrollment.ID)
		if err != nil {
			return Facts{}, err
		}
	}

	return Facts{Enrollment: enrollment, Ticket: ticket}, nil
}

func (a *Allocator) inTxWithRetry(ctx context.Context, fn func(tx Tx) error) error {
	var err error
	for attempt := 0; attempt < txAttempts; attempt++ {
		err = a.store.InTx(ctx, fn)
		if !errors.Is(err, ErrTxConflict) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return err
}
