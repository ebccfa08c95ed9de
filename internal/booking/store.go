package booking

import (
	"context"

	"hotelBooker/internal/models"
)

// Store is the persistence boundary the allocator runs against. Find methods
// return (nil, nil) when the record does not exist.
type Store interface {
	FindActiveBookingByUser(ctx context.Context, userID int) (*models.BookingWithRoom, error)
	FindEnrollmentByUser(ctx context.Context, userID int) (*models.Enrollment, error)
	FindTicketByEnrollment(ctx context.Context, enrollmentID int) (*models.Ticket, error)

	// InTx runs fn inside a single transaction. All capacity reads and booking
	// writes for one operation happen through the Tx fn receives; the store
	// commits on nil and rolls back on error. A lost lock or serialization
	// failure surfaces as ErrTxConflict.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the transactional view of the store. Room takes a row-level lock on
// the room, serializing capacity-affecting operations on it until the
// transaction ends. InsertBooking returns ErrAlreadyBooked when the user
// already holds a booking, so a concurrent same-user create cannot slip past
// the allocator's pre-check.
type Tx interface {
	Room(ctx context.Context, roomID int) (*models.Room, error)
	CountBookingsByRoom(ctx context.Context, roomID int, excludeBookingID int) (int, error)
	FindBooking(ctx context.Context, bookingID int) (*models.Booking, error)
	InsertBooking(ctx context.Context, userID, roomID int) (int, error)
	UpdateBookingRoom(ctx context.Context, bookingID, roomID int) error
}
