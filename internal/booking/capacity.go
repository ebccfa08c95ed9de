package booking

import (
	"context"
	"fmt"
)

// TryAdmit checks whether the room has a free slot, holding the room's row
// lock for the rest of the transaction. excludeBookingID, when non-zero,
// leaves that booking out of the occupancy count so relocating a booking
// within its own room does not count it against the destination.
//
// TryAdmit only reads and decides; making the check-then-write sequence
// atomic is the job of the transaction it runs inside.
func TryAdmit(ctx context.Context, tx Tx, roomID, excludeBookingID int) error {
	const op = "booking.TryAdmit"

	room, err := tx.Room(ctx, roomID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if room == nil {
		return ErrRoomNotFound
	}

	count, err := tx.CountBookingsByRoom(ctx, roomID, excludeBookingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count >= room.Capacity {
		return ErrRoomFull
	}

	return nil
}
