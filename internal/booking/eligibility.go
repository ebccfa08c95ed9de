package booking

import "hotelBooker/internal/models"

// Facts is the point-in-time enrollment and ticket state of one user, as read
// from the enrollment/ticket subsystems. Nil fields mean the record does not
// exist.
type Facts struct {
	Enrollment *models.Enrollment
	Ticket     *models.Ticket
}

// CheckEligibility decides whether a user may create a booking. Checks run in
// order and the first failure wins; nil means eligible.
func CheckEligibility(f Facts) error {
	switch {
	case f.Enrollment == nil:
		return ErrNoEnrollment
	case f.Ticket == nil:
		return ErrNoTicket
	case f.Ticket.Status != models.TicketStatusPaid:
		return ErrTicketNotPaid
	case f.Ticket.Type.IsRemote:
		return ErrRemoteTicket
	case !f.Ticket.Type.IncludesHotel:
		return ErrNoHotelEntitlement
	}

	return nil
}
