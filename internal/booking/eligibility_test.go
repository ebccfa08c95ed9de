package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelBooker/internal/models"
)

func TestCheckEligibility(t *testing.T) {
	t.Parallel()

	enrollment := &models.Enrollment{ID: 1, UserID: 1}

	paidTicket := func(isRemote, includesHotel bool) *models.Ticket {
		return &models.Ticket{
			ID:           1,
			EnrollmentID: 1,
			Status:       models.TicketStatusPaid,
			Type: models.TicketType{
				ID:            1,
				IsRemote:      isRemote,
				IncludesHotel: includesHotel,
			},
		}
	}

	testCases := []struct {
		name        string
		facts       Facts
		expectedErr error
	}{
		{
			name:        "No enrollment",
			facts:       Facts{},
			expectedErr: ErrNoEnrollment,
		},
		{
			name:        "No ticket",
			facts:       Facts{Enrollment: enrollment},
			expectedErr: ErrNoTicket,
		},
		{
			name: "Ticket not paid",
			facts: Facts{
				Enrollment: enrollment,
				Ticket: &models.Ticket{
					ID:           1,
					EnrollmentID: 1,
					Status:       models.TicketStatusReserved,
					Type:         models.TicketType{ID: 1, IncludesHotel: true},
				},
			},
			expectedErr: ErrTicketNotPaid,
		},
		{
			name: "Remote ticket",
			facts: Facts{
				Enrollment: enrollment,
				Ticket:     paidTicket(true, true),
			},
			expectedErr: ErrRemoteTicket,
		},
		{
			name: "No hotel entitlement",
			facts: Facts{
				Enrollment: enrollment,
				Ticket:     paidTicket(false, false),
			},
			expectedErr: ErrNoHotelEntitlement,
		},
		{
			name: "Eligible",
			facts: Facts{
				Enrollment: enrollment,
				Ticket:     paidTicket(false, true),
			},
			expectedErr: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckEligibility(tc.facts)

			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, KindForbidden, KindOf(err))
			}
		})
	}
}
