package models

const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

type Enrollment struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`
}

type TicketType struct {
	ID            int  `json:"id"`
	IsRemote      bool `json:"is_remote"`
	IncludesHotel bool `json:"includes_hotel"`
}

type Ticket struct {
	ID           int        `json:"id"`
	EnrollmentID int        `json:"enrollment_id"`
	Status       string     `json:"status"`
	Type         TicketType `json:"ticket_type"`
}
