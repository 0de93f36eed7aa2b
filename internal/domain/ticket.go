package domain

import "time"

const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

type Ticket struct {
	ID           uint       `json:"id"`
	EnrollmentID uint       `json:"enrollmentId"`
	TicketTypeID uint       `json:"ticketTypeId"`
	Status       string     `json:"status"`
	TicketType   TicketType `json:"TicketType"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type TicketType struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// GrantsHotelAccess is the entitlement gate: only an in-person, paid ticket
// whose type includes lodging can view hotel inventory.
func (t Ticket) GrantsHotelAccess() bool {
	return t.Status == TicketStatusPaid && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
