package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ReserveTicketRequest struct {
	TicketTypeID uint `json:"ticketTypeId"`
}

func (req *ReserveTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketTypeID, validation.Required),
	)
}
