package request

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	cpfPattern   = regexp.MustCompile(`^\d{11}$`)
	cepPattern   = regexp.MustCompile(`^\d{8}$`)
	phonePattern = regexp.MustCompile(`^\+?\d{10,14}$`)
)

type UpsertEnrollmentRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"` // RFC 3339 date
	Phone    string `json:"phone"`

	Address AddressRequest `json:"address"`
}

type AddressRequest struct {
	CEP           string `json:"cep"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	Number        string `json:"number"`
	Neighborhood  string `json:"neighborhood"`
	AddressDetail string `json:"addressDetail"`
}

func (req *UpsertEnrollmentRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(3, 255)),
		validation.Field(&req.CPF, validation.Required, validation.Match(cpfPattern)),
		validation.Field(&req.Birthday, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&req.Phone, validation.Required, validation.Match(phonePattern)),
	)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(
		&req.Address,
		validation.Field(&req.Address.CEP, validation.Required, validation.Match(cepPattern)),
		validation.Field(&req.Address.Street, validation.Required),
		validation.Field(&req.Address.City, validation.Required),
		validation.Field(&req.Address.State, validation.Required, validation.Length(2, 2)),
		validation.Field(&req.Address.Number, validation.Required),
		validation.Field(&req.Address.Neighborhood, validation.Required),
	)
}
