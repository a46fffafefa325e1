package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

// Provider is the flat projection of a Practitioner. Every displayed field
// is defaulted; Source points back at the originating record for
// round-tripping on edit and is never serialized.
type Provider struct {
	Source *fhir_dto.Resource `json:"-"`

	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Active    bool   `json:"active"`
}
