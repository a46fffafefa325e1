package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

type Medication struct {
	Source *fhir_dto.Resource `json:"-"`

	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive entered-in-error"`
	Manufacturer string  `json:"manufacturer"`
	Form         string  `json:"form"`
	UnitPrice    float64 `json:"unit_price"`
}
