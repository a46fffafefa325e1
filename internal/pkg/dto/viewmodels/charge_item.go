package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

// ChargeItem backs both the charge-item and discount pages; the discount
// percentage lives in an extension on the wire, never in a first-class
// field.
type ChargeItem struct {
	Source *fhir_dto.Resource `json:"-"`

	ID                 string  `json:"id"`
	Status             string  `json:"status" validate:"omitempty,oneof=planned billable not-billable aborted billed entered-in-error"`
	CodeDisplay        string  `json:"code_display"`
	SubjectName        string  `json:"subject_name"`
	Quantity           float64 `json:"quantity"`
	Price              float64 `json:"price"`
	Currency           string  `json:"currency"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Category           string  `json:"category"`
	Occurrence         string  `json:"occurrence"`
}
