package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

type Coverage struct {
	Source *fhir_dto.Resource `json:"-"`

	ID              string  `json:"id"`
	Status          string  `json:"status" validate:"omitempty,oneof=active cancelled draft entered-in-error"`
	TypeDisplay     string  `json:"type_display"`
	SubscriberID    string  `json:"subscriber_id"`
	BeneficiaryName string  `json:"beneficiary_name"`
	PayerName       string  `json:"payer_name"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	Copay           float64 `json:"copay"`
	Deductible      float64 `json:"deductible"`
}
