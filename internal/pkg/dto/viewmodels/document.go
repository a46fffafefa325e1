package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

type Document struct {
	Source *fhir_dto.Resource `json:"-"`

	ID            string `json:"id"`
	Title         string `json:"title"`
	Status        string `json:"status" validate:"omitempty,oneof=current superseded entered-in-error"`
	TypeDisplay   string `json:"type_display"`
	SubjectName   string `json:"subject_name"`
	Date          string `json:"date"`
	ContentType   string `json:"content_type"`
	AttachmentURL string `json:"attachment_url"`
	SizeBytes     int64  `json:"size_bytes"`
}
