package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

type CodeSystem struct {
	Source *fhir_dto.Resource `json:"-"`

	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Status       string `json:"status" validate:"omitempty,oneof=draft active retired unknown"`
	URL          string `json:"url"`
	Version      string `json:"version"`
	Content      string `json:"content"`
	ConceptCount int    `json:"concept_count"`
	Description  string `json:"description"`
}
