package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

type Task struct {
	Source *fhir_dto.Resource `json:"-"`

	ID           string `json:"id"`
	Status       string `json:"status" validate:"omitempty,oneof=requested in-progress completed cancelled on-hold"`
	Priority     string `json:"priority"`
	Description  string `json:"description"`
	SubjectName  string `json:"subject_name"`
	OwnerName    string `json:"owner_name"`
	AuthoredOn   string `json:"authored_on"`
	LastModified string `json:"last_modified"`
}
