package viewmodels

import "caregate-service/internal/pkg/fhir_dto"

type AuditEvent struct {
	Source *fhir_dto.Resource `json:"-"`

	ID             string `json:"id"`
	Action         string `json:"action"`
	Outcome        string `json:"outcome"`
	Recorded       string `json:"recorded"`
	TypeDisplay    string `json:"type_display"`
	SubtypeDisplay string `json:"subtype_display"`
	AgentName      string `json:"agent_name"`
	SourceSite     string `json:"source_site"`
}
