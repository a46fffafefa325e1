package mapping

import (
	"caregate-service/internal/app/config"
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/viewmodels"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

type auditEventMapper struct {
	defaults config.ViewModelDefaults
}

func NewAuditEventMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &auditEventMapper{defaults: defaults}
}

func (m *auditEventMapper) ResourceType() string {
	return constvars.ResourceAuditEvent
}

func (m *auditEventMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	vm := &viewmodels.AuditEvent{
		Source:         raw,
		ID:             raw.ID(),
		Action:         stringField(raw, "action"),
		Outcome:        stringField(raw, "outcome"),
		Recorded:       stringField(raw, "recorded"),
		TypeDisplay:    m.defaults.UnknownDisplay,
		SubtypeDisplay: "",
		AgentName:      m.defaults.UnknownDisplay,
	}

	var eventType fhir_dto.Coding
	if raw.Decode("type", &eventType) && eventType.Display != "" {
		vm.TypeDisplay = eventType.Display
	}

	var subtypes []fhir_dto.Coding
	if raw.Decode("subtype", &subtypes) && len(subtypes) > 0 {
		vm.SubtypeDisplay = subtypes[0].Display
	}

	var agents []fhir_dto.AuditAgent
	if raw.Decode("agent", &agents) && len(agents) > 0 && agents[0].Who != nil && agents[0].Who.Display != "" {
		vm.AgentName = agents[0].Who.Display
	}

	var source fhir_dto.AuditSource
	if raw.Decode("source", &source) {
		vm.SourceSite = source.Site
	}
	return vm
}

// ToRaw exists for fixture-mode demos; audit events in the live store are
// append-only and written by the store itself.
func (m *auditEventMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.AuditEvent)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())
	setStringField(raw, "action", vm.Action)
	setStringField(raw, "outcome", vm.Outcome)
	setStringField(raw, "recorded", vm.Recorded)

	if vm.TypeDisplay != "" && vm.TypeDisplay != m.defaults.UnknownDisplay {
		var eventType fhir_dto.Coding
		raw.Decode("type", &eventType)
		eventType.Display = vm.TypeDisplay
		raw.Set("type", eventType)
	}

	if vm.AgentName != "" && vm.AgentName != m.defaults.UnknownDisplay {
		var agents []fhir_dto.AuditAgent
		raw.Decode("agent", &agents)
		if len(agents) == 0 {
			agents = []fhir_dto.AuditAgent{{Requestor: true}}
		}
		if agents[0].Who == nil {
			agents[0].Who = &fhir_dto.Reference{}
		}
		agents[0].Who.Display = vm.AgentName
		raw.Set("agent", agents)
	}

	if vm.SourceSite != "" {
		var source fhir_dto.AuditSource
		raw.Decode("source", &source)
		source.Site = vm.SourceSite
		raw.Set("source", source)
	}
	return raw, nil
}

func (m *auditEventMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.AuditEvent)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}
