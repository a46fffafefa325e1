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

type taskMapper struct {
	defaults config.ViewModelDefaults
}

func NewTaskMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &taskMapper{defaults: defaults}
}

func (m *taskMapper) ResourceType() string {
	return constvars.ResourceTask
}

func (m *taskMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	return &viewmodels.Task{
		Source:       raw,
		ID:           raw.ID(),
		Status:       stringField(raw, constvars.FhirFieldStatus),
		Priority:     stringField(raw, "priority"),
		Description:  unknownOr(stringField(raw, "description"), m.defaults.UnknownDisplay),
		SubjectName:  referenceDisplay(raw, "for", m.defaults.UnknownDisplay),
		OwnerName:    referenceDisplay(raw, "owner", m.defaults.UnknownDisplay),
		AuthoredOn:   stringField(raw, "authoredOn"),
		LastModified: stringField(raw, "lastModified"),
	}
}

func (m *taskMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.Task)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())
	setStringField(raw, constvars.FhirFieldStatus, vm.Status)
	setStringField(raw, "priority", vm.Priority)
	setStringField(raw, "authoredOn", vm.AuthoredOn)
	if vm.Description != "" && vm.Description != m.defaults.UnknownDisplay {
		raw.Set("description", vm.Description)
	}
	if vm.SubjectName != m.defaults.UnknownDisplay {
		setReferenceDisplay(raw, "for", vm.SubjectName)
	}
	if vm.OwnerName != m.defaults.UnknownDisplay {
		setReferenceDisplay(raw, "owner", vm.OwnerName)
	}
	// lastModified is store-owned; edits never write it.
	return raw, nil
}

func (m *taskMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.Task)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}
