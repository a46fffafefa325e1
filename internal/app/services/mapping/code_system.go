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

type codeSystemMapper struct {
	defaults config.ViewModelDefaults
}

func NewCodeSystemMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &codeSystemMapper{defaults: defaults}
}

func (m *codeSystemMapper) ResourceType() string {
	return constvars.ResourceCodeSystem
}

type codeSystemConcept struct {
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

func (m *codeSystemMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	vm := &viewmodels.CodeSystem{
		Source:      raw,
		ID:          raw.ID(),
		Name:        unknownOr(stringField(raw, "name"), m.defaults.UnknownDisplay),
		Title:       stringField(raw, "title"),
		Status:      stringField(raw, constvars.FhirFieldStatus),
		URL:         stringField(raw, "url"),
		Version:     stringField(raw, "version"),
		Content:     stringField(raw, "content"),
		Description: stringField(raw, "description"),
	}

	// The declared count wins; the inline concept list is often partial.
	if count, ok := raw.Number("count"); ok {
		vm.ConceptCount = int(count)
	} else {
		var concepts []codeSystemConcept
		if raw.Decode("concept", &concepts) {
			vm.ConceptCount = len(concepts)
		}
	}
	return vm
}

func (m *codeSystemMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.CodeSystem)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())
	setStringField(raw, constvars.FhirFieldStatus, vm.Status)
	setStringField(raw, "title", vm.Title)
	setStringField(raw, "url", vm.URL)
	setStringField(raw, "version", vm.Version)
	setStringField(raw, "content", vm.Content)
	setStringField(raw, "description", vm.Description)
	if vm.Name != "" && vm.Name != m.defaults.UnknownDisplay {
		raw.Set("name", vm.Name)
	}
	// count and concept are store-owned; the console never edits them.
	return raw, nil
}

func (m *codeSystemMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.CodeSystem)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}
