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

type medicationMapper struct {
	defaults config.ViewModelDefaults
}

func NewMedicationMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &medicationMapper{defaults: defaults}
}

func (m *medicationMapper) ResourceType() string {
	return constvars.ResourceMedication
}

func (m *medicationMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	return &viewmodels.Medication{
		Source:       raw,
		ID:           raw.ID(),
		Name:         conceptDisplay(raw, "code", m.defaults.UnknownDisplay),
		Status:       stringField(raw, constvars.FhirFieldStatus),
		Manufacturer: referenceDisplay(raw, "manufacturer", m.defaults.UnknownDisplay),
		Form:         conceptDisplay(raw, "form", m.defaults.UnknownDisplay),
		UnitPrice:    fhir_dto.ReadExtensionDecimal(raw, constvars.ExtTokenUnitPrice, 0),
	}
}

func (m *medicationMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.Medication)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())
	setStringField(raw, constvars.FhirFieldStatus, vm.Status)

	if vm.Name != "" && vm.Name != m.defaults.UnknownDisplay {
		var concept fhir_dto.CodeableConcept
		raw.Decode("code", &concept)
		concept.Text = vm.Name
		raw.Set("code", concept)
	}

	if vm.Manufacturer != m.defaults.UnknownDisplay {
		setReferenceDisplay(raw, "manufacturer", vm.Manufacturer)
	}

	if vm.Form != "" && vm.Form != m.defaults.UnknownDisplay {
		var concept fhir_dto.CodeableConcept
		raw.Decode("form", &concept)
		concept.Text = vm.Form
		raw.Set("form", concept)
	}

	writeDecimalExtension(raw, constvars.ExtTokenUnitPrice, extUrlUnitPrice, vm.UnitPrice)
	return raw, nil
}

func (m *medicationMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.Medication)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}
