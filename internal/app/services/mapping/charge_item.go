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

type chargeItemMapper struct {
	defaults config.ViewModelDefaults
}

func NewChargeItemMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &chargeItemMapper{defaults: defaults}
}

func (m *chargeItemMapper) ResourceType() string {
	return constvars.ResourceChargeItem
}

func (m *chargeItemMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	vm := &viewmodels.ChargeItem{
		Source:             raw,
		ID:                 raw.ID(),
		Status:             stringField(raw, constvars.FhirFieldStatus),
		CodeDisplay:        conceptDisplay(raw, "code", m.defaults.UnknownDisplay),
		SubjectName:        referenceDisplay(raw, "subject", m.defaults.UnknownDisplay),
		Currency:           m.defaults.Currency,
		DiscountPercentage: fhir_dto.ReadExtensionDecimal(raw, constvars.ExtTokenPercentage, m.defaults.DiscountPercentage),
		Category:           fhir_dto.ReadExtensionCode(raw, constvars.ExtTokenCategory, ""),
		Occurrence:         stringField(raw, "occurrenceDateTime"),
	}

	var quantity fhir_dto.Quantity
	if raw.Decode("quantity", &quantity) {
		vm.Quantity = quantity.Value
	}

	var price fhir_dto.Money
	if raw.Decode("priceOverride", &price) {
		vm.Price = price.Value
		if price.Currency != "" {
			vm.Currency = price.Currency
		}
	}
	return vm
}

func (m *chargeItemMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.ChargeItem)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())
	setStringField(raw, constvars.FhirFieldStatus, vm.Status)
	setStringField(raw, "occurrenceDateTime", vm.Occurrence)
	if vm.SubjectName != m.defaults.UnknownDisplay {
		setReferenceDisplay(raw, "subject", vm.SubjectName)
	}

	if vm.CodeDisplay != "" && vm.CodeDisplay != m.defaults.UnknownDisplay {
		var concept fhir_dto.CodeableConcept
		raw.Decode("code", &concept)
		concept.Text = vm.CodeDisplay
		raw.Set("code", concept)
	}

	if vm.Quantity > 0 {
		var quantity fhir_dto.Quantity
		raw.Decode("quantity", &quantity)
		quantity.Value = vm.Quantity
		raw.Set("quantity", quantity)
	}

	if vm.Price > 0 || vm.Currency != "" {
		var price fhir_dto.Money
		raw.Decode("priceOverride", &price)
		if vm.Price > 0 {
			price.Value = vm.Price
		}
		if vm.Currency != "" {
			price.Currency = vm.Currency
		}
		raw.Set("priceOverride", price)
	}

	writeDecimalExtension(raw, constvars.ExtTokenPercentage, extUrlDiscountPercentage, vm.DiscountPercentage)
	writeCodeExtension(raw, constvars.ExtTokenCategory, extUrlCategory, vm.Category)
	return raw, nil
}

func (m *chargeItemMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.ChargeItem)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}
