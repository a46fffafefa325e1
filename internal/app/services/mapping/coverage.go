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

type coverageMapper struct {
	defaults config.ViewModelDefaults
}

func NewCoverageMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &coverageMapper{defaults: defaults}
}

func (m *coverageMapper) ResourceType() string {
	return constvars.ResourceCoverage
}

func (m *coverageMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	vm := &viewmodels.Coverage{
		Source:          raw,
		ID:              raw.ID(),
		Status:          stringField(raw, constvars.FhirFieldStatus),
		TypeDisplay:     conceptDisplay(raw, "type", m.defaults.UnknownDisplay),
		SubscriberID:    stringField(raw, "subscriberId"),
		BeneficiaryName: referenceDisplay(raw, "beneficiary", m.defaults.UnknownDisplay),
		PayerName:       m.defaults.UnknownDisplay,
		Copay:           fhir_dto.ReadExtensionDecimal(raw, constvars.ExtTokenCopay, m.defaults.Copay),
		Deductible:      fhir_dto.ReadExtensionDecimal(raw, constvars.ExtTokenDeductible, m.defaults.Deductible),
	}

	var payors []fhir_dto.Reference
	if raw.Decode("payor", &payors) && len(payors) > 0 && payors[0].Display != "" {
		vm.PayerName = payors[0].Display
	}

	var period fhir_dto.Period
	if raw.Decode("period", &period) {
		vm.PeriodStart = period.Start
		vm.PeriodEnd = period.End
	}
	return vm
}

func (m *coverageMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.Coverage)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())
	setStringField(raw, constvars.FhirFieldStatus, vm.Status)
	setStringField(raw, "subscriberId", vm.SubscriberID)
	setReferenceDisplay(raw, "beneficiary", vm.BeneficiaryName)

	if vm.TypeDisplay != "" && vm.TypeDisplay != m.defaults.UnknownDisplay {
		var concept fhir_dto.CodeableConcept
		raw.Decode("type", &concept)
		concept.Text = vm.TypeDisplay
		raw.Set("type", concept)
	}

	if vm.PayerName != "" && vm.PayerName != m.defaults.UnknownDisplay {
		var payors []fhir_dto.Reference
		raw.Decode("payor", &payors)
		if len(payors) == 0 {
			payors = []fhir_dto.Reference{{}}
		}
		payors[0].Display = vm.PayerName
		raw.Set("payor", payors)
	}

	if vm.PeriodStart != "" || vm.PeriodEnd != "" {
		var period fhir_dto.Period
		raw.Decode("period", &period)
		if vm.PeriodStart != "" {
			period.Start = vm.PeriodStart
		}
		if vm.PeriodEnd != "" {
			period.End = vm.PeriodEnd
		}
		raw.Set("period", period)
	}

	writeDecimalExtension(raw, constvars.ExtTokenCopay, extUrlCopay, vm.Copay)
	writeDecimalExtension(raw, constvars.ExtTokenDeductible, extUrlDeductible, vm.Deductible)
	return raw, nil
}

func (m *coverageMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.Coverage)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}
