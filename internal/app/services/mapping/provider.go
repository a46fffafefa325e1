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

type providerMapper struct {
	defaults config.ViewModelDefaults
}

func NewProviderMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &providerMapper{defaults: defaults}
}

func (m *providerMapper) ResourceType() string {
	return constvars.ResourcePractitioner
}

type practitionerQualification struct {
	Code fhir_dto.CodeableConcept `json:"code,omitempty"`
}

func (m *providerMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	vm := &viewmodels.Provider{
		Source:    raw,
		ID:        raw.ID(),
		FullName:  m.defaults.UnknownDisplay,
		Specialty: m.defaults.UnknownDisplay,
	}

	var names []fhir_dto.HumanName
	if raw.Decode("name", &names) && len(names) > 0 {
		vm.FullName = humanNameDisplay(names[0], m.defaults.UnknownDisplay)
	}

	var qualifications []practitionerQualification
	if raw.Decode("qualification", &qualifications) && len(qualifications) > 0 {
		vm.Specialty = conceptText(qualifications[0].Code, m.defaults.UnknownDisplay)
	}

	var telecom []fhir_dto.ContactPoint
	if raw.Decode("telecom", &telecom) {
		for _, point := range telecom {
			switch point.System {
			case "email":
				if vm.Email == "" {
					vm.Email = point.Value
				}
			case "phone":
				if vm.Phone == "" {
					vm.Phone = point.Value
				}
			}
		}
	}

	vm.Gender = stringField(raw, "gender")
	vm.Active, _ = raw.Bool("active")
	return vm
}

func (m *providerMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.Provider)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())

	if vm.FullName != "" && vm.FullName != m.defaults.UnknownDisplay {
		var names []fhir_dto.HumanName
		raw.Decode("name", &names)
		if len(names) == 0 {
			names = []fhir_dto.HumanName{{}}
		}
		names[0].Text = vm.FullName
		raw.Set("name", names)
	}

	if vm.Specialty != "" && vm.Specialty != m.defaults.UnknownDisplay {
		var qualifications []practitionerQualification
		raw.Decode("qualification", &qualifications)
		if len(qualifications) == 0 {
			qualifications = []practitionerQualification{{}}
		}
		qualifications[0].Code.Text = vm.Specialty
		raw.Set("qualification", qualifications)
	}

	setTelecomValue(raw, "email", vm.Email)
	setTelecomValue(raw, "phone", vm.Phone)
	setStringField(raw, "gender", vm.Gender)
	raw.Set("active", vm.Active)
	return raw, nil
}

func (m *providerMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.Provider)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}

// humanNameDisplay prefers the composed text and falls back to assembling
// prefix, given and family parts.
func humanNameDisplay(name fhir_dto.HumanName, fallback string) string {
	if name.Text != "" {
		return name.Text
	}
	parts := []string{}
	parts = append(parts, name.Prefix...)
	parts = append(parts, name.Given...)
	if name.Family != "" {
		parts = append(parts, name.Family)
	}
	if len(parts) == 0 {
		return fallback
	}
	display := parts[0]
	for _, part := range parts[1:] {
		display += " " + part
	}
	return display
}

// setTelecomValue updates the first contact point of the given system in
// place, appending one when the record has none. Blank values leave the
// stored contact points alone.
func setTelecomValue(r *fhir_dto.Resource, system, value string) {
	if value == "" {
		return
	}
	var telecom []fhir_dto.ContactPoint
	r.Decode("telecom", &telecom)
	for i := range telecom {
		if telecom[i].System == system {
			telecom[i].Value = value
			r.Set("telecom", telecom)
			return
		}
	}
	r.Set("telecom", append(telecom, fhir_dto.ContactPoint{System: system, Value: value}))
}
