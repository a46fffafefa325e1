package mapping

import (
	"caregate-service/internal/app/config"
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"
)

// Registry holds one mapper per resource type. The dataset usecase looks
// mappers up by the resource type a dataset resolves to.
type Registry struct {
	mappers map[string]contracts.ResourceMapper
}

func NewRegistry(defaults config.ViewModelDefaults) *Registry {
	registry := &Registry{mappers: map[string]contracts.ResourceMapper{}}
	registry.register(NewProviderMapper(defaults))
	registry.register(NewCoverageMapper(defaults))
	registry.register(NewTaskMapper(defaults))
	registry.register(NewMedicationMapper(defaults))
	registry.register(NewDocumentMapper(defaults))
	registry.register(NewChargeItemMapper(defaults))
	registry.register(NewCodeSystemMapper(defaults))
	registry.register(NewAuditEventMapper(defaults))
	return registry
}

func (r *Registry) register(mapper contracts.ResourceMapper) {
	r.mappers[mapper.ResourceType()] = mapper
}

func (r *Registry) Mapper(resourceType string) (contracts.ResourceMapper, error) {
	mapper, ok := r.mappers[resourceType]
	if !ok {
		return nil, exceptions.ErrUnknownResourceMapper(resourceType)
	}
	return mapper, nil
}

// Canonical extension urls used when a record has no prior entry for a
// token. Writes against existing records keep the url already in the store.
const (
	extUrlCopay              = "http://caregate.example.org/fhir/StructureDefinition/coverage-copay"
	extUrlDeductible         = "http://caregate.example.org/fhir/StructureDefinition/coverage-deductible"
	extUrlUnitPrice          = "http://caregate.example.org/fhir/StructureDefinition/medication-unit-price"
	extUrlDiscountPercentage = "http://caregate.example.org/fhir/StructureDefinition/charge-item-percentage"
	extUrlCategory           = "http://caregate.example.org/fhir/StructureDefinition/charge-item-category"
)

// baseRecord returns the record a write starts from. Updates start from a
// clone of the stored record so fields the view model does not own survive;
// creates start from an empty record of the right type.
func baseRecord(existing *fhir_dto.Resource, resourceType string) *fhir_dto.Resource {
	if existing != nil {
		return existing.Clone()
	}
	return fhir_dto.NewResource(resourceType)
}

func conceptDisplay(r *fhir_dto.Resource, key, fallback string) string {
	var concept fhir_dto.CodeableConcept
	if !r.Decode(key, &concept) {
		return fallback
	}
	return conceptText(concept, fallback)
}

// conceptText prefers the human-entered text, then the first coded display.
func conceptText(concept fhir_dto.CodeableConcept, fallback string) string {
	if concept.Text != "" {
		return concept.Text
	}
	for _, coding := range concept.Coding {
		if coding.Display != "" {
			return coding.Display
		}
	}
	return fallback
}

func referenceDisplay(r *fhir_dto.Resource, key, fallback string) string {
	var ref fhir_dto.Reference
	if !r.Decode(key, &ref) || ref.Display == "" {
		return fallback
	}
	return ref.Display
}

// setReferenceDisplay rewrites only the display of a reference field,
// keeping the reference target intact. A blank display leaves the field
// untouched.
func setReferenceDisplay(r *fhir_dto.Resource, key, display string) {
	if display == "" {
		return
	}
	var ref fhir_dto.Reference
	r.Decode(key, &ref)
	ref.Display = display
	r.Set(key, ref)
}

func stringField(r *fhir_dto.Resource, key string) string {
	value, _ := r.String(key)
	return value
}

func setStringField(r *fhir_dto.Resource, key, value string) {
	if value == "" {
		return
	}
	r.Set(key, value)
}

// writeDecimalExtension is replace-or-append keyed by token. An existing
// entry keeps its stored url; a fresh entry gets the canonical one.
func writeDecimalExtension(r *fhir_dto.Resource, token, canonicalUrl string, value float64) {
	url := canonicalUrl
	if existing, ok := fhir_dto.FindExtension(r, token); ok {
		url = existing.Url
	}
	fhir_dto.WriteExtension(r, token, fhir_dto.Extension{Url: url, ValueDecimal: fhir_dto.Float64Ptr(value)})
}

func writeCodeExtension(r *fhir_dto.Resource, token, canonicalUrl, code string) {
	if code == "" {
		return
	}
	url := canonicalUrl
	if existing, ok := fhir_dto.FindExtension(r, token); ok {
		url = existing.Url
	}
	fhir_dto.WriteExtension(r, token, fhir_dto.Extension{Url: url, ValueCode: code})
}

func unknownOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
