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

type documentMapper struct {
	defaults config.ViewModelDefaults
}

func NewDocumentMapper(defaults config.ViewModelDefaults) contracts.ResourceMapper {
	return &documentMapper{defaults: defaults}
}

func (m *documentMapper) ResourceType() string {
	return constvars.ResourceDocumentReference
}

func (m *documentMapper) ToViewModel(raw *fhir_dto.Resource) interface{} {
	vm := &viewmodels.Document{
		Source:      raw,
		ID:          raw.ID(),
		Title:       m.defaults.UnknownDisplay,
		Status:      stringField(raw, constvars.FhirFieldStatus),
		TypeDisplay: conceptDisplay(raw, "type", m.defaults.UnknownDisplay),
		SubjectName: referenceDisplay(raw, "subject", m.defaults.UnknownDisplay),
		Date:        stringField(raw, "date"),
	}

	var content []fhir_dto.DocumentContent
	if raw.Decode("content", &content) && len(content) > 0 {
		attachment := content[0].Attachment
		vm.ContentType = attachment.ContentType
		vm.AttachmentURL = attachment.Url
		vm.SizeBytes = attachment.Size
		if attachment.Title != "" {
			vm.Title = attachment.Title
		}
	}
	if vm.Title == m.defaults.UnknownDisplay {
		vm.Title = unknownOr(stringField(raw, "description"), m.defaults.UnknownDisplay)
	}
	return vm
}

func (m *documentMapper) ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	vm, ok := viewModel.(*viewmodels.Document)
	if !ok {
		return nil, exceptions.ErrViewModelTypeMismatch(viewModel, m.ResourceType())
	}

	raw := baseRecord(existing, m.ResourceType())
	setStringField(raw, constvars.FhirFieldStatus, vm.Status)
	setStringField(raw, "date", vm.Date)
	if vm.SubjectName != m.defaults.UnknownDisplay {
		setReferenceDisplay(raw, "subject", vm.SubjectName)
	}

	if vm.TypeDisplay != "" && vm.TypeDisplay != m.defaults.UnknownDisplay {
		var concept fhir_dto.CodeableConcept
		raw.Decode("type", &concept)
		concept.Text = vm.TypeDisplay
		raw.Set("type", concept)
	}

	// The attachment block is merged, never rebuilt: the stored url and
	// size come from the upload flow, only the display metadata is editable.
	if vm.Title != "" && vm.Title != m.defaults.UnknownDisplay {
		var content []fhir_dto.DocumentContent
		raw.Decode("content", &content)
		if len(content) == 0 {
			content = []fhir_dto.DocumentContent{{}}
		}
		content[0].Attachment.Title = vm.Title
		if vm.ContentType != "" {
			content[0].Attachment.ContentType = vm.ContentType
		}
		raw.Set("content", content)
	}
	return raw, nil
}

func (m *documentMapper) DecodeViewModel(payload []byte) (interface{}, error) {
	vm := new(viewmodels.Document)
	if err := json.Unmarshal(payload, vm); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return vm, nil
}
