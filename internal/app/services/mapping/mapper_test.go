package mapping

import (
	"encoding/json"
	"testing"

	"caregate-service/internal/app/config"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/viewmodels"
	"caregate-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() config.ViewModelDefaults {
	return config.ViewModelDefaults{
		UnknownDisplay:     constvars.ViewModelUnknownDisplay,
		DiscountPercentage: 10,
		Copay:              0,
		Deductible:         0,
		Currency:           "USD",
	}
}

func mustResource(t *testing.T, raw string) *fhir_dto.Resource {
	t.Helper()
	resource := new(fhir_dto.Resource)
	require.NoError(t, json.Unmarshal([]byte(raw), resource))
	return resource
}

func TestRegistry_LooksUpMapperByResourceType(t *testing.T) {
	registry := NewRegistry(testDefaults())

	mapper, err := registry.Mapper(constvars.ResourceChargeItem)
	require.NoError(t, err)
	assert.Equal(t, constvars.ResourceChargeItem, mapper.ResourceType())

	_, err = registry.Mapper("Invoice")
	assert.Error(t, err)
}

func TestProviderMapper_TotalProjection(t *testing.T) {
	mapper := NewProviderMapper(testDefaults())

	full := mustResource(t, `{
		"resourceType": "Practitioner",
		"id": "prac-1",
		"active": true,
		"gender": "female",
		"name": [{"family": "Hart", "given": ["Amelia"], "prefix": ["Dr."]}],
		"telecom": [
			{"system": "phone", "value": "+1-555-0101"},
			{"system": "email", "value": "amelia@example.org"}
		],
		"qualification": [{"code": {"coding": [{"display": "Psychiatry"}]}}]
	}`)
	vm := mapper.ToViewModel(full).(*viewmodels.Provider)
	assert.Equal(t, "Dr. Amelia Hart", vm.FullName)
	assert.Equal(t, "Psychiatry", vm.Specialty)
	assert.Equal(t, "amelia@example.org", vm.Email)
	assert.Equal(t, "+1-555-0101", vm.Phone)
	assert.True(t, vm.Active)

	empty := mustResource(t, `{"resourceType": "Practitioner", "id": "prac-2"}`)
	vm = mapper.ToViewModel(empty).(*viewmodels.Provider)
	assert.Equal(t, "Unknown", vm.FullName)
	assert.Equal(t, "Unknown", vm.Specialty)
	assert.Empty(t, vm.Email)
	assert.False(t, vm.Active)
}

func TestProviderMapper_NameTextBeatsParts(t *testing.T) {
	mapper := NewProviderMapper(testDefaults())

	resource := mustResource(t, `{
		"resourceType": "Practitioner",
		"name": [{"text": "Amelia Hart, MD", "family": "Hart", "given": ["Amelia"]}]
	}`)
	vm := mapper.ToViewModel(resource).(*viewmodels.Provider)
	assert.Equal(t, "Amelia Hart, MD", vm.FullName)
}

func TestCoverageMapper_ExtensionDefaults(t *testing.T) {
	mapper := NewCoverageMapper(testDefaults())

	resource := mustResource(t, `{
		"resourceType": "Coverage",
		"id": "cov-1",
		"status": "active",
		"extension": [
			{"url": "http://example.org/fhir/coverage-copay", "valueDecimal": 25}
		]
	}`)
	vm := mapper.ToViewModel(resource).(*viewmodels.Coverage)
	assert.Equal(t, float64(25), vm.Copay)
	assert.Equal(t, float64(0), vm.Deductible)
}

func TestChargeItemMapper_MissingDiscountReadsConfiguredDefault(t *testing.T) {
	mapper := NewChargeItemMapper(testDefaults())

	resource := mustResource(t, `{"resourceType": "ChargeItem", "id": "ci-1", "status": "billable"}`)
	vm := mapper.ToViewModel(resource).(*viewmodels.ChargeItem)
	assert.Equal(t, float64(10), vm.DiscountPercentage)
	assert.Equal(t, "USD", vm.Currency)
}

func TestChargeItemMapper_RoundTripPreservesUnknownFields(t *testing.T) {
	mapper := NewChargeItemMapper(testDefaults())

	resource := mustResource(t, `{
		"resourceType": "ChargeItem",
		"id": "ci-1",
		"status": "billable",
		"meta": {"versionId": "7"},
		"enterer": {"reference": "Practitioner/prac-1"},
		"extension": [
			{"url": "http://example.org/fhir/charge-item-percentage", "valueDecimal": 5},
			{"url": "http://example.org/fhir/unrelated", "valueString": "keep-me"}
		]
	}`)

	vm := mapper.ToViewModel(resource).(*viewmodels.ChargeItem)
	vm.DiscountPercentage = 15
	vm.Status = "billed"

	merged, err := mapper.ToRaw(vm, vm.Source)
	require.NoError(t, err)

	status, _ := merged.String("status")
	assert.Equal(t, "billed", status)
	assert.True(t, merged.Has("meta"))
	assert.True(t, merged.Has("enterer"))

	assert.Equal(t, float64(15), fhir_dto.ReadExtensionDecimal(merged, constvars.ExtTokenPercentage, 0))

	extensions := merged.Extensions()
	matches := 0
	for _, ext := range extensions {
		if ext.Url == "http://example.org/fhir/charge-item-percentage" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
	assert.Equal(t, "keep-me", fhir_dto.ReadExtensionString(merged, "unrelated", ""))
}

func TestChargeItemMapper_CreateWritesCanonicalExtensionUrl(t *testing.T) {
	mapper := NewChargeItemMapper(testDefaults())

	vm := &viewmodels.ChargeItem{Status: "planned", DiscountPercentage: 20, Category: "session"}
	raw, err := mapper.ToRaw(vm, nil)
	require.NoError(t, err)

	ext, ok := fhir_dto.FindExtension(raw, constvars.ExtTokenPercentage)
	require.True(t, ok)
	assert.Equal(t, extUrlDiscountPercentage, ext.Url)
	assert.Equal(t, "session", fhir_dto.ReadExtensionCode(raw, constvars.ExtTokenCategory, ""))
}

func TestDocumentMapper_AttachmentProjectionAndMerge(t *testing.T) {
	mapper := NewDocumentMapper(testDefaults())

	resource := mustResource(t, `{
		"resourceType": "DocumentReference",
		"id": "doc-1",
		"status": "current",
		"content": [{"attachment": {"contentType": "application/pdf", "url": "documents/doc-1.pdf", "title": "intake.pdf", "size": 2048}}]
	}`)
	vm := mapper.ToViewModel(resource).(*viewmodels.Document)
	assert.Equal(t, "intake.pdf", vm.Title)
	assert.Equal(t, int64(2048), vm.SizeBytes)

	vm.Title = "intake-signed.pdf"
	merged, err := mapper.ToRaw(vm, vm.Source)
	require.NoError(t, err)

	var content []fhir_dto.DocumentContent
	require.True(t, merged.Decode("content", &content))
	require.Len(t, content, 1)
	assert.Equal(t, "intake-signed.pdf", content[0].Attachment.Title)
	assert.Equal(t, "documents/doc-1.pdf", content[0].Attachment.Url)
}

func TestCodeSystemMapper_DeclaredCountWins(t *testing.T) {
	mapper := NewCodeSystemMapper(testDefaults())

	withCount := mustResource(t, `{"resourceType": "CodeSystem", "count": 12, "concept": [{"code": "a"}]}`)
	vm := mapper.ToViewModel(withCount).(*viewmodels.CodeSystem)
	assert.Equal(t, 12, vm.ConceptCount)

	withoutCount := mustResource(t, `{"resourceType": "CodeSystem", "concept": [{"code": "a"}, {"code": "b"}]}`)
	vm = mapper.ToViewModel(withoutCount).(*viewmodels.CodeSystem)
	assert.Equal(t, 2, vm.ConceptCount)
}

func TestTaskMapper_ReferenceDisplayUpdateKeepsTarget(t *testing.T) {
	mapper := NewTaskMapper(testDefaults())

	resource := mustResource(t, `{
		"resourceType": "Task",
		"id": "task-1",
		"status": "requested",
		"owner": {"reference": "Practitioner/prac-1", "display": "Dr. Hart"}
	}`)
	vm := mapper.ToViewModel(resource).(*viewmodels.Task)
	vm.OwnerName = "Dr. Amelia Hart"

	merged, err := mapper.ToRaw(vm, vm.Source)
	require.NoError(t, err)

	var owner fhir_dto.Reference
	require.True(t, merged.Decode("owner", &owner))
	assert.Equal(t, "Practitioner/prac-1", owner.Reference)
	assert.Equal(t, "Dr. Amelia Hart", owner.Display)
}

func TestAuditEventMapper_Projection(t *testing.T) {
	mapper := NewAuditEventMapper(testDefaults())

	resource := mustResource(t, `{
		"resourceType": "AuditEvent",
		"id": "audit-1",
		"action": "U",
		"outcome": "0",
		"recorded": "2026-08-21T14:05:12Z",
		"type": {"display": "Restful Operation"},
		"subtype": [{"display": "update"}],
		"agent": [{"who": {"display": "admin@example.org"}}],
		"source": {"site": "admin-console"}
	}`)
	vm := mapper.ToViewModel(resource).(*viewmodels.AuditEvent)
	assert.Equal(t, "U", vm.Action)
	assert.Equal(t, "Restful Operation", vm.TypeDisplay)
	assert.Equal(t, "update", vm.SubtypeDisplay)
	assert.Equal(t, "admin@example.org", vm.AgentName)
	assert.Equal(t, "admin-console", vm.SourceSite)
}

func TestTaskMapper_SparseRecordDefaults(t *testing.T) {
	mapper := NewTaskMapper(testDefaults())

	vm := mapper.ToViewModel(mustResource(t, `{"resourceType": "Task", "id": "task-9"}`)).(*viewmodels.Task)
	assert.Equal(t, "task-9", vm.ID)
	assert.Empty(t, vm.Status)
	assert.Empty(t, vm.Priority)
	assert.Equal(t, "Unknown", vm.Description)
	assert.Equal(t, "Unknown", vm.SubjectName)
	assert.Equal(t, "Unknown", vm.OwnerName)
	assert.Empty(t, vm.AuthoredOn)
	assert.Empty(t, vm.LastModified)
}

func TestMedicationMapper_SparseRecordDefaults(t *testing.T) {
	mapper := NewMedicationMapper(testDefaults())

	vm := mapper.ToViewModel(mustResource(t, `{"resourceType": "Medication", "id": "med-9"}`)).(*viewmodels.Medication)
	assert.Equal(t, "med-9", vm.ID)
	assert.Equal(t, "Unknown", vm.Name)
	assert.Empty(t, vm.Status)
	assert.Equal(t, "Unknown", vm.Manufacturer)
	assert.Equal(t, "Unknown", vm.Form)
	assert.Equal(t, float64(0), vm.UnitPrice)
}

func TestDocumentMapper_SparseRecordDefaults(t *testing.T) {
	mapper := NewDocumentMapper(testDefaults())

	vm := mapper.ToViewModel(mustResource(t, `{"resourceType": "DocumentReference", "id": "doc-9"}`)).(*viewmodels.Document)
	assert.Equal(t, "doc-9", vm.ID)
	assert.Equal(t, "Unknown", vm.Title)
	assert.Empty(t, vm.Status)
	assert.Equal(t, "Unknown", vm.TypeDisplay)
	assert.Equal(t, "Unknown", vm.SubjectName)
	assert.Empty(t, vm.Date)
	assert.Empty(t, vm.ContentType)
	assert.Empty(t, vm.AttachmentURL)
	assert.Equal(t, int64(0), vm.SizeBytes)
}

func TestCodeSystemMapper_SparseRecordDefaults(t *testing.T) {
	mapper := NewCodeSystemMapper(testDefaults())

	vm := mapper.ToViewModel(mustResource(t, `{"resourceType": "CodeSystem", "id": "cs-9"}`)).(*viewmodels.CodeSystem)
	assert.Equal(t, "cs-9", vm.ID)
	assert.Equal(t, "Unknown", vm.Name)
	assert.Empty(t, vm.Title)
	assert.Empty(t, vm.Status)
	assert.Empty(t, vm.URL)
	assert.Empty(t, vm.Version)
	assert.Empty(t, vm.Content)
	assert.Equal(t, 0, vm.ConceptCount)
	assert.Empty(t, vm.Description)
}

func TestAuditEventMapper_SparseRecordDefaults(t *testing.T) {
	mapper := NewAuditEventMapper(testDefaults())

	vm := mapper.ToViewModel(mustResource(t, `{"resourceType": "AuditEvent", "id": "audit-9"}`)).(*viewmodels.AuditEvent)
	assert.Equal(t, "audit-9", vm.ID)
	assert.Empty(t, vm.Action)
	assert.Empty(t, vm.Outcome)
	assert.Empty(t, vm.Recorded)
	assert.Equal(t, "Unknown", vm.TypeDisplay)
	assert.Empty(t, vm.SubtypeDisplay)
	assert.Equal(t, "Unknown", vm.AgentName)
	assert.Empty(t, vm.SourceSite)
}

func TestMapper_WrongViewModelTypeErrors(t *testing.T) {
	mapper := NewTaskMapper(testDefaults())

	_, err := mapper.ToRaw(&viewmodels.Provider{}, nil)
	assert.Error(t, err)
}

func TestMapper_DecodeViewModelRejectsMalformedPayload(t *testing.T) {
	mapper := NewMedicationMapper(testDefaults())

	_, err := mapper.DecodeViewModel([]byte(`{"name": `))
	assert.Error(t, err)

	decoded, err := mapper.DecodeViewModel([]byte(`{"name": "Sertraline 50mg", "status": "active"}`))
	require.NoError(t, err)
	vm, ok := decoded.(*viewmodels.Medication)
	require.True(t, ok)
	assert.Equal(t, "Sertraline 50mg", vm.Name)
}
