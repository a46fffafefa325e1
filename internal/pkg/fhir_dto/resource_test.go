package fhir_dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcePreservesUnknownFields(t *testing.T) {
	payload := []byte(`{
		"resourceType": "Coverage",
		"id": "cov-1",
		"status": "active",
		"meta": {"versionId": "7", "source": "#spark"},
		"costToBeneficiary": [{"type": {"text": "copay"}}],
		"contract": [{"reference": "Contract/42"}]
	}`)

	resource := new(Resource)
	require.NoError(t, json.Unmarshal(payload, resource))

	resource.Set("status", "cancelled")

	out, err := json.Marshal(resource)
	require.NoError(t, err)

	var roundTripped map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &roundTripped))

	assert.Equal(t, "cancelled", roundTripped["status"])
	assert.Equal(t, "Coverage", roundTripped["resourceType"])
	assert.Equal(t, "cov-1", roundTripped["id"])
	assert.Contains(t, roundTripped, "costToBeneficiary", "fields the mapper does not own must survive a write")
	assert.Contains(t, roundTripped, "contract")
	meta := roundTripped["meta"].(map[string]interface{})
	assert.Equal(t, "7", meta["versionId"], "server-managed metadata must survive a write")
}

func TestResourceTypeImmutable(t *testing.T) {
	resource := NewResource("Task")
	resource.Set("resourceType", "Patient")
	assert.Equal(t, "Task", resource.ResourceType())

	resource.Delete("resourceType")
	assert.Equal(t, "Task", resource.ResourceType())
}

func TestResourceCloneDoesNotAlias(t *testing.T) {
	resource := NewResource("Task")
	resource.SetID("t-1")
	resource.Set("description", "before")

	clone := resource.Clone()
	resource.Set("description", "after")

	description, ok := clone.String("description")
	require.True(t, ok)
	assert.Equal(t, "before", description)
}

func TestResourceTypedAccessors(t *testing.T) {
	payload := []byte(`{"resourceType":"Practitioner","active":true,"ranking":4.5,"name":[{"text":"Dr. Amy Pond"}]}`)
	resource := new(Resource)
	require.NoError(t, json.Unmarshal(payload, resource))

	active, ok := resource.Bool("active")
	require.True(t, ok)
	assert.True(t, active)

	ranking, ok := resource.Number("ranking")
	require.True(t, ok)
	assert.Equal(t, 4.5, ranking)

	var names []HumanName
	require.True(t, resource.Decode("name", &names))
	require.Len(t, names, 1)
	assert.Equal(t, "Dr. Amy Pond", names[0].Text)

	_, ok = resource.String("active")
	assert.False(t, ok, "wrong value kind reads as absent")
}
