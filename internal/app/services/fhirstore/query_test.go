package fhirstore

import (
	"testing"

	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchParams_SearchTextUsesPerTypeField(t *testing.T) {
	params := BuildSearchParams(constvars.ResourcePractitioner, requests.ListIntent{SearchText: "  smith "})
	assert.Equal(t, "smith", params.Get("name"))

	params = BuildSearchParams(constvars.ResourceCoverage, requests.ListIntent{SearchText: "SUB-42"})
	assert.Equal(t, "SUB-42", params.Get("subscriber-id"))
	assert.Empty(t, params.Get("name"))
}

func TestBuildSearchParams_BlankSearchTextOmitted(t *testing.T) {
	params := BuildSearchParams(constvars.ResourceTask, requests.ListIntent{SearchText: "   "})
	assert.Empty(t, params.Get("description"))
}

func TestBuildSearchParams_StatusDroppedForIncapableTypes(t *testing.T) {
	params := BuildSearchParams(constvars.ResourceAuditEvent, requests.ListIntent{StatusFilter: "active"})
	assert.Empty(t, params.Get(constvars.SearchParamStatus))

	params = BuildSearchParams(constvars.ResourceMedication, requests.ListIntent{StatusFilter: "active"})
	assert.Equal(t, "active", params.Get(constvars.SearchParamStatus))
}

func TestBuildSearchParams_SortPassesThroughWithDescendingPrefix(t *testing.T) {
	params := BuildSearchParams(constvars.ResourceTask, requests.ListIntent{Sort: "-authored-on"})
	assert.Equal(t, "-authored-on", params.Get(constvars.SearchParamSort))

	params = BuildSearchParams(constvars.ResourceTask, requests.ListIntent{Sort: constvars.SortDescendingPrefix})
	assert.Empty(t, params.Get(constvars.SearchParamSort))
}

func TestBuildSearchParams_PageSizeAlwaysSetAndCapped(t *testing.T) {
	params := BuildSearchParams(constvars.ResourceTask, requests.ListIntent{})
	assert.Equal(t, "50", params.Get(constvars.SearchParamCount))

	params = BuildSearchParams(constvars.ResourceTask, requests.ListIntent{PageSize: 500})
	assert.Equal(t, "50", params.Get(constvars.SearchParamCount))

	params = BuildSearchParams(constvars.ResourceTask, requests.ListIntent{PageSize: 20})
	assert.Equal(t, "20", params.Get(constvars.SearchParamCount))
}

func TestBuildSearchParams_IncludePassesThroughVerbatim(t *testing.T) {
	params := BuildSearchParams(constvars.ResourceTask, requests.ListIntent{
		Include: []string{"Task:owner", "", "Task:no-such-key"},
	})
	assert.Equal(t, []string{"Task:owner", "Task:no-such-key"}, params[constvars.SearchParamInclude])
}
