package fhirstore

import (
	"net/url"
	"strconv"
	"strings"

	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/requests"
)

// searchFields maps each resource type to the store parameter its free-text
// search goes against. Resource types differ in what is searchable; this
// table is static configuration, not something inferred from the schema.
var searchFields = map[string]string{
	constvars.ResourcePractitioner:      "name",
	constvars.ResourceCoverage:          "subscriber-id",
	constvars.ResourceTask:              "description",
	constvars.ResourceMedication:        "code",
	constvars.ResourceDocumentReference: "description",
	constvars.ResourceChargeItem:        "code",
	constvars.ResourceCodeSystem:        "name",
	constvars.ResourceAuditEvent:        "type",
}

// statusCapable lists the resource types whose store representation carries
// a searchable status parameter. AuditEvent has none; a status filter on it
// is dropped rather than sent as an unknown parameter.
var statusCapable = map[string]bool{
	constvars.ResourcePractitioner:      false,
	constvars.ResourceCoverage:          true,
	constvars.ResourceTask:              true,
	constvars.ResourceMedication:        true,
	constvars.ResourceDocumentReference: true,
	constvars.ResourceChargeItem:        true,
	constvars.ResourceCodeSystem:        true,
	constvars.ResourceAuditEvent:        false,
}

// BuildSearchParams translates a declarative list intent into the store's
// query parameter vocabulary for the given resource type.
//
// Sort keys pass through with the store's leading "-" descending
// convention. Page size is always present and capped so an unset intent
// cannot request an unbounded page. Include keys pass through verbatim; the
// store silently ignores invalid ones.
func BuildSearchParams(resourceType string, intent requests.ListIntent) url.Values {
	params := url.Values{}

	if text := strings.TrimSpace(intent.SearchText); text != "" {
		if field, ok := searchFields[resourceType]; ok {
			params.Set(field, text)
		}
	}

	if intent.StatusFilter != "" && statusCapable[resourceType] {
		params.Set(constvars.SearchParamStatus, intent.StatusFilter)
	}

	// A bare descending prefix with no field is dropped, not sent.
	if sort := intent.Sort; strings.TrimPrefix(sort, constvars.SortDescendingPrefix) != "" {
		params.Set(constvars.SearchParamSort, sort)
	}

	pageSize := intent.PageSize
	if pageSize <= 0 || pageSize > constvars.DefaultPageSizeCap {
		pageSize = constvars.DefaultPageSizeCap
	}
	params.Set(constvars.SearchParamCount, strconv.Itoa(pageSize))

	for _, include := range intent.Include {
		if include != "" {
			params.Add(constvars.SearchParamInclude, include)
		}
	}

	return params
}
