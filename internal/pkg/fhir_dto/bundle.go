package fhir_dto

import "encoding/json"

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type,omitempty"`
	Total        int           `json:"total,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	FullUrl  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}

// UnpackBundle converts a search bundle into the ordered list of resources
// of expectedType. Included secondary resources of other types are filtered
// out, a missing entry array means zero results, and partial entries
// (no resource, unparseable resource) are skipped rather than failing the
// whole page.
func UnpackBundle(bundle *Bundle, expectedType string) []*Resource {
	if bundle == nil || len(bundle.Entry) == 0 {
		return []*Resource{}
	}

	resources := make([]*Resource, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		if len(entry.Resource) == 0 {
			continue
		}
		resource := new(Resource)
		if err := json.Unmarshal(entry.Resource, resource); err != nil {
			continue
		}
		if resource.ResourceType() != expectedType {
			continue
		}
		resources = append(resources, resource)
	}
	return resources
}
