package constvars

// FHIR store search parameter vocabulary.
const (
	SearchParamSort    = "_sort"
	SearchParamCount   = "_count"
	SearchParamInclude = "_include"
	SearchParamStatus  = "status"

	SortDescendingPrefix = "-"
)

// Gateway HTTP query parameters (page-layer surface).
const (
	URLQueryParamSearch   = "search"
	URLQueryParamStatus   = "status"
	URLQueryParamSort     = "sort"
	URLQueryParamPageSize = "page_size"
	URLQueryParamInclude  = "include"
	URLQueryParamLimit    = "limit"
)

const (
	URLParamDataset    = "dataset"
	URLParamResourceID = "resource_id"
)

// DefaultPageSizeCap bounds worst-case search payloads when the caller
// does not ask for a page size.
const DefaultPageSizeCap = 50
