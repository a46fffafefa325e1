package requests

// ListIntent is the resource-type-agnostic filter a page declares. The
// query builder decides which parts a given resource type supports.
type ListIntent struct {
	SearchText   string
	StatusFilter string
	Sort         string
	PageSize     int
	Include      []string
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Status string   `json:"status" validate:"required"`
}
