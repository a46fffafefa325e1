package contracts

import (
	"caregate-service/internal/pkg/fhir_dto"
)

// ResourceMapper projects one resource type into its flat view model and
// back. ToRaw merges the view model into the existing stored record (nil
// for creates) so fields the view model does not own are never dropped.
type ResourceMapper interface {
	ResourceType() string
	ToViewModel(raw *fhir_dto.Resource) interface{}
	ToRaw(viewModel interface{}, existing *fhir_dto.Resource) (*fhir_dto.Resource, error)
	DecodeViewModel(payload []byte) (interface{}, error)
}
