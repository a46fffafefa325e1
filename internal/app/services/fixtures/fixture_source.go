package fixtures

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fixtureSource is an in-memory DataSource used when a dataset runs in
// fixture mode. Mutations are fully supported but only against the seeded
// store, so demos and local development never touch the live store.
type fixtureSource struct {
	mu    sync.RWMutex
	store map[string][]*fhir_dto.Resource
	Log   *zap.Logger
}

func NewFixtureSource(logger *zap.Logger) contracts.DataSource {
	source := &fixtureSource{
		store: make(map[string][]*fhir_dto.Resource),
		Log:   logger,
	}
	source.seed()
	return source
}

func (s *fixtureSource) Search(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := len(s.store[resourceType])
	if raw := params.Get(constvars.SearchParamCount); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}

	bundle := &fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         "searchset",
		Entry:        []fhir_dto.BundleEntry{},
	}
	for _, resource := range s.store[resourceType] {
		if len(bundle.Entry) >= limit {
			break
		}
		if !matches(resource, params) {
			continue
		}
		raw, err := json.Marshal(resource)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: raw})
	}
	bundle.Total = len(bundle.Entry)
	return bundle, nil
}

func (s *fixtureSource) Create(ctx context.Context, resourceType string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	stored := resource.Clone()
	if stored.ID() == "" {
		stored.SetID(uuid.NewString())
	}

	s.mu.Lock()
	s.store[resourceType] = append(s.store[resourceType], stored)
	s.mu.Unlock()

	s.Log.Info("fixtureSource.Create stored resource",
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, stored.ID()),
	)
	return stored.Clone(), nil
}

func (s *fixtureSource) Update(ctx context.Context, resourceType, id string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.store[resourceType] {
		if existing.ID() == id {
			stored := resource.Clone()
			stored.SetID(id)
			s.store[resourceType][i] = stored
			return stored.Clone(), nil
		}
	}
	return nil, exceptions.ErrResourceNotFound(resourceType, id)
}

func (s *fixtureSource) Delete(ctx context.Context, resourceType, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resources := s.store[resourceType]
	for i, existing := range resources {
		if existing.ID() == id {
			s.store[resourceType] = append(resources[:i:i], resources[i+1:]...)
			return nil
		}
	}
	return exceptions.ErrResourceNotFound(resourceType, id)
}

// matches applies the filter params as case-insensitive substring checks
// against the serialized resource. Control params (_sort, _count, _include)
// never filter.
func matches(resource *fhir_dto.Resource, params url.Values) bool {
	raw, err := json.Marshal(resource)
	if err != nil {
		return false
	}
	haystack := strings.ToLower(string(raw))

	for key, values := range params {
		if strings.HasPrefix(key, "_") {
			continue
		}
		for _, value := range values {
			if value == "" {
				continue
			}
			if !strings.Contains(haystack, strings.ToLower(value)) {
				return false
			}
		}
	}
	return true
}

func (s *fixtureSource) seed() {
	for _, raw := range seedResources {
		resource := new(fhir_dto.Resource)
		if err := json.Unmarshal([]byte(raw), resource); err != nil {
			log.Fatalf("invalid fixture resource: %v", err)
		}
		s.store[resource.ResourceType()] = append(s.store[resource.ResourceType()], resource)
	}
}
