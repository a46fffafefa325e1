package modes

import (
	"context"
	"net/url"
	"testing"

	"caregate-service/internal/app/config"
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	name string
}

func (s *stubSource) Search(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
	return &fhir_dto.Bundle{ResourceType: constvars.ResourceBundle}, nil
}

func (s *stubSource) Create(ctx context.Context, resourceType string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	return resource, nil
}

func (s *stubSource) Update(ctx context.Context, resourceType, id string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	return resource, nil
}

func (s *stubSource) Delete(ctx context.Context, resourceType, id string) error {
	return nil
}

func newTestResolver(modes map[string]string) (contracts.SourceResolver, *stubSource, *stubSource) {
	live := &stubSource{name: "live"}
	fixture := &stubSource{name: "fixture"}
	settings := &config.GatewaySettings{DatasetModes: modes}
	return NewSourceResolver(settings, live, fixture, zap.NewNop()), live, fixture
}

func TestSourceResolver_DefaultsToLive(t *testing.T) {
	resolver, live, _ := newTestResolver(map[string]string{})

	mode, err := resolver.Resolve(constvars.DatasetTasks)
	require.NoError(t, err)
	assert.Equal(t, constvars.DataSourceModeLive, mode)

	source, err := resolver.Source(constvars.DatasetTasks)
	require.NoError(t, err)
	assert.Same(t, live, source)
}

func TestSourceResolver_FixtureModeRoutesAllOperations(t *testing.T) {
	resolver, _, fixture := newTestResolver(map[string]string{
		constvars.DatasetProviders: constvars.DataSourceModeFixture,
	})

	source, err := resolver.Source(constvars.DatasetProviders)
	require.NoError(t, err)
	assert.Same(t, fixture, source)
}

func TestSourceResolver_UnrecognizedModeFallsBackToLive(t *testing.T) {
	resolver, live, _ := newTestResolver(map[string]string{
		constvars.DatasetTasks: "demo",
	})

	source, err := resolver.Source(constvars.DatasetTasks)
	require.NoError(t, err)
	assert.Same(t, live, source)
}

func TestSourceResolver_UnknownDatasetErrors(t *testing.T) {
	resolver, _, _ := newTestResolver(map[string]string{})

	_, err := resolver.Resolve("invoices")
	require.Error(t, err)

	_, err = resolver.Source("invoices")
	require.Error(t, err)
}
