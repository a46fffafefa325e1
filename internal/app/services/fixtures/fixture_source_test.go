package fixtures

import (
	"context"
	"net/url"
	"testing"

	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFixtureSource_SearchReturnsSeededResources(t *testing.T) {
	source := NewFixtureSource(zap.NewNop())

	bundle, err := source.Search(context.Background(), constvars.ResourceTask, url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 2, bundle.Total)

	resources := fhir_dto.UnpackBundle(bundle, constvars.ResourceTask)
	require.Len(t, resources, 2)
	assert.Equal(t, "fixture-task-1", resources[0].ID())
}

func TestFixtureSource_SearchFiltersAndCounts(t *testing.T) {
	source := NewFixtureSource(zap.NewNop())

	params := url.Values{}
	params.Set("status", "completed")
	bundle, err := source.Search(context.Background(), constvars.ResourceTask, params)
	require.NoError(t, err)
	require.Equal(t, 1, bundle.Total)

	params = url.Values{}
	params.Set(constvars.SearchParamCount, "1")
	bundle, err = source.Search(context.Background(), constvars.ResourceTask, params)
	require.NoError(t, err)
	assert.Equal(t, 1, bundle.Total)
}

func TestFixtureSource_CreateAssignsIDAndPersists(t *testing.T) {
	source := NewFixtureSource(zap.NewNop())

	resource := fhir_dto.NewResource(constvars.ResourceMedication)
	created, err := source.Create(context.Background(), constvars.ResourceMedication, resource)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID())

	bundle, err := source.Search(context.Background(), constvars.ResourceMedication, url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 2, bundle.Total)
}

func TestFixtureSource_UpdateMissingResourceIsNotFound(t *testing.T) {
	source := NewFixtureSource(zap.NewNop())

	_, err := source.Update(context.Background(), constvars.ResourceTask, "no-such-id", fhir_dto.NewResource(constvars.ResourceTask))
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
}

func TestFixtureSource_DeleteRemovesResource(t *testing.T) {
	source := NewFixtureSource(zap.NewNop())

	err := source.Delete(context.Background(), constvars.ResourceTask, "fixture-task-1")
	require.NoError(t, err)

	err = source.Delete(context.Background(), constvars.ResourceTask, "fixture-task-1")
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
}

func TestFixtureSource_MutationsDoNotAliasCallerResource(t *testing.T) {
	source := NewFixtureSource(zap.NewNop())

	resource := fhir_dto.NewResource(constvars.ResourceMedication)
	created, err := source.Create(context.Background(), constvars.ResourceMedication, resource)
	require.NoError(t, err)

	resource.Set("status", "inactive")
	_, ok := created.String("status")
	assert.False(t, ok)
}
