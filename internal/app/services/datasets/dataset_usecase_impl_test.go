package datasets

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"testing"
	"time"

	"caregate-service/internal/app/config"
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/app/services/mapping"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/requests"
	"caregate-service/internal/pkg/dto/viewmodels"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResolver struct {
	source contracts.DataSource
}

func (f *fakeResolver) Resolve(datasetKey string) (string, error) {
	return constvars.DataSourceModeLive, nil
}

func (f *fakeResolver) Source(datasetKey string) (contracts.DataSource, error) {
	return f.source, nil
}

type fakeRedis struct {
	mu      sync.Mutex
	values  map[string]string
	deletes []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key], nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeRedis) DeleteByPattern(ctx context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = map[string]string{}
	f.deletes = append(f.deletes, pattern)
	return nil
}

type fakeStorage struct{}

func (f *fakeStorage) PresignedDownloadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return "https://storage.example.org/download/" + objectName, nil
}

func (f *fakeStorage) PresignedUploadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return "https://storage.example.org/upload/" + objectName, nil
}

type fakeAudit struct {
	mu      sync.Mutex
	records []contracts.MutationRecord
}

func (f *fakeAudit) RecordMutation(ctx context.Context, record *contracts.MutationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeAudit) FindByDataset(ctx context.Context, dataset string, limit int64) ([]contracts.MutationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records, nil
}

func bundleOf(t *testing.T, resources ...*fhir_dto.Resource) *fhir_dto.Bundle {
	t.Helper()
	bundle := &fhir_dto.Bundle{ResourceType: constvars.ResourceBundle, Type: "searchset", Total: len(resources)}
	for _, resource := range resources {
		raw, err := json.Marshal(resource)
		require.NoError(t, err)
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: raw})
	}
	return bundle
}

func newTestUsecase(source contracts.DataSource, redisRepo contracts.RedisRepository, audit contracts.AuditTrailRepository) contracts.DatasetUsecase {
	registry := mapping.NewRegistry(config.ViewModelDefaults{
		UnknownDisplay: constvars.ViewModelUnknownDisplay,
		Currency:       "USD",
	})
	return NewDatasetUsecase(&fakeResolver{source: source}, registry, redisRepo, audit, nil, &fakeStorage{}, zap.NewNop())
}

func TestDatasetUsecase_ListMapsToViewModels(t *testing.T) {
	source := &fakeSource{
		searchFn: func(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
			return bundleOf(t, taskResource(t, "1", "requested"), taskResource(t, "2", "completed")), nil
		},
	}
	usecase := newTestUsecase(source, nil, nil)

	viewModels, stale, err := usecase.List(context.Background(), constvars.DatasetTasks, requests.ListIntent{})
	require.NoError(t, err)
	assert.False(t, stale)
	require.Len(t, viewModels, 2)

	task, ok := viewModels[0].(*viewmodels.Task)
	require.True(t, ok)
	assert.Equal(t, "1", task.ID)
	assert.Equal(t, "requested", task.Status)
}

func TestDatasetUsecase_ListUnknownDatasetErrors(t *testing.T) {
	usecase := newTestUsecase(&fakeSource{}, nil, nil)

	_, _, err := usecase.List(context.Background(), "invoices", requests.ListIntent{})
	assert.Error(t, err)
}

func TestDatasetUsecase_StaleSearchIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	firstStarted := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	source := &fakeSource{
		searchFn: func(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
			mu.Lock()
			calls++
			call := calls
			mu.Unlock()
			if call == 1 {
				close(firstStarted)
				<-release
				return bundleOf(t, taskResource(t, "old", "requested")), nil
			}
			return bundleOf(t, taskResource(t, "new", "requested")), nil
		},
	}
	usecase := newTestUsecase(source, nil, nil)

	type listResult struct {
		viewModels []interface{}
		stale      bool
		err        error
	}
	firstDone := make(chan listResult)
	go func() {
		viewModels, stale, err := usecase.List(context.Background(), constvars.DatasetTasks, requests.ListIntent{})
		firstDone <- listResult{viewModels, stale, err}
	}()

	<-firstStarted
	viewModels, stale, err := usecase.List(context.Background(), constvars.DatasetTasks, requests.ListIntent{})
	require.NoError(t, err)
	assert.False(t, stale)
	require.Len(t, viewModels, 1)
	assert.Equal(t, "new", viewModels[0].(*viewmodels.Task).ID)

	close(release)
	first := <-firstDone
	require.NoError(t, first.err)
	assert.True(t, first.stale)
	// The superseded search serves the newer working set, not its own.
	require.Len(t, first.viewModels, 1)
	assert.Equal(t, "new", first.viewModels[0].(*viewmodels.Task).ID)
}

func TestDatasetUsecase_CreateValidatesPayload(t *testing.T) {
	usecase := newTestUsecase(&fakeSource{}, nil, nil)

	_, err := usecase.Create(context.Background(), constvars.DatasetTasks, []byte(`{"status": "bogus"}`))
	assert.Error(t, err)
}

func TestDatasetUsecase_CreateReturnsViewModelAndAudits(t *testing.T) {
	audit := &fakeAudit{}
	usecase := newTestUsecase(&fakeSource{}, nil, audit)

	created, err := usecase.Create(context.Background(), constvars.DatasetTasks, []byte(`{"status": "requested", "description": "call patient"}`))
	require.NoError(t, err)

	task, ok := created.(*viewmodels.Task)
	require.True(t, ok)
	assert.Equal(t, "generated-id", task.ID)
	assert.Equal(t, "call patient", task.Description)

	require.Len(t, audit.records, 1)
	assert.Equal(t, contracts.MutationActionCreate, audit.records[0].Action)
	assert.Equal(t, contracts.MutationOutcomeSuccess, audit.records[0].Outcome)
	assert.Equal(t, "generated-id", audit.records[0].ResourceID)
}

func TestDatasetUsecase_UpdateUnheldRecordMergesStoredVersion(t *testing.T) {
	existing := new(fhir_dto.Resource)
	require.NoError(t, json.Unmarshal([]byte(`{
		"resourceType": "Task",
		"id": "task-1",
		"status": "requested",
		"description": "call patient",
		"meta": {"versionId": "4"},
		"for": {"reference": "Patient/pat-9", "display": "Robin Mays"}
	}`), existing))

	var sent *fhir_dto.Resource
	source := &fakeSource{
		searchFn: func(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
			if params.Get("_id") == "task-1" {
				return bundleOf(t, existing), nil
			}
			return bundleOf(t), nil
		},
		updateFn: func(ctx context.Context, resourceType, id string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
			sent = resource.Clone()
			return resource.Clone(), nil
		},
	}
	usecase := newTestUsecase(source, nil, nil)

	// No list ran before this update, so the record is not held locally.
	_, err := usecase.Update(context.Background(), constvars.DatasetTasks, "task-1", []byte(`{"status": "completed", "description": "call patient"}`))
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.True(t, sent.Has("meta"))
	assert.True(t, sent.Has("for"))
	var subject fhir_dto.Reference
	require.True(t, sent.Decode("for", &subject))
	assert.Equal(t, "Patient/pat-9", subject.Reference)
	status, _ := sent.String("status")
	assert.Equal(t, "completed", status)
}

func TestDatasetUsecase_UpdateMissingRecordErrorsNotFound(t *testing.T) {
	usecase := newTestUsecase(&fakeSource{}, nil, nil)

	_, err := usecase.Update(context.Background(), constvars.DatasetTasks, "ghost", []byte(`{"status": "completed"}`))
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
}

func TestDatasetUsecase_AuditTrailReturnsRecordedMutations(t *testing.T) {
	audit := &fakeAudit{}
	usecase := newTestUsecase(&fakeSource{}, nil, audit)

	_, err := usecase.Create(context.Background(), constvars.DatasetTasks, []byte(`{"status": "requested", "description": "call patient"}`))
	require.NoError(t, err)

	records, err := usecase.AuditTrail(context.Background(), constvars.DatasetTasks, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, contracts.MutationActionCreate, records[0].Action)
	assert.Equal(t, "generated-id", records[0].ResourceID)

	_, err = usecase.AuditTrail(context.Background(), "invoices", 0)
	assert.Error(t, err)
}

func TestDatasetUsecase_CodeSystemListUsesCache(t *testing.T) {
	searches := 0
	source := &fakeSource{
		searchFn: func(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
			searches++
			resource := new(fhir_dto.Resource)
			require.NoError(t, json.Unmarshal([]byte(`{"resourceType": "CodeSystem", "id": "cs-1", "name": "SessionTypes", "status": "active"}`), resource))
			return bundleOf(t, resource), nil
		},
	}
	redisRepo := newFakeRedis()
	usecase := newTestUsecase(source, redisRepo, nil)

	_, _, err := usecase.List(context.Background(), constvars.DatasetCodeSystems, requests.ListIntent{})
	require.NoError(t, err)
	assert.Equal(t, 1, searches)

	_, _, err = usecase.List(context.Background(), constvars.DatasetCodeSystems, requests.ListIntent{})
	require.NoError(t, err)
	assert.Equal(t, 1, searches)

	// Mutations invalidate the cached pages.
	err = usecase.Delete(context.Background(), constvars.DatasetCodeSystems, "cs-1")
	require.NoError(t, err)
	assert.NotEmpty(t, redisRepo.deletes)

	_, _, err = usecase.List(context.Background(), constvars.DatasetCodeSystems, requests.ListIntent{})
	require.NoError(t, err)
	assert.Equal(t, 2, searches)
}

func TestDatasetUsecase_AttachmentDownloadURL(t *testing.T) {
	document := new(fhir_dto.Resource)
	require.NoError(t, json.Unmarshal([]byte(`{
		"resourceType": "DocumentReference",
		"id": "doc-1",
		"status": "current",
		"content": [{"attachment": {"url": "documents/doc-1.pdf", "contentType": "application/pdf"}}]
	}`), document))

	source := &fakeSource{
		searchFn: func(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
			if params.Get("_id") == "doc-1" {
				return bundleOf(t, document), nil
			}
			return bundleOf(t), nil
		},
	}
	usecase := newTestUsecase(source, nil, nil)

	attachment, err := usecase.AttachmentDownloadURL(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", attachment.DocumentID)
	assert.Equal(t, "https://storage.example.org/download/documents/doc-1.pdf", attachment.URL)
	assert.Equal(t, 900, attachment.ExpiresIn)
}

func TestDatasetUsecase_AttachmentDownloadURLMissingAttachment(t *testing.T) {
	document := new(fhir_dto.Resource)
	require.NoError(t, json.Unmarshal([]byte(`{"resourceType": "DocumentReference", "id": "doc-2", "status": "current"}`), document))

	source := &fakeSource{
		searchFn: func(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
			return bundleOf(t, document), nil
		},
	}
	usecase := newTestUsecase(source, nil, nil)

	_, err := usecase.AttachmentDownloadURL(context.Background(), "doc-2")
	assert.Error(t, err)
}
