package datasets

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/app/services/fhirstore"
	"caregate-service/internal/app/services/mapping"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/requests"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"
	"caregate-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	codeSystemCacheKeyPrefix = "caregate:code-systems:"
	codeSystemCacheTTL       = 5 * time.Minute
	attachmentURLExpiry      = 15 * time.Minute
	auditTrailLimitCap       = 50
)

type datasetUsecase struct {
	resolver       contracts.SourceResolver
	mappers        *mapping.Registry
	redis          contracts.RedisRepository
	auditTrail     contracts.AuditTrailRepository
	auditPublisher contracts.AuditPublisher
	storage        contracts.ObjectStorage
	Log            *zap.Logger

	mu          sync.Mutex
	dispatchers map[string]*Dispatcher
}

func NewDatasetUsecase(
	resolver contracts.SourceResolver,
	mappers *mapping.Registry,
	redisRepository contracts.RedisRepository,
	auditTrail contracts.AuditTrailRepository,
	auditPublisher contracts.AuditPublisher,
	storage contracts.ObjectStorage,
	logger *zap.Logger,
) contracts.DatasetUsecase {
	return &datasetUsecase{
		resolver:       resolver,
		mappers:        mappers,
		redis:          redisRepository,
		auditTrail:     auditTrail,
		auditPublisher: auditPublisher,
		storage:        storage,
		Log:            logger,
		dispatchers:    map[string]*Dispatcher{},
	}
}

func (u *datasetUsecase) List(ctx context.Context, datasetKey string, intent requests.ListIntent) ([]interface{}, bool, error) {
	resourceType, mapper, dispatcher, err := u.resolve(datasetKey)
	if err != nil {
		return nil, false, err
	}

	sequence := dispatcher.NextSequence()
	params := fhirstore.BuildSearchParams(resourceType, intent)

	bundle, err := u.searchWithCache(ctx, datasetKey, resourceType, dispatcher, params)
	if err != nil {
		return nil, false, err
	}

	resources := fhir_dto.UnpackBundle(bundle, resourceType)
	if !dispatcher.InstallIfCurrent(sequence, resources) {
		u.Log.Warn(constvars.ErrDevStaleSearchDiscarded,
			zap.String(constvars.LoggingDatasetKey, datasetKey),
			zap.Uint64(constvars.LoggingSequenceKey, sequence),
		)
		return u.toViewModels(mapper, dispatcher.Items()), true, nil
	}
	return u.toViewModels(mapper, resources), false, nil
}

func (u *datasetUsecase) Create(ctx context.Context, datasetKey string, payload []byte) (interface{}, error) {
	_, mapper, dispatcher, err := u.resolve(datasetKey)
	if err != nil {
		return nil, err
	}

	viewModel, err := mapper.DecodeViewModel(payload)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(viewModel); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := mapper.ToRaw(viewModel, nil)
	if err != nil {
		return nil, err
	}

	stored, err := dispatcher.CreateAndAppend(ctx, raw)
	if err != nil {
		u.recordMutation(ctx, datasetKey, mapper.ResourceType(), "", contracts.MutationActionCreate, contracts.MutationOutcomeFailure)
		return nil, err
	}

	u.recordMutation(ctx, datasetKey, mapper.ResourceType(), stored.ID(), contracts.MutationActionCreate, contracts.MutationOutcomeSuccess)
	u.invalidateCache(ctx, datasetKey)
	return mapper.ToViewModel(stored), nil
}

func (u *datasetUsecase) Update(ctx context.Context, datasetKey, resourceID string, payload []byte) (interface{}, error) {
	_, mapper, dispatcher, err := u.resolve(datasetKey)
	if err != nil {
		return nil, err
	}

	viewModel, err := mapper.DecodeViewModel(payload)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(viewModel); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// Updates merge into the stored record so fields the view model does
	// not own survive. The held copy is the merge base when present; an
	// update arriving before any list fetches the record first.
	existing := dispatcher.Find(resourceID)
	if existing == nil {
		existing, err = u.fetchCurrent(ctx, dispatcher, mapper.ResourceType(), resourceID)
		if err != nil {
			return nil, err
		}
	}

	raw, err := mapper.ToRaw(viewModel, existing)
	if err != nil {
		return nil, err
	}
	raw.SetID(resourceID)

	stored, err := dispatcher.UpdateAndReplace(ctx, resourceID, raw)
	if err != nil {
		u.recordMutation(ctx, datasetKey, mapper.ResourceType(), resourceID, contracts.MutationActionUpdate, contracts.MutationOutcomeRollback)
		return nil, err
	}

	u.recordMutation(ctx, datasetKey, mapper.ResourceType(), resourceID, contracts.MutationActionUpdate, contracts.MutationOutcomeSuccess)
	u.invalidateCache(ctx, datasetKey)
	return mapper.ToViewModel(stored), nil
}

func (u *datasetUsecase) Delete(ctx context.Context, datasetKey, resourceID string) error {
	_, mapper, dispatcher, err := u.resolve(datasetKey)
	if err != nil {
		return err
	}

	if err := dispatcher.DeleteAndRemove(ctx, resourceID); err != nil {
		u.recordMutation(ctx, datasetKey, mapper.ResourceType(), resourceID, contracts.MutationActionDelete, contracts.MutationOutcomeRollback)
		return err
	}

	u.recordMutation(ctx, datasetKey, mapper.ResourceType(), resourceID, contracts.MutationActionDelete, contracts.MutationOutcomeSuccess)
	u.invalidateCache(ctx, datasetKey)
	return nil
}

func (u *datasetUsecase) Duplicate(ctx context.Context, datasetKey, resourceID string) (interface{}, error) {
	_, mapper, dispatcher, err := u.resolve(datasetKey)
	if err != nil {
		return nil, err
	}

	stored, err := dispatcher.Duplicate(ctx, resourceID)
	if err != nil {
		u.recordMutation(ctx, datasetKey, mapper.ResourceType(), resourceID, contracts.MutationActionDuplicate, contracts.MutationOutcomeFailure)
		return nil, err
	}

	u.recordMutation(ctx, datasetKey, mapper.ResourceType(), stored.ID(), contracts.MutationActionDuplicate, contracts.MutationOutcomeSuccess)
	u.invalidateCache(ctx, datasetKey)
	return mapper.ToViewModel(stored), nil
}

func (u *datasetUsecase) BulkDelete(ctx context.Context, datasetKey string, resourceIDs []string) (*responses.BulkReport, error) {
	_, mapper, dispatcher, err := u.resolve(datasetKey)
	if err != nil {
		return nil, err
	}

	report := dispatcher.DeleteMany(ctx, resourceIDs)
	u.recordBulkMutations(ctx, datasetKey, mapper.ResourceType(), contracts.MutationActionDelete, report)
	u.invalidateCache(ctx, datasetKey)
	return report, nil
}

func (u *datasetUsecase) BulkSetStatus(ctx context.Context, datasetKey string, resourceIDs []string, status string) (*responses.BulkReport, error) {
	_, mapper, dispatcher, err := u.resolve(datasetKey)
	if err != nil {
		return nil, err
	}

	report := dispatcher.SetStatusMany(ctx, resourceIDs, status)
	u.recordBulkMutations(ctx, datasetKey, mapper.ResourceType(), contracts.MutationActionUpdate, report)
	u.invalidateCache(ctx, datasetKey)
	return report, nil
}

func (u *datasetUsecase) AuditTrail(ctx context.Context, datasetKey string, limit int64) ([]contracts.MutationRecord, error) {
	if _, ok := constvars.DatasetResourceTypes[datasetKey]; !ok {
		return nil, exceptions.ErrUnknownDataset(datasetKey)
	}
	if u.auditTrail == nil {
		return []contracts.MutationRecord{}, nil
	}
	if limit <= 0 || limit > auditTrailLimitCap {
		limit = auditTrailLimitCap
	}
	return u.auditTrail.FindByDataset(ctx, datasetKey, limit)
}

func (u *datasetUsecase) AttachmentDownloadURL(ctx context.Context, resourceID string) (*responses.AttachmentURL, error) {
	document, err := u.findDocument(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	var content []fhir_dto.DocumentContent
	if !document.Decode("content", &content) || len(content) == 0 || content[0].Attachment.Url == "" {
		return nil, exceptions.ErrAttachmentURLMissing(resourceID)
	}

	presigned, err := u.storage.PresignedDownloadURL(ctx, content[0].Attachment.Url, attachmentURLExpiry)
	if err != nil {
		return nil, err
	}
	return &responses.AttachmentURL{
		DocumentID: resourceID,
		URL:        presigned,
		ExpiresIn:  int(attachmentURLExpiry.Seconds()),
	}, nil
}

func (u *datasetUsecase) AttachmentUploadURL(ctx context.Context, resourceID string) (*responses.AttachmentURL, error) {
	objectName := fmt.Sprintf("documents/%s", resourceID)
	if document, err := u.findDocument(ctx, resourceID); err == nil {
		var content []fhir_dto.DocumentContent
		if document.Decode("content", &content) && len(content) > 0 && content[0].Attachment.Url != "" {
			objectName = content[0].Attachment.Url
		}
	}

	presigned, err := u.storage.PresignedUploadURL(ctx, objectName, attachmentURLExpiry)
	if err != nil {
		return nil, err
	}
	return &responses.AttachmentURL{
		DocumentID: resourceID,
		URL:        presigned,
		ExpiresIn:  int(attachmentURLExpiry.Seconds()),
	}, nil
}

func (u *datasetUsecase) resolve(datasetKey string) (string, contracts.ResourceMapper, *Dispatcher, error) {
	resourceType, ok := constvars.DatasetResourceTypes[datasetKey]
	if !ok {
		return "", nil, nil, exceptions.ErrUnknownDataset(datasetKey)
	}

	mapper, err := u.mappers.Mapper(resourceType)
	if err != nil {
		return "", nil, nil, err
	}

	source, err := u.resolver.Source(datasetKey)
	if err != nil {
		return "", nil, nil, err
	}

	u.mu.Lock()
	dispatcher, ok := u.dispatchers[datasetKey]
	if !ok {
		dispatcher = NewDispatcher(source, resourceType, u.Log)
		u.dispatchers[datasetKey] = dispatcher
	}
	u.mu.Unlock()
	return resourceType, mapper, dispatcher, nil
}

func (u *datasetUsecase) toViewModels(mapper contracts.ResourceMapper, resources []*fhir_dto.Resource) []interface{} {
	viewModels := make([]interface{}, 0, len(resources))
	for _, resource := range resources {
		viewModels = append(viewModels, mapper.ToViewModel(resource))
	}
	return viewModels
}

// searchWithCache consults redis for code-system searches; every other
// dataset always hits its source. Cache trouble downgrades to a live
// search, never to a failed list.
func (u *datasetUsecase) searchWithCache(ctx context.Context, datasetKey, resourceType string, dispatcher *Dispatcher, params url.Values) (*fhir_dto.Bundle, error) {
	if datasetKey != constvars.DatasetCodeSystems || u.redis == nil {
		return dispatcher.source.Search(ctx, resourceType, params)
	}

	cacheKey := codeSystemCacheKeyPrefix + params.Encode()
	if cached, err := u.redis.Get(ctx, cacheKey); err == nil && cached != "" {
		bundle := new(fhir_dto.Bundle)
		if err := json.Unmarshal([]byte(cached), bundle); err == nil {
			return bundle, nil
		}
	}

	bundle, err := dispatcher.source.Search(ctx, resourceType, params)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(bundle); err == nil {
		if err := u.redis.Set(ctx, cacheKey, string(encoded), codeSystemCacheTTL); err != nil {
			u.Log.Warn("code system cache write failed", zap.Error(err))
		}
	}
	return bundle, nil
}

// invalidateCache drops the cached code-system pages after a mutation so
// the next list sees the change.
func (u *datasetUsecase) invalidateCache(ctx context.Context, datasetKey string) {
	if datasetKey != constvars.DatasetCodeSystems || u.redis == nil {
		return
	}
	if err := u.redis.DeleteByPattern(ctx, codeSystemCacheKeyPrefix+"*"); err != nil {
		u.Log.Warn("code system cache invalidation failed", zap.Error(err))
	}
}

func (u *datasetUsecase) findDocument(ctx context.Context, resourceID string) (*fhir_dto.Resource, error) {
	_, _, dispatcher, err := u.resolve(constvars.DatasetDocuments)
	if err != nil {
		return nil, err
	}

	if held := dispatcher.Find(resourceID); held != nil {
		return held, nil
	}
	return u.fetchCurrent(ctx, dispatcher, constvars.ResourceDocumentReference, resourceID)
}

// fetchCurrent pulls one record from the source by id.
func (u *datasetUsecase) fetchCurrent(ctx context.Context, dispatcher *Dispatcher, resourceType, resourceID string) (*fhir_dto.Resource, error) {
	params := url.Values{}
	params.Set("_id", resourceID)
	bundle, err := dispatcher.source.Search(ctx, resourceType, params)
	if err != nil {
		return nil, err
	}
	resources := fhir_dto.UnpackBundle(bundle, resourceType)
	if len(resources) == 0 {
		return nil, exceptions.ErrResourceNotFound(resourceType, resourceID)
	}
	return resources[0], nil
}

// recordMutation writes the audit trail entry and publishes it. Auditing
// is best effort: a broken trail never blocks the mutation that produced
// it.
func (u *datasetUsecase) recordMutation(ctx context.Context, datasetKey, resourceType, resourceID, action, outcome string) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	record := &contracts.MutationRecord{
		Dataset:      datasetKey,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Action:       action,
		Outcome:      outcome,
		RequestID:    requestID,
		RecordedAt:   time.Now().UTC(),
	}

	if u.auditTrail != nil {
		if err := u.auditTrail.RecordMutation(ctx, record); err != nil {
			u.Log.Warn("audit trail write failed",
				zap.String(constvars.LoggingDatasetKey, datasetKey),
				zap.Error(err),
			)
		}
	}
	if u.auditPublisher != nil {
		if err := u.auditPublisher.PublishMutation(ctx, record); err != nil {
			u.Log.Warn("audit publish failed",
				zap.String(constvars.LoggingDatasetKey, datasetKey),
				zap.Error(err),
			)
		}
	}
}

func (u *datasetUsecase) recordBulkMutations(ctx context.Context, datasetKey, resourceType, action string, report *responses.BulkReport) {
	for _, id := range report.Succeeded {
		u.recordMutation(ctx, datasetKey, resourceType, id, action, contracts.MutationOutcomeSuccess)
	}
	for _, failure := range report.Failed {
		u.recordMutation(ctx, datasetKey, resourceType, failure.ID, action, contracts.MutationOutcomeFailure)
	}
}
