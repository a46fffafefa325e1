package datasets

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/requests"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DatasetController struct {
	usecase contracts.DatasetUsecase
	Log     *zap.Logger
}

func NewDatasetController(usecase contracts.DatasetUsecase, logger *zap.Logger) *DatasetController {
	return &DatasetController{usecase: usecase, Log: logger}
}

func (c *DatasetController) List(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)
	intent := parseListIntent(r)

	viewModels, stale, err := c.usecase.List(r.Context(), datasetKey, intent)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildListResponse(w, "Dataset fetched successfully", stale, viewModels)
}

func (c *DatasetController) Create(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	viewModel, err := c.usecase.Create(r.Context(), datasetKey, payload)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, "Record created successfully", viewModel)
}

func (c *DatasetController) Update(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	viewModel, err := c.usecase.Update(r.Context(), datasetKey, resourceID, payload)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Record updated successfully", viewModel)
}

func (c *DatasetController) Delete(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	if err := c.usecase.Delete(r.Context(), datasetKey, resourceID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Record deleted successfully", nil)
}

func (c *DatasetController) Duplicate(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	viewModel, err := c.usecase.Duplicate(r.Context(), datasetKey, resourceID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, "Record duplicated successfully", viewModel)
}

func (c *DatasetController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)

	request := new(requests.BulkDeleteRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	report, err := c.usecase.BulkDelete(r.Context(), datasetKey, request.IDs)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildBulkResponse(w, "Bulk delete processed", report)
}

func (c *DatasetController) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)

	request := new(requests.BulkStatusRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	report, err := c.usecase.BulkSetStatus(r.Context(), datasetKey, request.IDs, request.Status)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildBulkResponse(w, "Bulk status update processed", report)
}

func (c *DatasetController) AuditTrail(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, constvars.URLParamDataset)

	var limit int64
	if raw := r.URL.Query().Get(constvars.URLQueryParamLimit); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = parsed
		}
	}

	records, err := c.usecase.AuditTrail(r.Context(), datasetKey, limit)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Audit trail fetched successfully", records)
}

func (c *DatasetController) AttachmentDownloadURL(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	attachment, err := c.usecase.AttachmentDownloadURL(r.Context(), resourceID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Attachment URL issued", attachment)
}

func (c *DatasetController) AttachmentUploadURL(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	attachment, err := c.usecase.AttachmentUploadURL(r.Context(), resourceID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Attachment upload URL issued", attachment)
}

func parseListIntent(r *http.Request) requests.ListIntent {
	query := r.URL.Query()
	intent := requests.ListIntent{
		SearchText:   query.Get(constvars.URLQueryParamSearch),
		StatusFilter: query.Get(constvars.URLQueryParamStatus),
		Sort:         query.Get(constvars.URLQueryParamSort),
	}
	if raw := query.Get(constvars.URLQueryParamPageSize); raw != "" {
		if pageSize, err := strconv.Atoi(raw); err == nil {
			intent.PageSize = pageSize
		}
	}
	for _, include := range query[constvars.URLQueryParamInclude] {
		for _, part := range strings.Split(include, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				intent.Include = append(intent.Include, trimmed)
			}
		}
	}
	return intent
}
