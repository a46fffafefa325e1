package fhirstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

// fhirClient is the single transport client for every resource type. The
// legacy console repeated this logic per page; here resource-type routing
// is a parameter, not a copy.
type fhirClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewFhirClient(baseUrl string, requestTimeout time.Duration, logger *zap.Logger) contracts.DataSource {
	return &fhirClient{
		BaseUrl:    baseUrl,
		HttpClient: &http.Client{Timeout: requestTimeout},
		Log:        logger,
	}
}

func (c *fhirClient) Search(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, resourceType)
	if encoded := params.Encode(); encoded != "" {
		endpoint = endpoint + "?" + encoded
	}
	c.Log.Info("fhirClient.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingQueryParamsKey, params.Encode()),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("fhirClient.Search error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.outcomeError(resp, resourceType, exceptions.ErrSearchFHIRResource)
	}

	bundle := new(fhir_dto.Bundle)
	if err := json.NewDecoder(resp.Body).Decode(bundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}
	if bundle.ResourceType != constvars.ResourceBundle {
		return nil, exceptions.ErrResourceTypeMismatch(bundle.ResourceType, constvars.ResourceBundle)
	}

	c.Log.Info("fhirClient.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.Int(constvars.LoggingCountKey, len(bundle.Entry)),
	)
	return bundle, nil
}

func (c *fhirClient) Create(ctx context.Context, resourceType string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("fhirClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)

	requestJSON, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, resourceType)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("fhirClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return nil, c.outcomeError(resp, resourceType, exceptions.ErrCreateFHIRResource)
	}

	return c.decodeResource(resp.Body, resourceType)
}

func (c *fhirClient) Update(ctx context.Context, resourceType, id string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("fhirClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	requestJSON, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.BaseUrl, resourceType, id)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("fhirClient.Update error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrResourceNotFound(resourceType, id)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, c.outcomeError(resp, resourceType, exceptions.ErrUpdateFHIRResource)
	}

	return c.decodeResource(resp.Body, resourceType)
}

func (c *fhirClient) Delete(ctx context.Context, resourceType, id string) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("fhirClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	endpoint := fmt.Sprintf("%s/%s/%s", c.BaseUrl, resourceType, id)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, endpoint, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("fhirClient.Delete error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK, constvars.StatusNoContent:
		return nil
	case constvars.StatusNotFound:
		return exceptions.ErrResourceNotFound(resourceType, id)
	default:
		return c.outcomeError(resp, resourceType, exceptions.ErrDeleteFHIRResource)
	}
}

// decodeResource parses a stored representation and verifies the
// discriminant. A body that parses but carries the wrong resourceType is a
// malformed response, not a network failure.
func (c *fhirClient) decodeResource(body io.Reader, resourceType string) (*fhir_dto.Resource, error) {
	resource := new(fhir_dto.Resource)
	if err := json.NewDecoder(body).Decode(resource); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}
	if resource.ResourceType() != resourceType {
		c.Log.Error("fhirClient response resourceType mismatch",
			zap.String(constvars.LoggingResourceTypeKey, resource.ResourceType()),
			zap.String(constvars.LoggingResourceIDKey, resource.ID()),
		)
		return nil, exceptions.ErrResourceTypeMismatch(resource.ResourceType(), resourceType)
	}
	return resource, nil
}

func (c *fhirClient) outcomeError(resp *http.Response, resourceType string, build func(error, string) *exceptions.CustomError) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return build(err, resourceType)
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err != nil {
		return exceptions.ErrDecodeResponse(err, resourceType)
	}
	if len(outcome.Issue) > 0 {
		return build(fmt.Errorf("%s", outcome.Issue[0].Diagnostics), resourceType)
	}
	return build(fmt.Errorf("unexpected status %d", resp.StatusCode), resourceType)
}
