package exceptions

import (
	"fmt"

	"caregate-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildHTTPRequest)
	}

	// Network condition: the call did not complete. Retryable by the caller.
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindNetwork, constvars.ErrClientStoreUnreachable, constvars.ErrDevSendHTTPRequest)
	}

	// Malformed-response condition: parsed but failed shape validation.
	ErrDecodeResponse = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindMalformedResponse, constvars.ErrClientStoreMalformedResponse, fmt.Sprintf(constvars.ErrDevDecodeResponse, resourceType))
	}
	ErrResourceTypeMismatch = func(got, want string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, KindMalformedResponse, constvars.ErrClientStoreMalformedResponse, fmt.Sprintf(constvars.ErrDevResourceTypeMismatch, got, want))
	}

	ErrResourceNotFound = func(resourceType, id string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, KindNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevResourceNotFound, resourceType, id))
	}

	ErrSearchFHIRResource = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSearchFHIRResource, resourceType))
	}
	ErrCreateFHIRResource = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCreateFHIRResource, resourceType))
	}
	ErrUpdateFHIRResource = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUpdateFHIRResource, resourceType))
	}
	ErrDeleteFHIRResource = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDeleteFHIRResource, resourceType))
	}

	ErrUnknownDataset = func(datasetKey string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, KindValidation, constvars.ErrClientUnknownDataset, fmt.Sprintf(constvars.ErrDevUnknownDataset, datasetKey))
	}
	ErrUnknownResourceMapper = func(resourceType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnknownResourceMapper, resourceType))
	}
	ErrViewModelTypeMismatch = func(viewModel interface{}, resourceType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevViewModelTypeMismatch, viewModel, resourceType))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// Mongo audit trail
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoInsertDocument)
	}
	ErrMongoDBFindDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFindDocuments)
	}

	// RabbitMQ
	ErrPublishAuditEvent = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishAuditEvent)
	}

	// Minio
	ErrPresignAttachmentURL = func(err error, objectName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPresignAttachmentURL, objectName))
	}
	ErrAttachmentURLMissing = func(documentID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevAttachmentURLMissing, documentID))
	}
)
