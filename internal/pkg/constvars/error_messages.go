package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "Cannot process the request"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact the administrator"
	ErrClientStoreUnreachable              = "The clinical data store cannot be reached, please retry"
	ErrClientStoreMalformedResponse        = "The clinical data store returned an unexpected response"
	ErrClientResourceNotFound              = "The requested record was not found"
	ErrClientUnknownDataset                = "Unknown dataset"
)

// Developer-facing messages.
const (
	ErrDevCannotMarshalJSON     = "Failed to marshal JSON"
	ErrDevCannotParseJSON       = "Failed to parse JSON request body"
	ErrDevValidationFailed      = "Request validation failed"
	ErrDevBuildHTTPRequest      = "Failed to build HTTP request"
	ErrDevSendHTTPRequest       = "Failed to send HTTP request to FHIR store"
	ErrDevDecodeResponse        = "Failed to decode %s response from FHIR store"
	ErrDevResourceTypeMismatch  = "FHIR store returned resourceType %q, expected %q"
	ErrDevSearchFHIRResource    = "Failed to search %s resources"
	ErrDevCreateFHIRResource    = "Failed to create %s resource"
	ErrDevUpdateFHIRResource    = "Failed to update %s resource"
	ErrDevDeleteFHIRResource    = "Failed to delete %s resource"
	ErrDevResourceNotFound      = "%s/%s not found on FHIR store"
	ErrDevUnknownDataset        = "No dataset registered under key %q"
	ErrDevUnknownResourceMapper = "No mapper registered for resource type %q"
	ErrDevViewModelTypeMismatch = "View model has unexpected type %T for resource type %q"
	ErrDevRedisSet              = "Failed to write key to redis"
	ErrDevRedisGet              = "Failed to read key %s from redis"
	ErrDevRedisDelete           = "Failed to delete key from redis"
	ErrDevMongoInsertDocument   = "Failed to insert audit document"
	ErrDevMongoFindDocuments    = "Failed to find audit documents"
	ErrDevPublishAuditEvent     = "Failed to publish audit event to queue"
	ErrDevPresignAttachmentURL  = "Failed to presign attachment URL for object %s"
	ErrDevAttachmentURLMissing  = "Document %s has no attachment URL to presign"
	ErrDevStaleSearchDiscarded  = "Search response discarded as stale"
)

const ResponseUnknown = "unknown"
