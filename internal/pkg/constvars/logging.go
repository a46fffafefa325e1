package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingDatasetKey      = "dataset"
	LoggingResourceTypeKey = "resource_type"
	LoggingResourceIDKey   = "resource_id"
	LoggingSequenceKey     = "sequence"
	LoggingQueryParamsKey  = "query_params"
	LoggingCountKey        = "count"
	LoggingModeKey         = "mode"
)

type contextKey string

// ContextRequestIDKey carries the per-request id through context.
const ContextRequestIDKey contextKey = "request_id"
