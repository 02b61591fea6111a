package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingRequestKey          = "request"
	LoggingResponseKey         = "response"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingErrorCodeKey        = "error_code"
	LoggingErrorMessageKey     = "error_message"
	LoggingOperationKey        = "operation"
	LoggingCollectionKey       = "collection"
	LoggingRecordIDKey         = "record_id"
	LoggingRecordCountKey      = "record_count"
	LoggingUserIDKey           = "user_id"
	LoggingAssessmentIDKey     = "assessment_id"
	LoggingSymptomCountKey     = "symptom_count"
	LoggingDiagnosisKey        = "diagnosis"
	LoggingConfidenceKey       = "confidence"
	LoggingUrgencyKey          = "urgency"
	LoggingAlternativeCountKey = "alternative_count"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockStoredValueKey  = "lock_stored_value"
	LoggingQueueKey            = "queue"
	LoggingBackendKey          = "backend"
)
