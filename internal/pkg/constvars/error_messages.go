package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"answers":  "must only contain non-empty question ids",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientAnswersRequired               = "assessment data is required"
	ErrClientAssessmentNotFound            = "assessment not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientServiceBusy                   = "the service is busy, please try again"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRequestTooLarge               = "request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevRequestTooLarge        = "request body exceeds the configured limit"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevAnswersRequired        = "answer set is missing"
	ErrDevServerProcess          = "failed to process request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevAssessmentNotFound     = "assessment %s not found"
	ErrDevUserNotFound           = "user %s not found"
	ErrDevRecordStoreWrite       = "failed to write collection %s"
	ErrDevRecordStoreRead        = "failed to read collection %s"
	ErrDevInvalidCollectionName  = "invalid collection name %q"
	ErrDevCollectionLockTimeout  = "timed out acquiring lock for collection %s"
	ErrDevCollectionLockNotOwned = "lock for collection %s not owned by this client"
	ErrDevRedisGetData           = "failed to get data from redis"
	ErrDevRedisSetData           = "failed to set data into redis"
	ErrDevRedisDeleteData        = "failed to delete data from redis"
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevUnknownStoreBackend    = "unknown store backend %q"
)
