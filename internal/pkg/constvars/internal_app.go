package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SYMPTOMIX_SVC_"
)

// Collections kept by the record store.
const (
	CollectionAssessments = "assessments"
	CollectionUsers       = "users"
)

const (
	StoreBackendFile     = "file"
	StoreBackendMinio    = "minio"
	StoreBackendMongoDB  = "mongodb"
	StoreBackendPostgres = "postgres"
)

const (
	LockKeyPrefixCollection = "symptomix:lock:collection:"
)

const (
	EventTypeAssessmentCompleted = "assessment.completed"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	MongoCollectionRecordCollections = "record_collections"
	RecordCollectionFileExtension    = ".json"
)

const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)
