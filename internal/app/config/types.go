package config

type (
	InternalConfig struct {
		App         App
		Store       Store
		Diagnostics Diagnostics
		Events      Events
	}

	DriverConfig struct {
		MongoDB    MongoDB
		PostgresDB PostgresDB
		Redis      Redis
		Minio      Minio
		RabbitMQ   RabbitMQ
		Logger     Logger
	}

	App struct {
		Env                        string
		Port                       string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
		AssessRequestsPerMinute    int
		AssessBurst                int
		AssessBlockTimeInSeconds   int
	}

	Store struct {
		Backend                 string
		DataDir                 string
		LockBackend             string
		LockAcquireTimeoutInMs  int
		LockPollIntervalInMs    int
		LockExpirationInSeconds int
		MinioBucketName         string
		MinioObjectPrefix       string
	}

	Diagnostics struct {
		SymptomsField    string
		DurationField    string
		SeverityField    string
		TemperatureField string
	}

	Events struct {
		Enabled bool
		Queue   string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	PostgresDB struct {
		Port     string
		Host     string
		DBName   string
		Username string
		Password string
		SSLMode  string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
