package constvars

const (
	ResponseUnknown = "unknown"
	ResponseHealthy = "Healthy"
)

const (
	AssessSymptomsSuccessMessage  = "symptoms assessed successfully"
	FindAssessmentSuccessMessage  = "assessment found"
	FindUserHistorySuccessMessage = "assessment history found"
	CreateUserSuccessMessage      = "user created successfully"
	FindUserSuccessMessage        = "user found"
	UpdateUserSuccessMessage      = "user updated successfully"
	DeleteUserSuccessMessage      = "user deleted successfully"
	HealthCheckSuccessMessage     = "service is healthy"
)
