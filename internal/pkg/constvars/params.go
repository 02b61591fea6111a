package constvars

const (
	URLParamUserID       = "user_id"
	URLParamAssessmentID = "assessment_id"
)

const (
	QueryParamEmail = "email"
)
