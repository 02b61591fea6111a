package requests

type CreateUser struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"omitempty,email"`
	Age               *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender            string `json:"gender"`
	Phone             string `json:"phone"`
	EmergencyContact  string `json:"emergencyContact"`
	MedicalConditions string `json:"medicalConditions"`
	Allergies         string `json:"allergies"`
	Medications       string `json:"medications"`
}

type UpdateUser struct {
	Name              string `json:"name"`
	Email             string `json:"email" validate:"omitempty,email"`
	Age               *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender            string `json:"gender"`
	Phone             string `json:"phone"`
	EmergencyContact  string `json:"emergencyContact"`
	MedicalConditions string `json:"medicalConditions"`
	Allergies         string `json:"allergies"`
	Medications       string `json:"medications"`
}

type FindUserByEmail struct {
	Email string `json:"email" validate:"required,email"`
}
