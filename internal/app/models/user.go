package models

type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Age               *int   `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Phone             string `json:"phone,omitempty"`
	EmergencyContact  string `json:"emergencyContact,omitempty"`
	MedicalConditions string `json:"medicalConditions,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	Medications       string `json:"medications,omitempty"`
	TimeModel
}

func (u *User) GetID() string {
	return u.ID
}

func (u *User) SetID(id string) {
	u.ID = id
}
