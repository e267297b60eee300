package domain

import "time"

const (
	RegistrationIndividual = "individual"
	RegistrationGroup      = "group"
)

type Registration struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ExhibitionID uint      `json:"exhibition_id"`
	Type         string    `json:"type"`
	Attendees    int       `json:"attendees"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
