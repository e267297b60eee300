package domain

import "time"

type Artist struct {
	ID        uint      `json:"id"`
	IDNumber  string    `json:"id_number"`
	FirstName string    `json:"first_name"`
	Surname   string    `json:"surname"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
