package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ArtistRequest struct {
	IDNumber  string `json:"id_number"`
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	IsActive  *bool  `json:"is_active"`
}

func (req *ArtistRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IDNumber, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Surname, validation.Required, validation.Length(1, 100)),
	)
}

func (req *ArtistRequest) Active() bool {
	if req.IsActive == nil {
		return true
	}

	return *req.IsActive
}
