package domain

// ExhibitionRegistrationReport aggregates registrations per exhibition.
type ExhibitionRegistrationReport struct {
	ExhibitionID    uint   `json:"exhibition_id"`
	ExhibitionTitle string `json:"exhibition_title"`
	Registrations   int    `json:"registrations"`
	TotalAttendees  int    `json:"total_attendees"`
}

// ArtAvailabilityReport counts active art pieces per availability bucket.
type ArtAvailabilityReport struct {
	Availability string `json:"availability"`
	Pieces       int    `json:"pieces"`
	TotalStock   int    `json:"total_stock"`
}
