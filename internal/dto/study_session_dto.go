package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStudySessionRequest struct {
	Subject  string `json:"subject" validate:"required,max=100"`
	Date     string `json:"date" validate:"required"` // YYYY-MM-DD
	Time     string `json:"time" validate:"required"` // HH:MM
	Duration int    `json:"duration" validate:"gte=0"`
	Goals    string `json:"goals"`
	Status   string `json:"status"`
}

// UpdateStudySessionRequest uses pointers so an absent field and a zero value
// are distinguishable: nil means "leave unchanged".
type UpdateStudySessionRequest struct {
	Id       uuid.UUID
	Subject  *string `json:"subject"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration"`
	Goals    *string `json:"goals"`
	Status   *string `json:"status"`
}

type StudySessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	Duration  int       `json:"duration"`
	Goals     string    `json:"goals"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
