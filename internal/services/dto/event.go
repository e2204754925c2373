package dto

import "time"

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Type        string `json:"type" validate:"omitempty,oneof=WORKSHOP SEMINAR MEETUP CONFERENCE WEBINAR OTHER"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"omitempty,max=300"`

	StartDatetime time.Time `json:"startDatetime" validate:"required"`
	EndDatetime   time.Time `json:"endDatetime" validate:"required,gtfield=StartDatetime"`

	// A price above zero makes the event paid; there is no separate flag.
	PricePerPerson *float64 `json:"pricePerPerson" validate:"omitempty,gte=0"`
	Quota          *int     `json:"quota" validate:"omitempty,gte=1"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=200"`
	Type        *string `json:"type" validate:"omitempty,oneof=WORKSHOP SEMINAR MEETUP CONFERENCE WEBINAR OTHER"`
	Description *string `json:"description"`
	Location    *string `json:"location" validate:"omitempty,max=300"`

	StartDatetime *time.Time `json:"startDatetime"`
	EndDatetime   *time.Time `json:"endDatetime"`

	PricePerPerson *float64 `json:"pricePerPerson" validate:"omitempty,gte=0"`
	Quota          *int     `json:"quota" validate:"omitempty,gte=1"`
}

type EventListQuery struct {
	ListQuery
	Status    string `form:"status"`
	Type      string `form:"type"`
	CreatorID string `form:"creatorId"`
	Upcoming  bool   `form:"upcoming"`
}

// RegistrationStatsResponse summarizes seats for one event.
type RegistrationStatsResponse struct {
	EventID            string           `json:"eventId"`
	Quota              *int             `json:"quota"`
	TotalRegistrations int64            `json:"totalRegistrations"`
	TotalActive        int64            `json:"totalActive"`
	RemainingSeats     *int64           `json:"remainingSeats"`
	ByStatus           map[string]int64 `json:"byStatus"`
}
