package models

import "time"

type Event struct {
	BaseModel
	CreatorID   string `gorm:"not null;index" json:"creatorId"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Type        string `gorm:"type:varchar(30)" json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`

	StartDatetime time.Time `gorm:"not null;index" json:"startDatetime"`
	EndDatetime   time.Time `gorm:"not null" json:"endDatetime"`

	IsPaid         bool     `gorm:"default:false" json:"isPaid"`
	PricePerPerson *float64 `json:"pricePerPerson"`
	AdminFee       float64  `gorm:"default:0" json:"adminFee"`

	// Quota is the maximum concurrent non-rejected registrations; nil
	// means unlimited.
	Quota *int `json:"quota"`

	Status      EventStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PublishedAt *time.Time  `json:"publishedAt"`

	Creator *User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

type EventRegistration struct {
	BaseModel
	EventID     string             `gorm:"not null;index" json:"eventId"`
	UserID      string             `gorm:"not null;index" json:"userId"`
	Status      RegistrationStatus `gorm:"type:varchar(20);not null" json:"status"`
	TotalAmount float64            `gorm:"not null" json:"totalAmount"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
