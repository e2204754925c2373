package models

import "time"

// Payment links to at most one of EventRegistration / Event / Business /
// JobPost, depending on PaymentType. Only EVENT_REGISTRATION payments
// exist today; the other links are schema room for future paid features.
type Payment struct {
	BaseModel
	UserID      string        `gorm:"not null;index" json:"userId"`
	PaymentType string        `gorm:"type:varchar(30);not null;index" json:"paymentType"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Status      PaymentStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	ReferenceCode *string `json:"referenceCode"`
	ScreenshotURL *string `json:"screenshotUrl"`

	VerifiedByID *string    `json:"verifiedById"`
	VerifiedAt   *time.Time `json:"verifiedAt"`

	EventRegistrationID *string `gorm:"index" json:"eventRegistrationId"`
	EventID             *string `gorm:"index" json:"eventId"`
	BusinessID          *string `gorm:"index" json:"businessId"`
	JobPostID           *string `gorm:"index" json:"jobPostId"`

	User              *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VerifiedBy        *User              `gorm:"foreignKey:VerifiedByID" json:"verifiedBy,omitempty"`
	EventRegistration *EventRegistration `gorm:"foreignKey:EventRegistrationID" json:"eventRegistration,omitempty"`
	Event             *Event             `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Business          *Business          `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	JobPost           *JobPost           `gorm:"foreignKey:JobPostID" json:"jobPost,omitempty"`
}
