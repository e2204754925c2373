package models

type Business struct {
	BaseModel
	OwnerID     string         `gorm:"not null;index" json:"ownerId"`
	Name        string         `gorm:"not null" json:"name"`
	LogoURL     *string        `json:"logoUrl"`
	WebsiteURL  *string        `json:"websiteUrl"`
	Description *string        `json:"description"`
	Status      BusinessStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
