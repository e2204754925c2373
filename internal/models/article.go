package models

import (
	"time"

	"gorm.io/datatypes"
)

type ContributorProfile struct {
	BaseModel
	UserID      string            `gorm:"uniqueIndex;not null" json:"userId"`
	Bio         *string           `json:"bio"`
	SocialLinks datatypes.JSON    `gorm:"type:jsonb" json:"socialLinks"`
	Status      ContributorStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type Article struct {
	BaseModel
	AuthorID      string        `gorm:"not null;index" json:"authorId"`
	Title         string        `gorm:"not null" json:"title"`
	Slug          string        `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt       *string       `json:"excerpt"`
	Content       string        `gorm:"not null" json:"content"`
	CoverImageURL *string       `json:"coverImageUrl"`
	Status        ArticleStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PublishedAt   *time.Time    `json:"publishedAt"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
