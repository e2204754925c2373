package models

import "time"

type User struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`

	Roles []Role `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

type Role struct {
	BaseModel
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Label string `json:"label"`
}

// AuthToken persists refresh tokens so they can be revoked independently
// of the expiry baked into the JWT. Access tokens are never stored.
type AuthToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	TokenType string    `gorm:"type:varchar(20);not null;default:'REFRESH'" json:"tokenType"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	IsRevoked bool      `gorm:"default:false" json:"isRevoked"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// HasRole reports whether the user holds the named role. Assumes Roles
// is preloaded.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the role codes for token claims.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
