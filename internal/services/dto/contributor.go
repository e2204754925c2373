package dto

// ApplyContributorRequest creates the caller's contributor profile.
// SocialLinks is a free-form map of platform name to URL.
type ApplyContributorRequest struct {
	Bio         *string           `json:"bio" validate:"omitempty,max=2000"`
	SocialLinks map[string]string `json:"socialLinks" validate:"omitempty,dive,url"`
}
