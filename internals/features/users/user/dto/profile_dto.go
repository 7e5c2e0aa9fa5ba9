package dto

type ProfileUpdateRequest struct {
	UserName      *string   `json:"user_name" validate:"omitempty,min=2,max=120"`
	UserBio       *string   `json:"user_bio" validate:"omitempty,max=2000"`
	UserLocation  *string   `json:"user_location" validate:"omitempty,max=255"`
	UserInterests *[]string `json:"user_interests" validate:"omitempty,dive,max=60"`
	UserSkills    *[]string `json:"user_skills" validate:"omitempty,dive,max=60"`
}
