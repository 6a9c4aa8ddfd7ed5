package dto

import (
	"github.com/fadilmartias/job-assistant/internal/model"
)

// UpdateProfileRequest is the body of PUT /api/profile. Omitted or null
// arrays keep the stored value; an empty array clears it.
type UpdateProfileRequest struct {
	Name            *string                `json:"name" validate:"required"`
	Email           *string                `json:"email" validate:"required,email"`
	Phone           *string                `json:"phone"`
	Location        *string                `json:"location"`
	PersonalSummary *string                `json:"personalSummary"`
	WorkExperience  []model.WorkExperience `json:"workExperience"`
	Education       []model.Education      `json:"education"`
	Skills          []string               `json:"skills"`
	// Version is the profile version the client last read; 0 skips the check.
	Version int64 `json:"version" validate:"gte=0"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateProfileRequest) ToUpdate() model.ProfileUpdate {
	return model.ProfileUpdate{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Location:        r.Location,
		PersonalSummary: r.PersonalSummary,
		WorkExperience:  r.WorkExperience,
		Education:       r.Education,
		Skills:          r.Skills,
	}
}
