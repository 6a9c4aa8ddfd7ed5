package dto

import (
	"github.com/fadilmartias/job-assistant/internal/model"
)

type TailorRequest struct {
	Company        string           `json:"company" validate:"max=200"`
	JobDescription string           `json:"jobDescription" validate:"required,max=50000"`
	ExperienceIDs  []model.RecordID `json:"experienceIds"`
}

func (r *TailorRequest) Validate() error {
	return validate.Struct(r)
}

// IDs returns the selected experience ids as strings.
func (r *TailorRequest) IDs() []string {
	ids := make([]string, 0, len(r.ExperienceIDs))
	for _, id := range r.ExperienceIDs {
		if id != "" {
			ids = append(ids, id.String())
		}
	}
	return ids
}

type TailorResponse struct {
	Results []model.TailorResult `json:"results"`
}
