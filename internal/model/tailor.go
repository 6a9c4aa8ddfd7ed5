package model

// TailorResult is the rewritten bullet list for one work experience. It is
// response data only and is never stored.
type TailorResult struct {
	ID      string   `json:"id"`
	Bullets []string `json:"bullets"`
}

// ResumeExtraction is the structured data recovered from an uploaded resume.
type ResumeExtraction struct {
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
}
