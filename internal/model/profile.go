package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RecordID identifies a work experience or education entry. Clients have
// historically sent both numbers and strings, so both decode; it always
// encodes as a string.
type RecordID string

func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RecordID(n.String())
	return nil
}

func (id RecordID) String() string {
	return string(id)
}

type WorkExperience struct {
	ID          RecordID `json:"id"`
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
}

// IsCurrent reports whether the position has no end date.
func (w WorkExperience) IsCurrent() bool {
	return strings.TrimSpace(w.EndDate) == ""
}

type Education struct {
	ID             RecordID `json:"id"`
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree"`
	Field          string   `json:"field"`
	GraduationDate string   `json:"graduationDate"`
}

// Profile is the per-user document holding everything the generators read.
type Profile struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Location        string           `json:"location"`
	PersonalSummary string           `json:"personalSummary"`
	WorkExperience  []WorkExperience `json:"workExperience"`
	Education       []Education      `json:"education"`
	Skills          []string         `json:"skills"`
	Version         int64            `json:"version"`
}

// ProfileUpdate is a partial profile. Nil fields leave the stored value
// untouched; non-nil slices replace the stored slice wholesale.
type ProfileUpdate struct {
	Name            *string
	Email           *string
	Phone           *string
	Location        *string
	PersonalSummary *string
	WorkExperience  []WorkExperience
	Education       []Education
	Skills          []string
}

// MergeProfile applies update on top of existing and returns the result.
// existing is not modified. The version is carried over unchanged.
func MergeProfile(existing Profile, update ProfileUpdate) Profile {
	merged := existing
	merged.WorkExperience = append([]WorkExperience(nil), existing.WorkExperience...)
	merged.Education = append([]Education(nil), existing.Education...)
	merged.Skills = append([]string(nil), existing.Skills...)

	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Location != nil {
		merged.Location = *update.Location
	}
	if update.PersonalSummary != nil {
		merged.PersonalSummary = *update.PersonalSummary
	}
	if update.WorkExperience != nil {
		merged.WorkExperience = append([]WorkExperience{}, update.WorkExperience...)
	}
	if update.Education != nil {
		merged.Education = append([]Education{}, update.Education...)
	}
	if update.Skills != nil {
		merged.Skills = DedupeSkills(update.Skills)
	}

	if merged.WorkExperience == nil {
		merged.WorkExperience = []WorkExperience{}
	}
	if merged.Education == nil {
		merged.Education = []Education{}
	}
	if merged.Skills == nil {
		merged.Skills = []string{}
	}
	return merged
}

// DedupeSkills drops blanks and exact (case-sensitive) duplicates, keeping
// the first occurrence.
func DedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FindExperiences returns the experiences whose ids are in ids, in profile
// order. An empty ids selects every experience.
func (p Profile) FindExperiences(ids []string) []WorkExperience {
	if len(ids) == 0 {
		return append([]WorkExperience{}, p.WorkExperience...)
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[strings.TrimSpace(id)] = struct{}{}
	}
	out := make([]WorkExperience, 0, len(ids))
	for _, exp := range p.WorkExperience {
		if _, ok := wanted[exp.ID.String()]; ok {
			out = append(out, exp)
		}
	}
	return out
}
