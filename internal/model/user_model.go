package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is the stored profile document, one row per account. The record
// arrays live in jsonb columns and are always written whole.
type User struct {
	ID              uuid.UUID                           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string                              `gorm:"type:varchar(255)" json:"name"`
	Email           string                              `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Phone           string                              `gorm:"type:varchar(50)" json:"phone"`
	Location        string                              `gorm:"type:varchar(255)" json:"location"`
	PersonalSummary string                              `gorm:"type:text" json:"personal_summary"`
	WorkExperience  datatypes.JSONSlice[WorkExperience] `gorm:"type:jsonb" json:"work_experience"`
	Education       datatypes.JSONSlice[Education]      `gorm:"type:jsonb" json:"education"`
	Skills          datatypes.JSONSlice[string]         `gorm:"type:jsonb" json:"skills"`
	Version         int64                               `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time                           `json:"created_at"`
	UpdatedAt       time.Time                           `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

// Profile returns the domain view of the row. Nil arrays come back empty.
func (u *User) Profile() Profile {
	p := Profile{
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Location:        u.Location,
		PersonalSummary: u.PersonalSummary,
		WorkExperience:  append([]WorkExperience{}, u.WorkExperience...),
		Education:       append([]Education{}, u.Education...),
		Skills:          append([]string{}, u.Skills...),
		Version:         u.Version,
	}
	return p
}

// ProfileColumns maps a profile onto the columns written by a profile save.
func ProfileColumns(p Profile) map[string]any {
	return map[string]any{
		"name":             p.Name,
		"email":            p.Email,
		"phone":            p.Phone,
		"location":         p.Location,
		"personal_summary": p.PersonalSummary,
		"work_experience":  datatypes.NewJSONSlice(nonNil(p.WorkExperience)),
		"education":        datatypes.NewJSONSlice(nonNil(p.Education)),
		"skills":           datatypes.NewJSONSlice(nonNil(p.Skills)),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
