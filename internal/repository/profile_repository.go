package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrVersionConflict = errors.New("profile was modified concurrently")
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return u.Profile(), nil
}

// ReplaceProfile writes p only if the stored version still equals p.Version
// and returns the profile with its new version.
func (r *ProfileRepository) ReplaceProfile(ctx context.Context, userID uuid.UUID, p model.Profile) (model.Profile, error) {
	cols := model.ProfileColumns(p)
	cols["version"] = p.Version + 1
	cols["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND version = ?", userID, p.Version).
		Updates(cols)
	if res.Error != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return model.Profile{}, fmt.Errorf("check profile: %w", err)
		}
		if count == 0 {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, ErrVersionConflict
	}

	p.Version++
	return p, nil
}
