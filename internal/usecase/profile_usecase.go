package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ProfileUsecase struct {
	store ProfileStore
	log   *logrus.Logger
}

func NewProfileUsecase(store ProfileStore) *ProfileUsecase {
	return &ProfileUsecase{store: store, log: util.Logger()}
}

func (uc *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	p, err := uc.store.GetProfile(ctx, userID)
	if err != nil {
		return model.Profile{}, storeFailure(err)
	}
	return model.MergeProfile(p, model.ProfileUpdate{}), nil
}

// Update applies a partial update. When expectedVersion is non-zero the write
// only succeeds if the stored profile still has that version.
func (uc *ProfileUsecase) Update(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate, expectedVersion int64) (model.Profile, error) {
	if update.Name == nil || strings.TrimSpace(*update.Name) == "" {
		return model.Profile{}, newError(KindValidationFailed, "name is required", nil)
	}
	if update.Email == nil || strings.TrimSpace(*update.Email) == "" {
		return model.Profile{}, newError(KindValidationFailed, "email is required", nil)
	}

	if update.WorkExperience != nil {
		exps := make([]model.WorkExperience, len(update.WorkExperience))
		for i, exp := range update.WorkExperience {
			exp.Description = util.NormalizeDescription(exp.Description)
			exps[i] = exp
		}
		assignWorkExperienceIDs(exps)
		update.WorkExperience = exps
	}
	if update.Education != nil {
		edus := append([]model.Education{}, update.Education...)
		assignEducationIDs(edus)
		update.Education = edus
	}

	existing, err := uc.store.GetProfile(ctx, userID)
	if err != nil {
		return model.Profile{}, storeFailure(err)
	}
	merged := model.MergeProfile(existing, update)
	if expectedVersion != 0 {
		merged.Version = expectedVersion
	}

	saved, err := uc.store.ReplaceProfile(ctx, userID, merged)
	if err != nil {
		return model.Profile{}, storeFailure(err)
	}
	uc.log.WithFields(logrus.Fields{"user_id": userID, "version": saved.Version}).Info("profile updated")
	return saved, nil
}
