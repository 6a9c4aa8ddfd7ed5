package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/fadilmartias/job-assistant/internal/repository"
	"github.com/fadilmartias/job-assistant/internal/service"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const resumeExtractionPrompt = `You read resumes and return their content as structured data.
Return one JSON object with exactly these keys:
{
  "summary": "a short professional summary, or an empty string",
  "workExperience": [
    {"company": "", "title": "", "startDate": "", "endDate": "", "description": ""}
  ],
  "education": [
    {"institution": "", "degree": "", "field": "", "graduationDate": ""}
  ],
  "skills": ["skill"]
}
Leave endDate empty for a current position. Keep each achievement in description on its own line.
Use empty strings or empty arrays for anything the resume does not contain.`

// ProfileStore loads and writes the per-user profile document.
// *repository.ProfileRepository implements it.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	ReplaceProfile(ctx context.Context, userID uuid.UUID, p model.Profile) (model.Profile, error)
}

type ResumeUsecase struct {
	store     ProfileStore
	generator service.TextGenerator
	log       *logrus.Logger
}

func NewResumeUsecase(store ProfileStore, generator service.TextGenerator) *ResumeUsecase {
	return &ResumeUsecase{store: store, generator: generator, log: util.Logger()}
}

// ParseResume extracts structured profile data from an uploaded document and
// stores it on the user's profile. Work experience, education and skills
// replace what was stored; the summary only replaces it when non-empty.
func (uc *ResumeUsecase) ParseResume(ctx context.Context, userID uuid.UUID, data []byte, declaredMime string) (model.ResumeExtraction, error) {
	if len(data) == 0 {
		return model.ResumeExtraction{}, newError(KindValidationFailed, "resume file is required", nil)
	}

	mimeType := util.DetectMimeType(declaredMime, data)
	text, err := util.ExtractText(data, mimeType)
	if err != nil {
		return model.ResumeExtraction{}, newError(KindExtractionFailed, "could not read text from the uploaded file", err)
	}
	text = util.Truncate(strings.TrimSpace(text), util.MaxResumeChars)
	if text == "" {
		return model.ResumeExtraction{}, newError(KindExtractionFailed, "the uploaded file contains no text", nil)
	}

	raw, err := uc.generator.Generate(ctx, service.GenerationRequest{
		Messages: []service.Message{
			{Role: service.RoleSystem, Content: resumeExtractionPrompt},
			{Role: service.RoleUser, Content: "Resume text:\n" + text},
		},
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("resume extraction call failed")
		return model.ResumeExtraction{}, modelFailure(err)
	}

	parsed := util.ParseObject(raw)
	if !gjson.Valid(util.CleanJSONBlock(raw)) {
		uc.log.WithFields(logrus.Fields{
			"user_id": userID,
			"kind":    KindMalformedModelOutput,
			"chars":   len(raw),
		}).Warn("resume extraction returned invalid JSON, using empty result")
	}
	extraction := normalizeExtraction(parsed)

	if err := uc.save(ctx, userID, extraction); err != nil {
		return model.ResumeExtraction{}, err
	}

	uc.log.WithFields(logrus.Fields{
		"user_id":         userID,
		"work_experience": len(extraction.WorkExperience),
		"education":       len(extraction.Education),
		"skills":          len(extraction.Skills),
		"mime":            mimeType,
	}).Info("resume parsed")
	return extraction, nil
}

// save merges the extraction into the stored profile. A concurrent write
// between read and write is retried once with a fresh read.
func (uc *ResumeUsecase) save(ctx context.Context, userID uuid.UUID, extraction model.ResumeExtraction) error {
	update := model.ProfileUpdate{
		WorkExperience: extraction.WorkExperience,
		Education:      extraction.Education,
		Skills:         extraction.Skills,
	}
	if extraction.Summary != "" {
		update.PersonalSummary = &extraction.Summary
	}

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		var existing model.Profile
		existing, err = uc.store.GetProfile(ctx, userID)
		if err != nil {
			return storeFailure(err)
		}
		_, err = uc.store.ReplaceProfile(ctx, userID, model.MergeProfile(existing, update))
		if !errors.Is(err, repository.ErrVersionConflict) {
			break
		}
		uc.log.WithField("user_id", userID).Warn("profile changed during resume import, retrying")
	}
	if err != nil {
		return storeFailure(err)
	}
	return nil
}
