package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/fadilmartias/job-assistant/internal/service"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const tailorTemperature = 0.4

// tailorOutput is the model's answer. Entries stay raw so one malformed
// entry does not discard the others.
type tailorOutput struct {
	Results []json.RawMessage `json:"results"`
}

type TailorInput struct {
	Company        string
	JobDescription string
	// ExperienceIDs selects experiences by id; empty selects all of them.
	ExperienceIDs []string
}

type TailorUsecase struct {
	store     ProfileStore
	generator service.TextGenerator
	log       *logrus.Logger
}

func NewTailorUsecase(store ProfileStore, generator service.TextGenerator) *TailorUsecase {
	return &TailorUsecase{store: store, generator: generator, log: util.Logger()}
}

// Tailor rewrites the bullets of the selected experiences for a job
// description. Every returned result has exactly as many bullets as the
// experience's stored description. Nothing is persisted.
func (uc *TailorUsecase) Tailor(ctx context.Context, userID uuid.UUID, in TailorInput) ([]model.TailorResult, error) {
	if strings.TrimSpace(in.JobDescription) == "" {
		return nil, newError(KindValidationFailed, "job description is required", nil)
	}

	profile, err := uc.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, storeFailure(err)
	}
	exps := profile.FindExperiences(in.ExperienceIDs)
	if len(exps) == 0 {
		return nil, newError(KindNoExperiencesSelected, "select at least one work experience", nil)
	}

	raw, err := uc.generator.Generate(ctx, service.GenerationRequest{
		Messages: []service.Message{
			{Role: service.RoleSystem, Content: tailorSystemPrompt},
			{Role: service.RoleUser, Content: BuildTailorPrompt(in.Company, in.JobDescription, exps)},
		},
		Temperature: tailorTemperature,
		JSONMode:    true,
	})
	if err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("tailor call failed")
		return nil, modelFailure(err)
	}

	results := ReconcileResults(raw, exps)
	if len(results) < len(exps) {
		uc.log.WithFields(logrus.Fields{
			"user_id":     userID,
			"kind":        KindMalformedModelOutput,
			"experiences": len(exps),
			"results":     len(results),
		}).Warn("tailor output did not cover every experience")
	}
	return results, nil
}

// ReconcileResults matches the model's results to exps and forces each
// bullet list to the experience's bullet count. Results follow exps order.
// An entry whose id is missing or unknown is matched to the experience at
// the same position if no other entry claimed it by id; a repeat of an id
// already claimed is ignored. Experiences with no entry are left out.
func ReconcileResults(raw string, exps []model.WorkExperience) []model.TailorResult {
	out := util.ParseOrDefault(raw, tailorOutput{})
	entries := make([]gjson.Result, len(out.Results))
	for i, r := range out.Results {
		entries[i] = gjson.ParseBytes(r)
	}

	index := make(map[string]int, len(exps))
	for i, exp := range exps {
		index[exp.ID.String()] = i
	}

	matched := make([]*gjson.Result, len(exps))
	var unmatched []int
	for pos := range entries {
		entry := entries[pos]
		if !entry.IsObject() {
			continue
		}
		id := strings.TrimSpace(util.Stringify(entry.Get("id")))
		if i, ok := index[id]; ok {
			// A repeated id is dropped rather than given to another experience.
			if matched[i] == nil {
				matched[i] = &entries[pos]
			}
			continue
		}
		unmatched = append(unmatched, pos)
	}
	for _, pos := range unmatched {
		if pos < len(exps) && matched[pos] == nil {
			matched[pos] = &entries[pos]
		}
	}

	results := make([]model.TailorResult, 0, len(exps))
	for i, exp := range exps {
		if matched[i] == nil {
			continue
		}
		bullets := util.NormalizeBullets(matched[i].Get("bullets"))
		if len(bullets) == 0 {
			bullets = util.DescriptionBullets(exp.Description)
		}
		results = append(results, model.TailorResult{
			ID:      exp.ID.String(),
			Bullets: util.ReconcileBullets(bullets, targetBullets(exp)),
		})
	}
	return results
}
