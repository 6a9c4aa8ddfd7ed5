package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestProfileGet_FillsEmptyArrays(t *testing.T) {
	userID := uuid.New()
	uc := NewProfileUsecase(newMemoryStore(userID, model.Profile{Name: "Ada"}))

	p, err := uc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.NotNil(t, p.WorkExperience)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Skills)

	_, err = uc.Get(context.Background(), uuid.New())
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestProfileUpdate_MergesAndNormalizes(t *testing.T) {
	userID := uuid.New()
	store := newMemoryStore(userID, model.Profile{
		Name:     "Ada",
		Email:    "ada@example.com",
		Location: "London",
		Skills:   []string{"COBOL"},
	})
	uc := NewProfileUsecase(store)

	saved, err := uc.Update(context.Background(), userID, model.ProfileUpdate{
		Name:  ptr("Ada Lovelace"),
		Email: ptr("ada@example.com"),
		WorkExperience: []model.WorkExperience{
			{Company: "Acme", Title: "Engineer", Description: "Built X\nShipped Y"},
			{ID: "keep", Company: "Globex", Description: "One thing only"},
		},
		Skills: []string{"Go", "Go", "SQL"},
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", saved.Name)
	assert.Equal(t, "London", saved.Location)
	assert.Equal(t, []string{"Go", "SQL"}, saved.Skills)
	require.Len(t, saved.WorkExperience, 2)
	assert.NotEmpty(t, saved.WorkExperience[0].ID)
	assert.Equal(t, "• Built X\n• Shipped Y", saved.WorkExperience[0].Description)
	assert.Equal(t, model.RecordID("keep"), saved.WorkExperience[1].ID)
	assert.Equal(t, "One thing only", saved.WorkExperience[1].Description)
	assert.Equal(t, int64(2), saved.Version)
	assert.Equal(t, saved, store.get(userID))
}

func TestProfileUpdate_RequiresNameAndEmail(t *testing.T) {
	userID := uuid.New()
	store := newMemoryStore(userID, model.Profile{Name: "Ada"})
	uc := NewProfileUsecase(store)

	_, err := uc.Update(context.Background(), userID, model.ProfileUpdate{Email: ptr("a@b.c")}, 0)
	assert.Equal(t, KindValidationFailed, KindOf(err))

	_, err = uc.Update(context.Background(), userID, model.ProfileUpdate{Name: ptr("Ada"), Email: ptr(" ")}, 0)
	assert.Equal(t, KindValidationFailed, KindOf(err))
	assert.Zero(t, store.writes)
}

func TestProfileUpdate_StaleVersion(t *testing.T) {
	userID := uuid.New()
	store := newMemoryStore(userID, model.Profile{Name: "Ada", Version: 3})
	uc := NewProfileUsecase(store)

	_, err := uc.Update(context.Background(), userID, model.ProfileUpdate{Name: ptr("Ada"), Email: ptr("a@b.c")}, 2)
	assert.Equal(t, KindProfileConflict, KindOf(err))

	saved, err := uc.Update(context.Background(), userID, model.ProfileUpdate{Name: ptr("Ada"), Email: ptr("a@b.c")}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.Version)
}
