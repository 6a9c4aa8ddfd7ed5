package dto

import (
	"encoding/json"
	"testing"

	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailorRequest_Validate(t *testing.T) {
	var req TailorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"company": "Acme", "experienceIds": [1, "e2", null]}`), &req))

	err := req.Validate()
	require.Error(t, err)
	formErr := util.FormErrorFromValidation(err)
	assert.Equal(t, "required", formErr.Errors["jobDescription"])
	assert.Equal(t, "jobDescription is required", formErr.Message)

	req.JobDescription = "Go"
	assert.NoError(t, req.Validate())
	assert.Equal(t, []string{"1", "e2"}, req.IDs())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	var req UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Ada", "email": "not-an-email"}`), &req))

	formErr := util.FormErrorFromValidation(req.Validate())
	assert.Equal(t, "email", formErr.Errors["email"])
	assert.Equal(t, "email must be a valid email address", formErr.Message)

	require.NoError(t, json.Unmarshal([]byte(`{"name": "Ada", "email": "ada@example.com", "skills": []}`), &req))
	assert.NoError(t, req.Validate())

	update := req.ToUpdate()
	assert.NotNil(t, update.Skills)
	assert.Nil(t, update.WorkExperience)
}
