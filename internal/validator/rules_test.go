package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type facetFields struct {
	Role     string `validate:"omitempty,is-user-role"`
	Status   string `validate:"omitempty,is-job-status"`
	AppState string `validate:"omitempty,is-app-status"`
	Priority string `validate:"omitempty,is-priority"`
}

// TestCustomRules_AllIsUnconstrained - "all" валидно для всех enum-правил,
// наравне с пустым значением
func TestCustomRules_AllIsUnconstrained(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(facetFields{}))
	assert.NoError(t, v.Validate(facetFields{
		Role:     "all",
		Status:   "all",
		AppState: "all",
		Priority: "all",
	}))
}

func TestCustomRules_EnumValues(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(facetFields{
		Role:     "job_seeker",
		Status:   "paused",
		AppState: "shortlisted",
		Priority: "urgent",
	}))
}

// TestCustomRules_MutationRejectsAll - в теле мутации "all" не статус:
// связка ne=all + enum-правило его отбрасывает
func TestCustomRules_MutationRejectsAll(t *testing.T) {
	t.Parallel()
	v := New()

	type statusBody struct {
		Status string `validate:"required,ne=all,is-job-status"`
	}

	assert.NoError(t, v.Validate(statusBody{Status: "paused"}))

	err := v.Validate(statusBody{Status: "all"})
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}

func TestCustomRules_RejectUnknown(t *testing.T) {
	t.Parallel()
	v := New()

	cases := []facetFields{
		{Role: "superuser"},
		{Status: "archived"},
		{AppState: "ghosted"},
		{Priority: "critical"},
	}
	for _, q := range cases {
		err := v.Validate(q)
		require.Error(t, err, "%+v", q)
		_, ok := err.(*ValidationError)
		assert.True(t, ok)
	}
}
