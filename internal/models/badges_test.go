package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUserBadge_Priority - неактивность важнее неверифицированности
func TestUserBadge_Priority(t *testing.T) {
	t.Parallel()

	// Неактивный И неверифицированный - побеждает Inactive
	badge := UserBadge(AdminUser{IsActive: false, IsVerified: false})
	assert.Equal(t, Badge{Label: "Inactive", Tone: ToneDanger}, badge)

	badge = UserBadge(AdminUser{IsActive: true, IsVerified: false})
	assert.Equal(t, Badge{Label: "Unverified", Tone: ToneWarning}, badge)

	badge = UserBadge(AdminUser{IsActive: true, IsVerified: true})
	assert.Equal(t, Badge{Label: "Active", Tone: ToneSuccess}, badge)
}

// TestJobBadge - featured учитывается только среди активных вакансий
func TestJobBadge(t *testing.T) {
	t.Parallel()

	// Не-активный статус показывается как есть, даже если featured
	badge := JobBadge(Job{Status: JobStatusPaused, IsFeatured: true})
	assert.Equal(t, Badge{Label: "Paused", Tone: ToneWarning}, badge)

	badge = JobBadge(Job{Status: JobStatusActive, IsFeatured: true})
	assert.Equal(t, Badge{Label: "Featured", Tone: ToneInfo}, badge)

	badge = JobBadge(Job{Status: JobStatusActive})
	assert.Equal(t, Badge{Label: "Active", Tone: ToneSuccess}, badge)

	badge = JobBadge(Job{Status: JobStatusClosed})
	assert.Equal(t, Badge{Label: "Closed", Tone: ToneDanger}, badge)
}

func TestApplicationBadge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ToneSuccess, ApplicationBadge(Application{Status: ApplicationStatusHired}).Tone)
	assert.Equal(t, ToneSuccess, ApplicationBadge(Application{Status: ApplicationStatusOffered}).Tone)
	assert.Equal(t, ToneDanger, ApplicationBadge(Application{Status: ApplicationStatusRejected}).Tone)
	assert.Equal(t, ToneWarning, ApplicationBadge(Application{Status: ApplicationStatusPending}).Tone)
	assert.Equal(t, ToneInfo, ApplicationBadge(Application{Status: ApplicationStatusReviewing}).Tone)
}

func TestIntegrationBadge(t *testing.T) {
	t.Parallel()

	badge := IntegrationBadge(GoogleIntegration{Status: IntegrationStatusConnected, AutoApplyEnabled: true})
	assert.Equal(t, "Auto-apply on", badge.Label)

	badge = IntegrationBadge(GoogleIntegration{Status: IntegrationStatusConnected})
	assert.Equal(t, "Connected", badge.Label)

	badge = IntegrationBadge(GoogleIntegration{Status: IntegrationStatusDisconnected})
	assert.Equal(t, Badge{Label: "Disconnected", Tone: ToneNeutral}, badge)

	badge = IntegrationBadge(GoogleIntegration{Status: IntegrationStatusError})
	assert.Equal(t, ToneDanger, badge.Tone)
}

// TestAdminUser_SearchFields_NilProfile - отсутствующий профиль не паникует
func TestAdminUser_SearchFields_NilProfile(t *testing.T) {
	t.Parallel()

	u := AdminUser{Email: "a@b.kz", FirstName: "A", LastName: "B"}
	assert.NotPanics(t, func() { u.SearchFields() })
	assert.Equal(t, []string{"a@b.kz", "A", "B"}, u.SearchFields())

	u.Profile = &Profile{Headline: "Go developer", Location: "Almaty"}
	assert.Contains(t, u.SearchFields(), "Go developer")
	assert.Contains(t, u.SearchFields(), "Almaty")
}

func TestAdminUser_FullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alice Johnson", AdminUser{FirstName: "Alice", LastName: "Johnson"}.FullName())
	assert.Equal(t, "Alice", AdminUser{FirstName: "Alice"}.FullName())
	assert.Equal(t, "Johnson", AdminUser{LastName: "Johnson"}.FullName())
	assert.Equal(t, "", AdminUser{}.FullName())
}
