package dto

import "jobhub_admin/internal/models"

type UpdateAISettingsRequest struct {
	RecommendationsEnabled *bool    `json:"recommendations_enabled" validate:"required"`
	MinMatchScore          *float64 `json:"min_match_score" validate:"required,min=0,max=100"`
	MaxRecommendations     *int     `json:"max_recommendations" validate:"required,min=1,max=100"`
	RetrainIntervalDays    *int     `json:"retrain_interval_days" validate:"required,min=1"`
}

func (r UpdateAISettingsRequest) Settings() models.AISettings {
	return models.AISettings{
		RecommendationsEnabled: *r.RecommendationsEnabled,
		MinMatchScore:          *r.MinMatchScore,
		MaxRecommendations:     *r.MaxRecommendations,
		RetrainIntervalDays:    *r.RetrainIntervalDays,
	}
}

type AIDashboardResponse struct {
	Metrics  models.AIMetrics  `json:"metrics"`
	Settings models.AISettings `json:"settings"`
}
