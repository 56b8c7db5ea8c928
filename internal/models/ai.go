package models

import "time"

// AIMetrics - зеркало /ai/admin-metrics/. Дашборд только читает
// метрики; сами модели обучаются на платформе.
type AIMetrics struct {
	RecommendationAccuracy float64    `json:"recommendation_accuracy"`
	MatchScoreAverage      float64    `json:"match_score_average"`
	RecommendationsServed  int        `json:"recommendations_served"`
	FeedbackPositive       int        `json:"feedback_positive"`
	FeedbackNegative       int        `json:"feedback_negative"`
	LastTrainedAt          *time.Time `json:"last_trained_at"`
	ModelVersion           string     `json:"model_version"`
}

// AISettings - зеркало /ai/admin-settings/
type AISettings struct {
	RecommendationsEnabled bool    `json:"recommendations_enabled"`
	MinMatchScore          float64 `json:"min_match_score"`
	MaxRecommendations     int     `json:"max_recommendations"`
	RetrainIntervalDays    int     `json:"retrain_interval_days"`
}

// RetrainResult - ответ /ai/admin-actions/retrain-models/
type RetrainResult struct {
	Started bool   `json:"started"`
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}
