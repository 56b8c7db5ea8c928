package models

import "time"

// SearchQuery - зеркало /search/admin-queries/
type SearchQuery struct {
	ID           string    `json:"id"`
	Query        string    `json:"query"`
	UserEmail    string    `json:"user_email"`
	ResultsCount int       `json:"results_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (q SearchQuery) SearchFields() []string {
	return []string{q.Query, q.UserEmail}
}

// SearchStats - зеркало /search/admin-stats/
type SearchStats struct {
	TotalQueries   int      `json:"total_queries"`
	UniqueUsers    int      `json:"unique_users"`
	ZeroResultRate float64  `json:"zero_result_rate"`
	TopQueries     []string `json:"top_queries"`
}
