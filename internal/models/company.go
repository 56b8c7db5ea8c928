package models

import "time"

// Company - зеркало ресурса /companies/admin-companies/
type Company struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Website          string    `json:"website"`
	Industry         string    `json:"industry"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	IsVerified       bool      `json:"is_verified"`
	IsActive         bool      `json:"is_active"`
	JobCount         int       `json:"job_count"`
	ApplicationCount int       `json:"application_count"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c Company) SearchFields() []string {
	return []string{c.Name, c.Industry, c.Location}
}

// CompanyStats - зеркало /companies/admin-companies/stats/
type CompanyStats struct {
	Total     int `json:"total"`
	Verified  int `json:"verified"`
	Active    int `json:"active"`
	TotalJobs int `json:"total_jobs"`
}
