package models

import "time"

// Job - зеркало ресурса /jobs/admin-jobs/
type Job struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Slug              string          `json:"slug"`
	CompanyName       string          `json:"company_name"`
	Location          string          `json:"location"`
	JobType           JobType         `json:"job_type"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	RemoteOption      RemoteOption    `json:"remote_option"`
	Status            JobStatus       `json:"status"`
	IsFeatured        bool            `json:"is_featured"`
	SalaryMin         *int            `json:"salary_min"`
	SalaryMax         *int            `json:"salary_max"`
	SkillsRequired    []string        `json:"skills_required"`
	ViewsCount        int             `json:"views_count"`
	ApplicationsCount int             `json:"applications_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (j Job) SearchFields() []string {
	return []string{j.Title, j.CompanyName, j.Location}
}

// JobStats - зеркало /jobs/admin-jobs/stats/
type JobStats struct {
	Total             int `json:"total"`
	Active            int `json:"active"`
	Draft             int `json:"draft"`
	Paused            int `json:"paused"`
	Closed            int `json:"closed"`
	Filled            int `json:"filled"`
	Featured          int `json:"featured"`
	TotalViews        int `json:"total_views"`
	TotalApplications int `json:"total_applications"`
}
