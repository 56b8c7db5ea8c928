package models

import "time"

// Application - зеркало ресурса /applications/admin-applications/
type Application struct {
	ID             string            `json:"id"`
	JobTitle       string            `json:"job_title"`
	CompanyName    string            `json:"company_name"`
	ApplicantName  string            `json:"applicant_name"`
	ApplicantEmail string            `json:"applicant_email"`
	Status         ApplicationStatus `json:"status"`
	EmployerNotes  string            `json:"employer_notes"`
	AppliedAt      time.Time         `json:"applied_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (a Application) SearchFields() []string {
	return []string{a.JobTitle, a.CompanyName, a.ApplicantName, a.ApplicantEmail}
}

// ApplicationStats - зеркало /applications/admin-applications/stats/
type ApplicationStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Reviewing   int `json:"reviewing"`
	Shortlisted int `json:"shortlisted"`
	Interviewed int `json:"interviewed"`
	Offered     int `json:"offered"`
	Hired       int `json:"hired"`
	Rejected    int `json:"rejected"`
	Withdrawn   int `json:"withdrawn"`
}
