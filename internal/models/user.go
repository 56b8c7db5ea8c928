package models

import "time"

// Profile - вложенный профиль соискателя. Платформа может его не отдавать,
// поэтому доступ всегда через nil-safe методы AdminUser.
type Profile struct {
	Headline string `json:"headline"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type Experience struct {
	Company   string     `json:"company"`
	Title     string     `json:"title"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Field  string `json:"field"`
}

// AdminUser - зеркало ресурса /users/admin-users/. Никаких инвариантов
// шлюз не навязывает: копия одноразовая, источник истины - платформа.
type AdminUser struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Role        UserRole     `json:"role"`
	IsActive    bool         `json:"is_active"`
	IsVerified  bool         `json:"is_verified"`
	IsStaff     bool         `json:"is_staff"`
	IsSuperuser bool         `json:"is_superuser"`
	DateJoined  time.Time    `json:"date_joined"`
	LastLogin   *time.Time   `json:"last_login"`
	Profile     *Profile     `json:"profile,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	Education   []Education  `json:"education,omitempty"`
}

// FullName возвращает "First Last" без лишних пробелов
func (u AdminUser) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// SearchFields - поля для free-text поиска: email, имена, headline.
// Отсутствующий профиль не матчится, но и не паникует.
func (u AdminUser) SearchFields() []string {
	fields := []string{u.Email, u.FirstName, u.LastName}
	if u.Profile != nil {
		fields = append(fields, u.Profile.Headline, u.Profile.Location)
	}
	return fields
}

// UserStats - зеркало /users/admin-users/stats/
type UserStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Verified    int `json:"verified"`
	JobSeekers  int `json:"job_seekers"`
	Employers   int `json:"employers"`
	Admins      int `json:"admins"`
	NewThisWeek int `json:"new_this_week"`
}
