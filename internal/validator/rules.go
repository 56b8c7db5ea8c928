package validator

import (
	"github.com/go-playground/validator/v10"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

// Кастомные правила для enum-полей платформы. Пустое значение
// пропускается - за обязательность отвечает тег required. Значение
// "all" тоже валидно: в фасетах оно означает "без ограничения".
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("is-user-role", isUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("is-job-status", isJobStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("is-app-status", isApplicationStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("is-priority", isPriority); err != nil {
		return err
	}
	return nil
}

func isUnconstrained(value string) bool {
	return value == "" || value == listview.FacetAll
}

func isUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if isUnconstrained(value) {
		return true
	}
	for _, role := range models.ValidUserRoles {
		if value == string(role) {
			return true
		}
	}
	return false
}

func isJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if isUnconstrained(value) {
		return true
	}
	for _, status := range models.ValidJobStatuses {
		if value == string(status) {
			return true
		}
	}
	return false
}

func isApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if isUnconstrained(value) {
		return true
	}
	for _, status := range models.ValidApplicationStatuses {
		if value == string(status) {
			return true
		}
	}
	return false
}

func isPriority(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if isUnconstrained(value) {
		return true
	}
	for _, p := range models.ValidNotificationPriorities {
		if value == string(p) {
			return true
		}
	}
	return false
}
