package services

import "jobhub_admin/internal/upstream"

// ============ КОНТЕЙНЕР СЕРВИСОВ ============

// ServiceContainer собирает сервисы всех страниц дашборда
type ServiceContainer struct {
	Users         *UserService
	Jobs          *JobService
	Applications  *ApplicationService
	Companies     *CompanyService
	Google        *GoogleService
	Notifications *NotificationService
	AI            *AIService
	Search        *SearchService
}

func NewServiceContainer(client *upstream.Client) *ServiceContainer {
	return &ServiceContainer{
		Users:         NewUserService(upstream.NewUsersClient(client)),
		Jobs:          NewJobService(upstream.NewJobsClient(client)),
		Applications:  NewApplicationService(upstream.NewApplicationsClient(client)),
		Companies:     NewCompanyService(upstream.NewCompaniesClient(client)),
		Google:        NewGoogleService(upstream.NewGoogleClient(client)),
		Notifications: NewNotificationService(upstream.NewNotificationsClient(client)),
		AI:            NewAIService(upstream.NewAIClient(client)),
		Search:        NewSearchService(upstream.NewSearchClient(client)),
	}
}
