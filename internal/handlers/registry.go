package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	UserHandler         *UserHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	CompanyHandler      *CompanyHandler
	GoogleHandler       *GoogleHandler
	NotificationHandler *NotificationHandler
	AIHandler           *AIHandler
	SearchHandler       *SearchHandler
}
