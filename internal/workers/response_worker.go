package workers

import (
	"context"
	"time"

	"jobhub_admin/internal/logger"
	"jobhub_admin/internal/upstream"
)

// ResponseWorker периодически просит платформу опросить входящие
// Gmail-ответы. Ходит с сервисным токеном: запроса админа в фоне нет.
type ResponseWorker struct {
	google       *upstream.GoogleClient
	serviceToken string
	interval     time.Duration
}

func NewResponseWorker(google *upstream.GoogleClient, serviceToken string, interval time.Duration) *ResponseWorker {
	return &ResponseWorker{
		google:       google,
		serviceToken: serviceToken,
		interval:     interval,
	}
}

// Start запускает фоновый опрос. interval <= 0 выключает воркер.
func (w *ResponseWorker) Start(ctx context.Context) {
	if w.interval <= 0 || w.serviceToken == "" {
		logger.Info("Response worker disabled")
		return
	}
	go w.pollResponses(ctx)
}

func (w *ResponseWorker) pollResponses(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Response worker started", "interval", w.interval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("Response worker stopped")
			return
		case <-ticker.C:
			n, err := w.google.CheckResponses(ctx, w.serviceToken)
			logger.WorkerLog("response_worker", "check_responses", err)
			if err == nil && n > 0 {
				logger.Info("New email responses classified", "count", n)
			}
		}
	}
}
