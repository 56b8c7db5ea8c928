package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"jobhub_admin/internal/config"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services/dto"
	"jobhub_admin/internal/snackbar"
	"jobhub_admin/internal/upstream"
)

// ============ СЕРВИС СТРАНИЦЫ AI-ДАШБОРДА ============

// AIService - страница без списка: метрики + настройки + две кнопки.
// Лента уведомлений все равно per-admin, как и на списочных страницах.
type AIService struct {
	ai *upstream.AIClient

	mu    sync.Mutex
	feeds map[string]*snackbar.Feed
}

func NewAIService(ai *upstream.AIClient) *AIService {
	return &AIService{
		ai:    ai,
		feeds: make(map[string]*snackbar.Feed),
	}
}

func (s *AIService) feed(adminID string) *snackbar.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.feeds[adminID]; ok {
		return f
	}
	f := snackbar.NewFeed(config.GetConfig().SnackbarTTL())
	s.feeds[adminID] = f
	return f
}

// Dashboard грузит метрики и настройки параллельно. В отличие от
// списочных stats обе половины обязательны: без них страница пустая.
func (s *AIService) Dashboard(ctx context.Context, token string) (dto.AIDashboardResponse, error) {
	var (
		metrics  models.AIMetrics
		settings models.AISettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.ai.Metrics(gctx, token)
		metrics = m
		return err
	})
	g.Go(func() error {
		st, err := s.ai.Settings(gctx, token)
		settings = st
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.AIDashboardResponse{}, err
	}

	return dto.AIDashboardResponse{Metrics: metrics, Settings: settings}, nil
}

func (s *AIService) UpdateSettings(ctx context.Context, adminID, token string, req dto.UpdateAISettingsRequest) (models.AISettings, error) {
	feed := s.feed(adminID)

	updated, err := s.ai.UpdateSettings(ctx, token, req.Settings())
	if err != nil {
		feed.Error("Failed to save AI settings")
		return models.AISettings{}, err
	}

	feed.Success("AI settings saved")
	return updated, nil
}

// RetrainModels запускает переобучение на платформе; задача асинхронная,
// шлюз лишь показывает подтверждение запуска
func (s *AIService) RetrainModels(ctx context.Context, adminID, token string) (models.RetrainResult, error) {
	feed := s.feed(adminID)

	result, err := s.ai.RetrainModels(ctx, token)
	if err != nil {
		feed.Error("Failed to start model retraining")
		return models.RetrainResult{}, err
	}

	if result.Started {
		feed.Success("Model retraining started")
	} else {
		feed.Push(snackbar.LevelInfo, result.Message)
	}
	return result, nil
}

func (s *AIService) Notices(adminID string) []snackbar.Notice {
	return s.feed(adminID).Active()
}
