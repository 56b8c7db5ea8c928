package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobhub_admin/internal/apperrors"
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/logger"
)

// Client - базовый HTTP-клиент платформенного API. Шлюз - чистый
// потребитель: токен приходит с каждым вызовом (Bearer пользователя
// либо сервисный токен воркеров) и пробрасывается как есть.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP - для тестов с httptest-сервером
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// errorPayload - форма ошибки платформы. Поле может называться
// error или message в зависимости от эндпоинта.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (p errorPayload) text() string {
	switch {
	case p.Error != "":
		return p.Error
	case p.Message != "":
		return p.Message
	default:
		return p.Detail
	}
}

// do выполняет один запрос. Не-2xx ответы превращаются в *AppError
// с Kind по статусу; транспортные ошибки - в KindNetwork. Отмена
// контекста проходит насквозь: вытесненный fetch не должен выглядеть
// как сетевой сбой.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.InternalError(fmt.Errorf("encode request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.InternalError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ctx.Err()
		}
		logger.UpstreamLog(method, path, 0, time.Since(start), err)
		return apperrors.NetworkError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NetworkError(fmt.Errorf("read response: %w", err))
	}
	logger.UpstreamLog(method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed errorPayload
		_ = json.Unmarshal(payload, &parsed)
		return apperrors.FromStatusCode(resp.StatusCode, parsed.text())
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperrors.Wrap(err, apperrors.KindServer, apperrors.CodeUpstreamError,
			"Platform API returned malformed JSON", http.StatusBadGateway)
	}
	return nil
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	return c.do(ctx, token, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, token, path string, body, out interface{}) error {
	return c.do(ctx, token, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, token, path string, body, out interface{}) error {
	return c.do(ctx, token, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, token, path string) error {
	return c.do(ctx, token, http.MethodDelete, path, nil, nil, nil)
}

// ListParams - параметры пагинации списочных эндпоинтов
type ListParams struct {
	Page     int
	PageSize int
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return q
}

// getList декодирует конверт {results, count}
func getList[T any](ctx context.Context, c *Client, token, path string, params ListParams) (listview.Page[T], error) {
	var page listview.Page[T]
	if err := c.get(ctx, token, path, params.values(), &page); err != nil {
		return listview.Page[T]{}, err
	}
	return page, nil
}
