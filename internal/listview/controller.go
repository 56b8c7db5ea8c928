package listview

import (
	"context"
	"sync"
)

// Page - конверт списочных эндпоинтов платформы: {results, count}
type Page[T any] struct {
	Results []T `json:"results"`
	Count   int `json:"count"`
}

// FetchFunc загружает страницу с платформы. Обязана уважать ctx.
type FetchFunc[T any] func(ctx context.Context, page, pageSize int) (Page[T], error)

// Controller - состояние одного списка одной страницы дашборда:
// текущая страница, последняя загруженная выборка, общий count.
// Платформа - источник истины пагинации; контроллер никогда не
// нарезает полный список сам.
//
// Быстрые перелистывания не гонятся друг с другом: новый Load
// отменяет незавершенный предыдущий, а его опоздавший результат
// отбрасывается по номеру поколения.
type Controller[T any] struct {
	mu       sync.Mutex
	fetch    FetchFunc[T]
	idOf     func(T) string
	items    []T
	count    int
	page     int
	pageSize int
	cancel   context.CancelFunc
	gen      uint64
}

func NewController[T any](pageSize int, idOf func(T) string, fetch FetchFunc[T]) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Controller[T]{
		fetch:    fetch,
		idOf:     idOf,
		page:     1,
		pageSize: pageSize,
	}
}

// Load загружает страницу page (1-based). Если другой Load уже в полете,
// он отменяется; если его результат придет позже - он устарел и не
// попадает в состояние. При ошибке состояние не меняется.
func (c *Controller[T]) Load(ctx context.Context, page int) ([]T, int, error) {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	pageSize := c.pageSize
	c.mu.Unlock()

	result, err := c.fetch(fetchCtx, page, pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Запрос был вытеснен более новым: результат устарел
		cancel()
		return nil, 0, context.Canceled
	}
	c.cancel = nil
	cancel()

	if err != nil {
		return nil, 0, err
	}

	c.page = page
	c.items = result.Results
	c.count = result.Count
	return c.snapshot(), c.count, nil
}

// Items возвращает копию текущей выборки
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller[T]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Controller[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) PageSize() int {
	return c.pageSize
}

// TotalPages = ceil(count / pageSize)
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TotalPages(c.count, c.pageSize)
}

// Replace заменяет запись с тем же id после успешной мутации.
// Полный re-fetch не нужен: платформа уже подтвердила изменение.
func (c *Controller[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove выбрасывает запись после успешного удаления на платформе
func (c *Controller[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if c.count > 0 {
				c.count--
			}
			return true
		}
	}
	return false
}

func (c *Controller[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// TotalPages считает число страниц для count записей
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
