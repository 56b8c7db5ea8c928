package listview

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream эмулирует платформенный список из total записей
func fakeUpstream(total int) FetchFunc[testRow] {
	return func(ctx context.Context, page, pageSize int) (Page[testRow], error) {
		start := (page - 1) * pageSize
		var results []testRow
		for i := start; i < start+pageSize && i < total; i++ {
			results = append(results, testRow{ID: fmt.Sprintf("id-%d", i)})
		}
		return Page[testRow]{Results: results, Count: total}, nil
	}
}

// TestController_PaginationMath - 95 записей при pageSize=20 дают 5 страниц,
// на последней 15 записей
func TestController_PaginationMath(t *testing.T) {
	t.Parallel()

	c := NewController(20, func(r testRow) string { return r.ID }, fakeUpstream(95))

	items, count, err := c.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, items, 20)
	assert.Equal(t, 95, count)
	assert.Equal(t, 5, c.TotalPages())

	items, _, err = c.Load(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, items, 15)
	assert.Equal(t, 5, c.CurrentPage())
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, TotalPages(95, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
	assert.Equal(t, 6, TotalPages(101, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

// TestController_StaleFetchDiscarded - медленный первый Load вытесняется
// вторым: его результат не попадает в состояние
func TestController_StaleFetchDiscarded(t *testing.T) {
	t.Parallel()

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context, page, pageSize int) (Page[testRow], error) {
		if page == 1 {
			close(firstStarted)
			select {
			case <-release:
			case <-ctx.Done():
				return Page[testRow]{}, ctx.Err()
			}
			return Page[testRow]{Results: []testRow{{ID: "stale"}}, Count: 1}, nil
		}
		return Page[testRow]{Results: []testRow{{ID: "fresh"}}, Count: 1}, nil
	}

	c := NewController(20, func(r testRow) string { return r.ID }, fetch)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, _, firstErr = c.Load(context.Background(), 1)
	}()

	<-firstStarted
	_, _, err := c.Load(context.Background(), 2)
	require.NoError(t, err)

	close(release)
	wg.Wait()

	// Вытесненный запрос сообщает об отмене, состояние - от свежего
	assert.ErrorIs(t, firstErr, context.Canceled)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
	assert.Equal(t, 2, c.CurrentPage())
}

// TestController_ErrorKeepsState - ошибка загрузки не трогает прежнюю выборку
func TestController_ErrorKeepsState(t *testing.T) {
	t.Parallel()

	failNext := false
	fetch := func(ctx context.Context, page, pageSize int) (Page[testRow], error) {
		if failNext {
			return Page[testRow]{}, fmt.Errorf("boom")
		}
		return Page[testRow]{Results: []testRow{{ID: "ok"}}, Count: 1}, nil
	}

	c := NewController(20, func(r testRow) string { return r.ID }, fetch)
	_, _, err := c.Load(context.Background(), 1)
	require.NoError(t, err)

	failNext = true
	_, _, err = c.Load(context.Background(), 2)
	require.Error(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].ID)
	assert.Equal(t, 1, c.CurrentPage())
}

// TestController_ReplaceAndRemove - примирение локальной копии после мутаций
func TestController_ReplaceAndRemove(t *testing.T) {
	t.Parallel()

	c := NewController(20, func(r testRow) string { return r.ID }, fakeUpstream(3))
	_, _, err := c.Load(context.Background(), 1)
	require.NoError(t, err)

	// Replace по id
	assert.True(t, c.Replace(testRow{ID: "id-1", Name: "renamed"}))
	items := c.Items()
	assert.Equal(t, "renamed", items[1].Name)
	assert.Len(t, items, 3)

	// Replace несуществующей записи - no-op
	assert.False(t, c.Replace(testRow{ID: "missing"}))

	// Remove уменьшает и выборку, и count
	assert.True(t, c.Remove("id-0"))
	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.Count())

	assert.False(t, c.Remove("id-0"))
	assert.Equal(t, 2, c.Count())
}
