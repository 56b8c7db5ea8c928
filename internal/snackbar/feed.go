package snackbar

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notice - транзиентное уведомление после действия админа.
// Живет ровно TTL и исчезает само; UI его не закрывает.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Feed - лента уведомлений одной админской сессии.
// Единый TTL для всех страниц (в оригинале он гулял от 5 до 6 секунд).
type Feed struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []Notice
	now     func() time.Time
}

func NewFeed(ttl time.Duration) *Feed {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Feed{ttl: ttl, now: time.Now}
}

// NewFeedWithClock - для тестов с управляемым временем
func NewFeedWithClock(ttl time.Duration, now func() time.Time) *Feed {
	f := NewFeed(ttl)
	f.now = now
	return f
}

// Push добавляет уведомление и возвращает его id
func (f *Feed) Push(level Level, message string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	created := f.now()
	notice := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: created,
		ExpiresAt: created.Add(f.ttl),
	}
	f.notices = append(f.notices, notice)
	return notice.ID
}

func (f *Feed) Success(message string) string {
	return f.Push(LevelSuccess, message)
}

func (f *Feed) Error(message string) string {
	return f.Push(LevelError, message)
}

// Active возвращает еще живые уведомления и попутно выбрасывает
// просроченные из ленты
func (f *Feed) Active() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	alive := f.notices[:0]
	for _, n := range f.notices {
		if n.ExpiresAt.After(now) {
			alive = append(alive, n)
		}
	}
	f.notices = alive

	out := make([]Notice, len(f.notices))
	copy(out, f.notices)
	return out
}
