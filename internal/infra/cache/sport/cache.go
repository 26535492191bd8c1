package sport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

const keyPrefix = "arena:sport:"

// Cache read-through кэш площадок поверх репозитория
// Ошибки Redis не возвращаются вызывающему: запрос уходит в БД
type Cache struct {
	client Client
	repo   SportRepository
	ttl    time.Duration
	log    Logger
}

// NewCache создает новый экземпляр кэша площадок
func NewCache(client Client, repo SportRepository, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		repo:   repo,
		ttl:    ttl,
		log:    log,
	}
}

// cachedSport формат хранения площадки в Redis
type cachedSport struct {
	ID                  int64            `json:"id"`
	Name                string           `json:"name"`
	BasePrice           int64            `json:"basePrice"`
	WeekendPrice        *int64           `json:"weekendPrice,omitempty"`
	OpenTime            types.TimeString `json:"openTime"`
	CloseTime           types.TimeString `json:"closeTime"`
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	IsActive            bool             `json:"isActive"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

func key(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

// GetByID возвращает площадку из кэша, при промахе читает репозиторий и сохраняет результат
// Ошибки репозитория (в том числе "не найдено") возвращаются без изменений и не кэшируются
func (c *Cache) GetByID(ctx context.Context, id int64) (*domain.Sport, error) {
	if sport, ok := c.get(ctx, id); ok {
		return sport, nil
	}

	sport, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, sport)
	return sport, nil
}

// Invalidate удаляет площадку из кэша
func (c *Cache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.log.Warn("Invalidate: failed to delete sport id=%d from cache: %v", id, err)
	}
}

func (c *Cache) get(ctx context.Context, id int64) (*domain.Sport, bool) {
	data, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("GetByID: cache read failed for sport id=%d: %v", id, err)
		}
		return nil, false
	}

	var cached cachedSport
	if err := json.Unmarshal(data, &cached); err != nil {
		c.log.Warn("GetByID: corrupted cache entry for sport id=%d: %v", id, err)
		return nil, false
	}

	return &domain.Sport{
		ID:                  cached.ID,
		Name:                cached.Name,
		BasePrice:           cached.BasePrice,
		WeekendPrice:        cached.WeekendPrice,
		OpenTime:            cached.OpenTime,
		CloseTime:           cached.CloseTime,
		SlotDurationMinutes: cached.SlotDurationMinutes,
		IsActive:            cached.IsActive,
		CreatedAt:           cached.CreatedAt,
		UpdatedAt:           cached.UpdatedAt,
	}, true
}

func (c *Cache) set(ctx context.Context, s *domain.Sport) {
	data, err := json.Marshal(cachedSport{
		ID:                  s.ID,
		Name:                s.Name,
		BasePrice:           s.BasePrice,
		WeekendPrice:        s.WeekendPrice,
		OpenTime:            s.OpenTime,
		CloseTime:           s.CloseTime,
		SlotDurationMinutes: s.SlotDurationMinutes,
		IsActive:            s.IsActive,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	})
	if err != nil {
		c.log.Warn("GetByID: failed to encode sport id=%d: %v", s.ID, err)
		return
	}

	if err := c.client.Set(ctx, key(s.ID), data, c.ttl).Err(); err != nil {
		c.log.Warn("GetByID: cache write failed for sport id=%d: %v", s.ID, err)
	}
}

// Noop заглушка инвалидации, когда кэш выключен
type Noop struct{}

func (Noop) Invalidate(context.Context, int64) {}
