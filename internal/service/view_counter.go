package service

import (
	"context"
	"fmt"
	"time"

	"lernraum_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ViewCounterService zählt Seitenaufrufe in Redis. Die Zähler sind
// Komfortdaten: fällt Redis aus, wird der Aufruf trotzdem beantwortet.
type ViewCounterService struct {
	Redis *redis.Client
}

func NewViewCounterService(rdb *redis.Client) *ViewCounterService {
	return &ViewCounterService{Redis: rdb}
}

// Hit erhöht den Zähler und liefert den neuen Stand. 0 bei Redis-Fehlern.
func (s *ViewCounterService) Hit(ctx context.Context, kind, id string) int64 {
	if s.Redis == nil {
		return 0
	}
	rctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	count, err := s.Redis.Incr(rctx, viewKey(kind, id)).Result()
	if err != nil {
		logger.Log.Warn("view counter unavailable", zap.String("kind", kind), zap.Error(err))
		return 0
	}
	return count
}

// Count liest den Zählerstand ohne ihn zu erhöhen.
func (s *ViewCounterService) Count(ctx context.Context, kind, id string) int64 {
	if s.Redis == nil {
		return 0
	}
	rctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	count, err := s.Redis.Get(rctx, viewKey(kind, id)).Int64()
	if err != nil {
		return 0
	}
	return count
}

func viewKey(kind, id string) string {
	return fmt.Sprintf("views:%s:%s", kind, id)
}
