package grpc

import (
	"context"
	"time"

	"github.com/godilite/shiftlog-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type ShiftLogService interface {
	SubmitShift(ctx context.Context, rec service.ShiftRecord) (int, error)
	SpoutStats(samples []service.Sample) service.Stats
	OutOfSpecSpouts(rec service.ShiftRecord) []int
	WorkbookRowCount(ctx context.Context) (int, error)
	WorkbookPath() string
}
