package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	pb "github.com/godilite/shiftlog-server/api/v1"
	"github.com/godilite/shiftlog-server/internal/grpc/mocks"
	"github.com/godilite/shiftlog-server/internal/repository"
	"github.com/godilite/shiftlog-server/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func protoRecord() *pb.ShiftRecord {
	return &pb.ShiftRecord{
		OperatorName: "J. Moyo",
		Shift:        "Morning",
		Date:         "2025-11-03",
		Time:         "06:30",
		Spouts: []*pb.SpoutMeasurement{
			{Samples: []string{"49.4", "50.1", ""}},
			{Samples: []string{"50.0", "", ""}, Comment: "sticky valve"},
		},
	}
}

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		h := NewGRPCHandlers(&mocks.MockShiftLogService{}, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		assert.NotNil(t, h)
		assert.Equal(t, time.Minute, h.cacheTTL)
	})

	t.Run("nil service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		})
	})

	t.Run("non-positive ttl gets default", func(t *testing.T) {
		h := NewGRPCHandlers(&mocks.MockShiftLogService{}, nil, zap.NewNop(), 0)

		assert.Equal(t, defaultCacheDuration, h.cacheTTL)
	})
}

// TestHandleError tests domain error to gRPC status code mapping
func TestHandleError(t *testing.T) {
	h := NewGRPCHandlers(&mocks.MockShiftLogService{}, nil, zap.NewNop(), time.Minute)

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := h.handleError(ctx, "SubmitShift", errors.New("whatever"))
		assert.Equal(t, codes.Canceled, status.Code(err))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		err := h.handleError(ctx, "SubmitShift", errors.New("whatever"))
		assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	})

	cases := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "invalid record",
			err:      fmt.Errorf("%w: operator name is required", service.ErrInvalidRecord),
			wantCode: codes.InvalidArgument,
			wantMsg:  "operator name is required",
		},
		{
			name:     "schema mismatch",
			err:      fmt.Errorf("append: %w", repository.ErrSchemaMismatch),
			wantCode: codes.FailedPrecondition,
			wantMsg:  "workbook header does not match the expected schema",
		},
		{
			name:     "store failure",
			err:      fmt.Errorf("%w: disk full", service.ErrStoreFailure),
			wantCode: codes.Internal,
			wantMsg:  "workbook store error",
		},
		{
			name:     "unexpected error",
			err:      errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := h.handleError(context.Background(), "SubmitShift", tc.err)

			assert.Equal(t, tc.wantCode, status.Code(err))
			assert.Contains(t, status.Convert(err).Message(), tc.wantMsg)
		})
	}
}

// TestSubmitShiftHandler tests the SubmitShift RPC
func TestSubmitShiftHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("successful submit invalidates status cache", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			SubmitShiftFunc: func(ctx context.Context, rec service.ShiftRecord) (int, error) {
				assert.Equal(t, "J. Moyo", rec.OperatorName)
				assert.Len(t, rec.Spouts, 2)
				assert.Equal(t, "49.4", rec.Spouts[0].Samples[0].Raw)
				return len(rec.Spouts), nil
			},
			WorkbookPathFunc: func() string { return "shifts.xlsx" },
		}

		var deleted []string
		cache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				deleted = append(deleted, keys...)
				return nil
			},
		}

		h := NewGRPCHandlers(svc, cache, zap.NewNop(), time.Minute)
		resp, err := h.SubmitShift(ctx, &pb.SubmitShiftRequest{Record: protoRecord()})

		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.GetRowsAppended())
		assert.Equal(t, []string{"grpc:workbook_status:shifts.xlsx"}, deleted)
	})

	t.Run("nil record", func(t *testing.T) {
		h := NewGRPCHandlers(&mocks.MockShiftLogService{}, nil, zap.NewNop(), time.Minute)

		_, err := h.SubmitShift(ctx, &pb.SubmitShiftRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("validation failure maps to invalid argument", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			SubmitShiftFunc: func(ctx context.Context, rec service.ShiftRecord) (int, error) {
				return 0, fmt.Errorf("%w: operator name is required", service.ErrInvalidRecord)
			},
		}

		h := NewGRPCHandlers(svc, nil, zap.NewNop(), time.Minute)
		_, err := h.SubmitShift(ctx, &pb.SubmitShiftRequest{Record: protoRecord()})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("store failure maps to internal", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			SubmitShiftFunc: func(ctx context.Context, rec service.ShiftRecord) (int, error) {
				return 0, fmt.Errorf("%w: disk full", service.ErrStoreFailure)
			},
		}

		h := NewGRPCHandlers(svc, nil, zap.NewNop(), time.Minute)
		_, err := h.SubmitShift(ctx, &pb.SubmitShiftRequest{Record: protoRecord()})

		assert.Equal(t, codes.Internal, status.Code(err))
	})

	t.Run("cache invalidation failure does not fail the submit", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			SubmitShiftFunc: func(ctx context.Context, rec service.ShiftRecord) (int, error) {
				return len(rec.Spouts), nil
			},
			WorkbookPathFunc: func() string { return "shifts.xlsx" },
		}
		cache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				return errors.New("redis down")
			},
		}

		h := NewGRPCHandlers(svc, cache, zap.NewNop(), time.Minute)
		resp, err := h.SubmitShift(ctx, &pb.SubmitShiftRequest{Record: protoRecord()})

		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.GetRowsAppended())
	})
}

// TestComputeSpoutStatsHandler tests the ComputeSpoutStats RPC
func TestComputeSpoutStatsHandler(t *testing.T) {
	h := NewGRPCHandlers(&mocks.MockShiftLogService{}, nil, zap.NewNop(), time.Minute)

	resp, err := h.ComputeSpoutStats(context.Background(), &pb.ComputeSpoutStatsRequest{
		Samples: []string{"49.4", "50.1", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, 49.8, resp.GetAverage())
	assert.Equal(t, 0.35, resp.GetStandardDeviation())
}

// TestGetOutOfSpecSpoutsHandler tests the GetOutOfSpecSpouts RPC
func TestGetOutOfSpecSpoutsHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("nil record", func(t *testing.T) {
		h := NewGRPCHandlers(&mocks.MockShiftLogService{}, nil, zap.NewNop(), time.Minute)

		_, err := h.GetOutOfSpecSpouts(ctx, &pb.GetOutOfSpecSpoutsRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("spout numbers pass through", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			OutOfSpecSpoutsFunc: func(rec service.ShiftRecord) []int {
				return []int{1, 4}
			},
		}

		h := NewGRPCHandlers(svc, nil, zap.NewNop(), time.Minute)
		resp, err := h.GetOutOfSpecSpouts(ctx, &pb.GetOutOfSpecSpoutsRequest{Record: protoRecord()})

		require.NoError(t, err)
		assert.Equal(t, []int32{1, 4}, resp.GetSpoutNumbers())
	})
}

// TestGetWorkbookStatusHandler tests the GetWorkbookStatus RPC
func TestGetWorkbookStatusHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss fetches from the store", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			WorkbookRowCountFunc: func(ctx context.Context) (int, error) { return 16, nil },
			WorkbookPathFunc:     func() string { return "shifts.xlsx" },
		}
		cache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				assert.Equal(t, "grpc:workbook_status:shifts.xlsx", key)
				return redis.Nil
			},
		}

		h := NewGRPCHandlers(svc, cache, zap.NewNop(), time.Minute)
		resp, err := h.GetWorkbookStatus(ctx, &pb.GetWorkbookStatusRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(16), resp.GetRowCount())
		assert.Equal(t, "shifts.xlsx", resp.GetWorkbookPath())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			WorkbookRowCountFunc: func(ctx context.Context) (int, error) { return 999, nil },
			WorkbookPathFunc:     func() string { return "shifts.xlsx" },
		}
		cache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				*dest.(*int) = 16
				return nil
			},
		}

		h := NewGRPCHandlers(svc, cache, zap.NewNop(), time.Minute)
		resp, err := h.GetWorkbookStatus(ctx, &pb.GetWorkbookStatusRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(16), resp.GetRowCount())
	})

	t.Run("store failure maps to internal", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			WorkbookRowCountFunc: func(ctx context.Context) (int, error) {
				return 0, fmt.Errorf("%w: file locked", service.ErrStoreFailure)
			},
			WorkbookPathFunc: func() string { return "shifts.xlsx" },
		}
		cache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error { return redis.Nil },
		}

		h := NewGRPCHandlers(svc, cache, zap.NewNop(), time.Minute)
		_, err := h.GetWorkbookStatus(ctx, &pb.GetWorkbookStatusRequest{})

		assert.Equal(t, codes.Internal, status.Code(err))
	})

	t.Run("no cache configured still serves the count", func(t *testing.T) {
		svc := &mocks.MockShiftLogService{
			WorkbookRowCountFunc: func(ctx context.Context) (int, error) { return 8, nil },
			WorkbookPathFunc:     func() string { return "shifts.xlsx" },
		}

		h := NewGRPCHandlers(svc, nil, zap.NewNop(), time.Minute)
		resp, err := h.GetWorkbookStatus(ctx, &pb.GetWorkbookStatusRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(8), resp.GetRowCount())
	})
}
