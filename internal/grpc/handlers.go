package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "github.com/godilite/shiftlog-server/api/v1"
	"github.com/godilite/shiftlog-server/internal/repository"
	"github.com/godilite/shiftlog-server/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultCacheDuration = 5 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyWorkbookStatus CacheKeyType = "grpc:workbook_status"
)

type GRPCHandlers struct {
	pb.UnimplementedShiftLogServer
	shifts   ShiftLogService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(shifts ShiftLogService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if shifts == nil {
		panic("nil ShiftLogService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		shifts:   shifts,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func statusKey(prefix CacheKeyType, path string) string {
	return fmt.Sprintf("%s:%s", prefix, path)
}

func recordFromProto(p *pb.ShiftRecord) service.ShiftRecord {
	spouts := make([]service.SpoutMeasurement, len(p.GetSpouts()))
	for i, sp := range p.GetSpouts() {
		spouts[i] = service.SpoutMeasurement{
			Samples: samplesFromProto(sp.GetSamples()),
			Comment: sp.GetComment(),
		}
	}
	return service.ShiftRecord{
		OperatorName:    p.GetOperatorName(),
		Shift:           service.Shift(p.GetShift()),
		Date:            p.GetDate(),
		Time:            p.GetTime(),
		Spouts:          spouts,
		GeneralComments: p.GetGeneralComments(),
	}
}

func samplesFromProto(raw []string) []service.Sample {
	samples := make([]service.Sample, len(raw))
	for i, r := range raw {
		samples[i] = service.Sample{Raw: r}
	}
	return samples
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrInvalidRecord):
		s.logger.Info("invalid shift record", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, repository.ErrSchemaMismatch):
		s.logger.Error("workbook schema mismatch", zap.String("op", op), zap.Error(err))
		return status.Error(codes.FailedPrecondition, "workbook header does not match the expected schema")
	case errors.Is(err, service.ErrStoreFailure):
		s.logger.Error("store failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "workbook store error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) SubmitShift(ctx context.Context, req *pb.SubmitShiftRequest) (*pb.SubmitShiftResponse, error) {
	if req.GetRecord() == nil {
		return nil, status.Error(codes.InvalidArgument, "shift record is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	rows, err := s.shifts.SubmitShift(ctx, recordFromProto(req.GetRecord()))
	if err != nil {
		return nil, s.handleError(ctx, "SubmitShift", err)
	}

	// The workbook grew; drop the cached status so the next read
	// reflects the new row count.
	if s.cache != nil {
		key := statusKey(cacheKeyWorkbookStatus, s.shifts.WorkbookPath())
		if err := s.cache.Del(ctx, key); err != nil {
			s.logger.Warn("failed to invalidate status cache", zap.String("key", key), zap.Error(err))
		}
	}

	return &pb.SubmitShiftResponse{RowsAppended: int64(rows)}, nil
}

func (s *GRPCHandlers) ComputeSpoutStats(ctx context.Context, req *pb.ComputeSpoutStatsRequest) (*pb.ComputeSpoutStatsResponse, error) {
	stats := s.shifts.SpoutStats(samplesFromProto(req.GetSamples()))
	return &pb.ComputeSpoutStatsResponse{
		Average:           stats.Average,
		StandardDeviation: stats.StdDev,
	}, nil
}

func (s *GRPCHandlers) GetOutOfSpecSpouts(ctx context.Context, req *pb.GetOutOfSpecSpoutsRequest) (*pb.GetOutOfSpecSpoutsResponse, error) {
	if req.GetRecord() == nil {
		return nil, status.Error(codes.InvalidArgument, "shift record is required")
	}

	indices := s.shifts.OutOfSpecSpouts(recordFromProto(req.GetRecord()))
	numbers := make([]int32, len(indices))
	for i, n := range indices {
		numbers[i] = int32(n)
	}
	return &pb.GetOutOfSpecSpoutsResponse{SpoutNumbers: numbers}, nil
}

func (s *GRPCHandlers) GetWorkbookStatus(ctx context.Context, req *pb.GetWorkbookStatusRequest) (*pb.GetWorkbookStatusResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	path := s.shifts.WorkbookPath()
	cacheKey := statusKey(cacheKeyWorkbookStatus, path)

	count, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (int, error) {
		return s.shifts.WorkbookRowCount(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetWorkbookStatus", err)
	}

	return &pb.GetWorkbookStatusResponse{
		RowCount:     int64(count),
		WorkbookPath: path,
	}, nil
}
