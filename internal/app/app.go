package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/shiftlog-server/api/v1"
	"github.com/godilite/shiftlog-server/internal/config"
	handler "github.com/godilite/shiftlog-server/internal/grpc"
	"github.com/godilite/shiftlog-server/internal/repository"
	"github.com/godilite/shiftlog-server/internal/service"
	"github.com/godilite/shiftlog-server/pkg/cache"
	dbbuilder "github.com/godilite/shiftlog-server/pkg/database"
	grpcsrv "github.com/godilite/shiftlog-server/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	journalDB  *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	journalDB, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.JournalDBDriver),
		dbbuilder.WithDataSource(cfg.JournalDBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("journal database init failed: %w", err)
	}
	logger.Info("Journal database initialized", zap.String("path", cfg.JournalDBPath))

	journal := repository.NewAppendJournalRepository(journalDB)
	if err := journal.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("journal schema init failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	workbookRepo := repository.NewWorkbookRepository(cfg.SamplesPerSpout)
	logger.Info("Workbook store initialized",
		zap.String("path", cfg.WorkbookPath),
		zap.Int("spouts_per_shift", cfg.SpoutsPerShift),
		zap.Int("samples_per_spout", cfg.SamplesPerSpout))

	window := service.ToleranceWindow{
		Target:    cfg.TargetWeight,
		Tolerance: cfg.Tolerance,
	}
	shiftService := service.NewShiftService(workbookRepo, journal, window, cfg.WorkbookPath, logger)

	grpcHandlers := handler.NewGRPCHandlers(shiftService, cacheClient, logger, 5*time.Minute)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterShiftLogServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		journalDB:  journalDB,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("grpc shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.journalDB.Close(); err != nil {
		a.logger.Error("journal database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
