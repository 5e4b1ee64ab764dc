package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/godilite/shiftlog-server/internal/repository/models"
	"go.uber.org/zap"
)

const (
	storeTimeout   = 5 * time.Second
	journalTimeout = 2 * time.Second
)

var (
	ErrInvalidRecord = errors.New("invalid shift record")
	ErrStoreFailure  = errors.New("store failure")
)

// ShiftService validates shift records, enriches them with derived
// statistics and hands them to the append store.
type ShiftService struct {
	store        ShiftRepository
	journal      AppendJournal
	window       ToleranceWindow
	workbookPath string
	logger       *zap.Logger
}

// NewShiftService creates a new ShiftService instance. The journal is
// optional; everything else is required.
func NewShiftService(store ShiftRepository, journal AppendJournal, window ToleranceWindow, workbookPath string, logger *zap.Logger) *ShiftService {
	if store == nil {
		panic("store must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ShiftService{
		store:        store,
		journal:      journal,
		window:       window,
		workbookPath: workbookPath,
		logger:       logger,
	}
}

func validateRecord(rec ShiftRecord) error {
	if strings.TrimSpace(rec.OperatorName) == "" {
		return fmt.Errorf("%w: operator name is required", ErrInvalidRecord)
	}
	if !rec.Shift.Valid() {
		return fmt.Errorf("%w: unknown shift %q", ErrInvalidRecord, rec.Shift)
	}
	if len(rec.Spouts) == 0 {
		return fmt.Errorf("%w: record has no spout measurements", ErrInvalidRecord)
	}
	return nil
}

// recomputeDerived rebuilds every spout's Average and StdDev from the
// raw samples. Caller-supplied derived values are never trusted, and
// the fresh slices isolate the service from the caller's record.
func recomputeDerived(rec ShiftRecord) ShiftRecord {
	spouts := make([]SpoutMeasurement, len(rec.Spouts))
	for i, sp := range rec.Spouts {
		samples := make([]Sample, len(sp.Samples))
		copy(samples, sp.Samples)

		stats := ComputeStats(samples)
		spouts[i] = SpoutMeasurement{
			Samples: samples,
			Average: stats.Average,
			StdDev:  stats.StdDev,
			Comment: sp.Comment,
		}
	}
	rec.Spouts = spouts
	return rec
}

// SubmitShift validates the record, recomputes derived statistics and
// appends one row per spout to the workbook. A validation failure
// prevents any persistence attempt; a persistence failure leaves the
// caller's record intact for retry. No internal retry is performed
// since an append is not idempotent.
func (s *ShiftService) SubmitShift(ctx context.Context, rec ShiftRecord) (int, error) {
	if err := validateRecord(rec); err != nil {
		return 0, err
	}

	rec = recomputeDerived(rec)

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	rows, err := s.store.AppendShift(storeCtx, rec, s.workbookPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	s.logger.Info("shift appended",
		zap.String("operator", rec.OperatorName),
		zap.String("shift", string(rec.Shift)),
		zap.String("path", s.workbookPath),
		zap.Int("rows", rows))

	if s.journal != nil {
		jCtx, cancelJournal := context.WithTimeout(ctx, journalTimeout)
		defer cancelJournal()

		receipt := models.AppendReceipt{
			WorkbookPath: s.workbookPath,
			OperatorName: rec.OperatorName,
			Shift:        string(rec.Shift),
			RowsAppended: rows,
			AppendedAt:   time.Now().UTC(),
		}
		// The workbook is the source of truth; failing the call here
		// would invite a duplicate append on retry.
		if err := s.journal.RecordAppend(jCtx, receipt); err != nil {
			s.logger.Warn("append journal write failed", zap.Error(err))
		}
	}

	return rows, nil
}

// SpoutStats computes the derived statistics for one spout's samples.
// Pure passthrough for incremental use while the operator types.
func (s *ShiftService) SpoutStats(samples []Sample) Stats {
	return ComputeStats(samples)
}

// OutOfSpecSpouts returns the 1-based spout numbers with at least one
// sample outside the configured tolerance window.
func (s *ShiftService) OutOfSpecSpouts(rec ShiftRecord) []int {
	return SummarizeOutOfSpec(rec, s.window)
}

// WorkbookRowCount returns the number of data rows currently in the
// configured workbook; 0 when the file does not exist yet.
func (s *ShiftService) WorkbookRowCount(ctx context.Context) (int, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	n, err := s.store.RowCount(storeCtx, s.workbookPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return n, nil
}

// Window returns the configured tolerance window.
func (s *ShiftService) Window() ToleranceWindow {
	return s.window
}

// WorkbookPath returns the configured workbook destination.
func (s *ShiftService) WorkbookPath() string {
	return s.workbookPath
}
