package mocks

import (
	"context"
	"errors"

	"github.com/godilite/shiftlog-server/internal/service"
)

// MockShiftLogService is a mock implementation of the ShiftLogService
// interface for testing the handler layer. It uses function-based
// mocking for flexibility.
type MockShiftLogService struct {
	SubmitShiftFunc      func(ctx context.Context, rec service.ShiftRecord) (int, error)
	SpoutStatsFunc       func(samples []service.Sample) service.Stats
	OutOfSpecSpoutsFunc  func(rec service.ShiftRecord) []int
	WorkbookRowCountFunc func(ctx context.Context) (int, error)
	WorkbookPathFunc     func() string
}

// SubmitShift implements the ShiftLogService interface
func (m *MockShiftLogService) SubmitShift(ctx context.Context, rec service.ShiftRecord) (int, error) {
	if m.SubmitShiftFunc != nil {
		return m.SubmitShiftFunc(ctx, rec)
	}
	return 0, errors.New("SubmitShiftFunc not implemented")
}

// SpoutStats implements the ShiftLogService interface
func (m *MockShiftLogService) SpoutStats(samples []service.Sample) service.Stats {
	if m.SpoutStatsFunc != nil {
		return m.SpoutStatsFunc(samples)
	}
	return service.ComputeStats(samples)
}

// OutOfSpecSpouts implements the ShiftLogService interface
func (m *MockShiftLogService) OutOfSpecSpouts(rec service.ShiftRecord) []int {
	if m.OutOfSpecSpoutsFunc != nil {
		return m.OutOfSpecSpoutsFunc(rec)
	}
	return nil
}

// WorkbookRowCount implements the ShiftLogService interface
func (m *MockShiftLogService) WorkbookRowCount(ctx context.Context) (int, error) {
	if m.WorkbookRowCountFunc != nil {
		return m.WorkbookRowCountFunc(ctx)
	}
	return 0, errors.New("WorkbookRowCountFunc not implemented")
}

// WorkbookPath implements the ShiftLogService interface
func (m *MockShiftLogService) WorkbookPath() string {
	if m.WorkbookPathFunc != nil {
		return m.WorkbookPathFunc()
	}
	return ""
}
