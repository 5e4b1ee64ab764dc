package mocks

import (
	"context"
	"errors"

	"github.com/godilite/shiftlog-server/internal/repository/models"
	"github.com/godilite/shiftlog-server/internal/service"
)

// MockShiftRepository is a mock implementation of the ShiftRepository
// interface for testing the service layer.
type MockShiftRepository struct {
	AppendShiftFunc func(ctx context.Context, rec service.ShiftRecord, path string) (int, error)
	RowCountFunc    func(ctx context.Context, path string) (int, error)
}

// AppendShift implements the ShiftRepository interface
func (m *MockShiftRepository) AppendShift(ctx context.Context, rec service.ShiftRecord, path string) (int, error) {
	if m.AppendShiftFunc != nil {
		return m.AppendShiftFunc(ctx, rec, path)
	}
	return 0, errors.New("AppendShiftFunc not implemented")
}

// RowCount implements the ShiftRepository interface
func (m *MockShiftRepository) RowCount(ctx context.Context, path string) (int, error) {
	if m.RowCountFunc != nil {
		return m.RowCountFunc(ctx, path)
	}
	return 0, errors.New("RowCountFunc not implemented")
}

// MockAppendJournal is a mock implementation of the AppendJournal
// interface for testing the service layer.
type MockAppendJournal struct {
	RecordAppendFunc func(ctx context.Context, receipt models.AppendReceipt) error
}

// RecordAppend implements the AppendJournal interface
func (m *MockAppendJournal) RecordAppend(ctx context.Context, receipt models.AppendReceipt) error {
	if m.RecordAppendFunc != nil {
		return m.RecordAppendFunc(ctx, receipt)
	}
	return nil
}
