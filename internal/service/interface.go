package service

import (
	"context"

	"github.com/godilite/shiftlog-server/internal/repository/models"
)

// ShiftRepository defines the interface for workbook operations for service.
type ShiftRepository interface {
	AppendShift(ctx context.Context, rec ShiftRecord, path string) (int, error)
	RowCount(ctx context.Context, path string) (int, error)
}

// AppendJournal records an operational trail of workbook appends.
type AppendJournal interface {
	RecordAppend(ctx context.Context, receipt models.AppendReceipt) error
}
