package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/godilite/shiftlog-server/internal/repository/models"
)

// AppendJournalRepository keeps a write-only operational trail of
// workbook appends in sqlite. There is no query surface; the workbook
// remains the source of truth.
type AppendJournalRepository struct {
	db *sql.DB
}

func NewAppendJournalRepository(db *sql.DB) *AppendJournalRepository {
	return &AppendJournalRepository{db: db}
}

// EnsureSchema creates the journal table if it does not exist.
func (r *AppendJournalRepository) EnsureSchema(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS append_journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			workbook_path TEXT NOT NULL,
			operator_name TEXT NOT NULL,
			shift TEXT NOT NULL,
			rows_appended INTEGER NOT NULL,
			appended_at TEXT NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create append_journal: %w", err)
	}
	return nil
}

// RecordAppend inserts one journal row for a completed append.
func (r *AppendJournalRepository) RecordAppend(ctx context.Context, receipt models.AppendReceipt) error {
	const stmt = `
		INSERT INTO append_journal (workbook_path, operator_name, shift, rows_appended, appended_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, stmt,
		receipt.WorkbookPath,
		receipt.OperatorName,
		receipt.Shift,
		receipt.RowsAppended,
		receipt.AppendedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert append_journal row: %w", err)
	}
	return nil
}
