package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/shiftlog-server/internal/repository"
	"github.com/godilite/shiftlog-server/internal/repository/models"
	dbbuilder "github.com/godilite/shiftlog-server/pkg/database"
)

func journalDB(t *testing.T) (*repository.AppendJournalRepository, *sql.DB) {
	t.Helper()

	db, err := dbbuilder.New(
		dbbuilder.WithDataSource(filepath.Join(t.TempDir(), "journal.db")),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	journal := repository.NewAppendJournalRepository(db)
	require.NoError(t, journal.EnsureSchema(context.Background()))
	return journal, db
}

func TestRecordAppend(t *testing.T) {
	ctx := context.Background()
	journal, db := journalDB(t)

	appendedAt := time.Date(2025, 11, 3, 6, 45, 0, 0, time.UTC)
	err := journal.RecordAppend(ctx, models.AppendReceipt{
		WorkbookPath: "data/shiftlog.xlsx",
		OperatorName: "J. Moyo",
		Shift:        "Morning",
		RowsAppended: 8,
		AppendedAt:   appendedAt,
	})
	require.NoError(t, err)

	var (
		path, operator, shift, at string
		rows                      int
	)
	row := db.QueryRowContext(ctx,
		`SELECT workbook_path, operator_name, shift, rows_appended, appended_at FROM append_journal`)
	require.NoError(t, row.Scan(&path, &operator, &shift, &rows, &at))

	assert.Equal(t, "data/shiftlog.xlsx", path)
	assert.Equal(t, "J. Moyo", operator)
	assert.Equal(t, "Morning", shift)
	assert.Equal(t, 8, rows)
	assert.Equal(t, appendedAt.Format(time.RFC3339), at)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	journal, _ := journalDB(t)

	assert.NoError(t, journal.EnsureSchema(context.Background()))
}
