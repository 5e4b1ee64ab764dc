package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/godilite/shiftlog-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func shiftRecord(operator string, spouts int) service.ShiftRecord {
	rec := service.NewShiftRecord(spouts, 3)
	rec.OperatorName = operator
	rec.Shift = service.ShiftMorning
	rec.Date = "2025-11-03"
	rec.Time = "06:30"
	for i := range rec.Spouts {
		rec = service.UpdateShiftSample(rec, i, 0, "49.9")
		rec = service.UpdateShiftSample(rec, i, 1, "50.1")
	}
	return rec
}

func sheetRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestAppendShift(t *testing.T) {
	ctx := context.Background()

	t.Run("bootstrap creates workbook with header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")
		repo := NewWorkbookRepository(3)

		n, err := repo.AppendShift(ctx, shiftRecord("J. Moyo", 8), path)
		require.NoError(t, err)
		assert.Equal(t, 8, n)

		rows := sheetRows(t, path)
		require.Len(t, rows, 9)
		assert.Equal(t, repo.Schema(), rows[0])
		assert.Equal(t, "Spout 1", rows[1][4])
		assert.Equal(t, "Spout 8", rows[8][4])
	})

	t.Run("row carries record fields in column order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")
		repo := NewWorkbookRepository(3)

		rec := shiftRecord("J. Moyo", 1)
		rec.Spouts[0].Comment = "sticky valve"

		_, err := repo.AppendShift(ctx, rec, path)
		require.NoError(t, err)

		rows := sheetRows(t, path)
		require.Len(t, rows, 2)
		row := rows[1]
		assert.Equal(t, "2025-11-03", row[0])
		assert.Equal(t, "06:30", row[1])
		assert.Equal(t, "J. Moyo", row[2])
		assert.Equal(t, "Morning", row[3])
		assert.Equal(t, "Spout 1", row[4])
		assert.Equal(t, "49.9", row[5])
		assert.Equal(t, "50.1", row[6])
		assert.Equal(t, "50", row[8]) // average
		assert.Equal(t, "0.1", row[9])
		assert.Equal(t, "sticky valve", row[10])
	})

	t.Run("absent samples become blank cells", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")
		repo := NewWorkbookRepository(3)

		rec := service.NewShiftRecord(1, 3)
		rec.OperatorName = "J. Moyo"
		rec.Shift = service.ShiftNight
		rec = service.UpdateShiftSample(rec, 0, 1, "50.0")

		_, err := repo.AppendShift(ctx, rec, path)
		require.NoError(t, err)

		row := sheetRows(t, path)[1]
		assert.Equal(t, "", row[5])
		assert.Equal(t, "50", row[6])
		assert.Equal(t, "", row[7])
	})

	t.Run("second append extends without touching prior rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")
		repo := NewWorkbookRepository(3)

		_, err := repo.AppendShift(ctx, shiftRecord("J. Moyo", 8), path)
		require.NoError(t, err)
		first := sheetRows(t, path)

		_, err = repo.AppendShift(ctx, shiftRecord("A. Dube", 8), path)
		require.NoError(t, err)

		rows := sheetRows(t, path)
		require.Len(t, rows, 17)
		assert.Equal(t, first, rows[:9])
		assert.Equal(t, "A. Dube", rows[9][2])
		assert.Equal(t, "A. Dube", rows[16][2])
	})

	t.Run("header mismatch leaves the file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")

		f := excelize.NewFile()
		require.NoError(t, f.SetSheetName("Sheet1", SheetName))
		header := []any{"Day", "Operator", "Weight"}
		require.NoError(t, f.SetSheetRow(SheetName, "A1", &header))
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		repo := NewWorkbookRepository(3)
		_, err := repo.AppendShift(ctx, shiftRecord("J. Moyo", 2), path)
		assert.ErrorIs(t, err, ErrSchemaMismatch)

		rows := sheetRows(t, path)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"Day", "Operator", "Weight"}, rows[0])
	})

	t.Run("foreign workbook gains the shift sheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")

		f := excelize.NewFile()
		other := []any{"unrelated"}
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &other))
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		repo := NewWorkbookRepository(3)
		n, err := repo.AppendShift(ctx, shiftRecord("J. Moyo", 2), path)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		rows := sheetRows(t, path)
		require.Len(t, rows, 3)
		assert.Equal(t, repo.Schema(), rows[0])
	})

	t.Run("concurrent appends to one path lose nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")
		repo := NewWorkbookRepository(3)

		var wg sync.WaitGroup
		for _, op := range []string{"J. Moyo", "A. Dube"} {
			wg.Add(1)
			go func(op string) {
				defer wg.Done()
				_, err := repo.AppendShift(ctx, shiftRecord(op, 8), path)
				assert.NoError(t, err)
			}(op)
		}
		wg.Wait()

		rows := sheetRows(t, path)
		assert.Len(t, rows, 17)
	})
}

func TestRowCount(t *testing.T) {
	ctx := context.Background()

	t.Run("missing workbook counts zero", func(t *testing.T) {
		repo := NewWorkbookRepository(3)

		n, err := repo.RowCount(ctx, filepath.Join(t.TempDir(), "missing.xlsx"))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("header row is excluded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")
		repo := NewWorkbookRepository(3)

		_, err := repo.AppendShift(ctx, shiftRecord("J. Moyo", 8), path)
		require.NoError(t, err)

		n, err := repo.RowCount(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 8, n)
	})

	t.Run("workbook without the shift sheet counts zero", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.xlsx")

		f := excelize.NewFile()
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		repo := NewWorkbookRepository(3)
		n, err := repo.RowCount(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestAcquire(t *testing.T) {
	t.Run("queued waiter can abandon on cancel", func(t *testing.T) {
		repo := NewWorkbookRepository(3)

		unlock, err := repo.acquire(context.Background(), "shifts.xlsx")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = repo.acquire(ctx, "shifts.xlsx")
		assert.ErrorIs(t, err, context.Canceled)

		unlock()
	})

	t.Run("paths lock independently", func(t *testing.T) {
		repo := NewWorkbookRepository(3)

		unlockA, err := repo.acquire(context.Background(), "a.xlsx")
		require.NoError(t, err)
		defer unlockA()

		unlockB, err := repo.acquire(context.Background(), "b.xlsx")
		require.NoError(t, err)
		unlockB()
	})
}

func TestSchema(t *testing.T) {
	repo := NewWorkbookRepository(2)

	assert.Equal(t, []string{
		"Date", "Time", "Operator", "Shift", "Spout",
		"Sample 1", "Sample 2",
		"Average", "Std Dev", "Comment",
	}, repo.Schema())
}
