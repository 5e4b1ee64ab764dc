package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/godilite/shiftlog-server/internal/repository/models"
	"github.com/godilite/shiftlog-server/internal/service"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single named sheet all shift rows live on.
const SheetName = "ShiftLog"

// schemaVersion identifies the persisted column layout. The header is
// validated against the schema on every open of an existing sheet; a
// mismatch is fatal for the call and the file is left untouched.
const schemaVersion = 1

var ErrSchemaMismatch = errors.New("workbook schema mismatch")

// WorkbookRepository appends shift rows to an xlsx workbook. All
// operations against the same path are serialized end-to-end, so the
// read-flatten-write sequence can never lose a concurrent append.
// Operations against different paths proceed independently.
type WorkbookRepository struct {
	samplesPerSpout int

	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewWorkbookRepository(samplesPerSpout int) *WorkbookRepository {
	if samplesPerSpout < 1 {
		samplesPerSpout = 3
	}
	return &WorkbookRepository{
		samplesPerSpout: samplesPerSpout,
		locks:           make(map[string]chan struct{}),
	}
}

// Schema returns the expected header row in canonical column order.
func (r *WorkbookRepository) Schema() []string {
	cols := []string{"Date", "Time", "Operator", "Shift", "Spout"}
	for i := 1; i <= r.samplesPerSpout; i++ {
		cols = append(cols, fmt.Sprintf("Sample %d", i))
	}
	return append(cols, "Average", "Std Dev", "Comment")
}

// acquire takes the per-path lock. A waiter still queued can abandon
// via ctx; once acquired, the caller runs to completion.
func (r *WorkbookRepository) acquire(ctx context.Context, path string) (func(), error) {
	r.mu.Lock()
	lock, ok := r.locks[path]
	if !ok {
		lock = make(chan struct{}, 1)
		r.locks[path] = lock
	}
	r.mu.Unlock()

	select {
	case lock <- struct{}{}:
		return func() { <-lock }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AppendShift durably appends one row per spout to the workbook at
// path, bootstrapping the workbook and its header when absent. Returns
// the number of rows appended. Rows are only ever added after the last
// existing row, never reordered or deduplicated.
func (r *WorkbookRepository) AppendShift(ctx context.Context, rec service.ShiftRecord, path string) (int, error) {
	unlock, err := r.acquire(ctx, path)
	if err != nil {
		return 0, err
	}
	defer unlock()

	f, rowCount, err := r.openForAppend(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	next := rowCount + 1
	for _, row := range r.flatten(rec) {
		cell, err := excelize.CoordinatesToCellName(1, next)
		if err != nil {
			return 0, fmt.Errorf("row %d cell name: %w", next, err)
		}
		cells := rowCells(row)
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return 0, fmt.Errorf("write row %d: %w", next, err)
		}
		next++
	}

	if err := writeAtomic(f, path); err != nil {
		return 0, err
	}
	return len(rec.Spouts), nil
}

// RowCount returns the number of data rows (excluding the header) on
// the shift sheet; 0 when the workbook or the sheet does not exist.
func (r *WorkbookRepository) RowCount(ctx context.Context, path string) (int, error) {
	unlock, err := r.acquire(ctx, path)
	if err != nil {
		return 0, err
	}
	defer unlock()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("stat workbook %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return 0, fmt.Errorf("locate sheet %q: %w", SheetName, err)
	}
	if idx == -1 {
		return 0, nil
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return 0, fmt.Errorf("read sheet %q: %w", SheetName, err)
	}
	if len(rows) <= 1 {
		return 0, nil
	}
	return len(rows) - 1, nil
}

// openForAppend opens the workbook at path or bootstraps a fresh one,
// and returns it together with the current total row count (header
// included). Schema bootstrap happens at most once per file.
func (r *WorkbookRepository) openForAppend(path string) (*excelize.File, int, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("stat workbook %s: %w", path, err)
		}

		f := excelize.NewFile()
		if err := f.SetSheetName("Sheet1", SheetName); err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("name sheet %q: %w", SheetName, err)
		}
		if err := r.writeHeader(f); err != nil {
			f.Close()
			return nil, 0, err
		}
		return f, 1, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook %s: %w", path, err)
	}

	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("locate sheet %q: %w", SheetName, err)
	}
	if idx == -1 {
		// Existing workbook from another tool; add our sheet to it.
		if _, err := f.NewSheet(SheetName); err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("create sheet %q: %w", SheetName, err)
		}
		if err := r.writeHeader(f); err != nil {
			f.Close()
			return nil, 0, err
		}
		return f, 1, nil
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("read sheet %q: %w", SheetName, err)
	}
	if len(rows) == 0 {
		if err := r.writeHeader(f); err != nil {
			f.Close()
			return nil, 0, err
		}
		return f, 1, nil
	}
	if !slices.Equal(rows[0], r.Schema()) {
		f.Close()
		return nil, 0, fmt.Errorf("%w: sheet %q header does not match schema v%d", ErrSchemaMismatch, SheetName, schemaVersion)
	}
	return f, len(rows), nil
}

func (r *WorkbookRepository) writeHeader(f *excelize.File) error {
	header := make([]any, 0, len(r.Schema()))
	for _, col := range r.Schema() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	return nil
}

// flatten projects the record into one persisted row per spout with
// 1-based spout labels, in index order.
func (r *WorkbookRepository) flatten(rec service.ShiftRecord) []models.PersistedRow {
	rows := make([]models.PersistedRow, len(rec.Spouts))
	for i, sp := range rec.Spouts {
		cells := make([]models.SampleCell, r.samplesPerSpout)
		for j := 0; j < r.samplesPerSpout && j < len(sp.Samples); j++ {
			if v, ok := sp.Samples[j].Value(); ok {
				cells[j] = models.SampleCell{Value: v, Present: true}
			}
		}
		rows[i] = models.PersistedRow{
			Date:         rec.Date,
			Time:         rec.Time,
			OperatorName: rec.OperatorName,
			Shift:        string(rec.Shift),
			SpoutLabel:   fmt.Sprintf("Spout %d", i+1),
			Samples:      cells,
			Average:      sp.Average,
			StdDev:       sp.StdDev,
			Comment:      sp.Comment,
		}
	}
	return rows
}

// rowCells lays a persisted row out in schema column order. Valid
// samples become numeric cells, absent ones blank cells.
func rowCells(row models.PersistedRow) []any {
	cells := []any{row.Date, row.Time, row.OperatorName, row.Shift, row.SpoutLabel}
	for _, s := range row.Samples {
		if s.Present {
			cells = append(cells, s.Value)
		} else {
			cells = append(cells, nil)
		}
	}
	return append(cells, row.Average, row.StdDev, row.Comment)
}

// writeAtomic persists the workbook with a temp-file write followed by
// a rename, so a crash mid-write cannot leave a half-written file.
func writeAtomic(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create workbook dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp workbook: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp workbook: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace workbook: %w", err)
	}
	return nil
}
