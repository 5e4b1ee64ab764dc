package models

import "time"

// SampleCell is one sample column value. Absent samples produce a blank
// cell rather than a zero.
type SampleCell struct {
	Value   float64
	Present bool
}

// PersistedRow is the flattened one-row-per-spout projection of a shift
// record as written to the workbook.
type PersistedRow struct {
	Date         string
	Time         string
	OperatorName string
	Shift        string
	SpoutLabel   string
	Samples      []SampleCell
	Average      float64
	StdDev       float64
	Comment      string
}

// AppendReceipt is the journal entry recorded after one successful
// workbook append.
type AppendReceipt struct {
	WorkbookPath string
	OperatorName string
	Shift        string
	RowsAppended int
	AppendedAt   time.Time
}
