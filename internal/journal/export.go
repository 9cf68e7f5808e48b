package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adamamaa/worship/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row.
var columns = []string{
	"Analyzed At",
	"Sermon Title",
	"Preacher",
	"Bible Reference",
	"Hymn Count",
	"Model",
}

func entryToRow(e *domain.JournalEntry) []string {
	return []string{
		e.AnalyzedAt.Format(time.RFC3339),
		e.SermonTitle,
		e.Preacher,
		e.BibleRef,
		strconv.Itoa(e.HymnCount),
		e.Model,
	}
}

// WriteCSV writes the journal entries as CSV (without BOM; callers prepend
// BOM when serving the file).
func WriteCSV(w io.Writer, entries []domain.JournalEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range entries {
		if err := cw.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const xlsxSheet = "Journal"

// WriteXLSX writes the journal entries as an XLSX workbook.
func WriteXLSX(w io.Writer, entries []domain.JournalEntry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheet, cell, name); err != nil {
			return err
		}
	}

	for row := range entries {
		values := entryToRow(&entries[row])
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			// Hymn count stays numeric in the workbook.
			if col == 4 {
				if err := f.SetCellValue(xlsxSheet, cell, entries[row].HymnCount); err != nil {
					return err
				}
				continue
			}
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// BuildExportFilename returns a dated filename for Content-Disposition.
func BuildExportFilename(ext string) string {
	return fmt.Sprintf("worship_journal_%s.%s", time.Now().Format("2006-01-02"), ext)
}
