// Package importer parses scrim result workbooks into match rows. Row-level
// cleanup beyond the required columns is the uploader's problem; downstream
// code only consumes rows that passed the header check.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/suppa/taox-brain/internal/service"
)

// RequiredColumns are the headers a scrim sheet must carry.
var RequiredColumns = []string{"Date", "Hero", "Result", "Note"}

var ErrNoSheets = errors.New("workbook has no sheets")

// MissingColumnsError reports which required headers the sheet lacks.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseWorkbook reads the first sheet of an xlsx workbook. The header row must
// include every required column; extra columns are ignored. Rows that are
// entirely empty are skipped.
func ParseWorkbook(r io.Reader) ([]service.MatchRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Missing: RequiredColumns}
	}

	colIndex := make(map[string]int)
	for i, header := range rows[0] {
		colIndex[strings.TrimSpace(header)] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	matches := make([]service.MatchRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		match := service.MatchRow{
			Date:   cell(row, colIndex["Date"]),
			Hero:   cell(row, colIndex["Hero"]),
			Result: cell(row, colIndex["Result"]),
			Note:   cell(row, colIndex["Note"]),
		}
		if match.Date == "" && match.Hero == "" && match.Result == "" && match.Note == "" {
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// cell fetches a column value; excelize trims trailing empty cells from rows,
// so an index past the end means empty.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
