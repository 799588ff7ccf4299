package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/errors"
)

// exportHeaders are the flat-table columns shared by the CSV and XLSX
// exports: one row per entry, 18 trailing per-hole par columns.
func exportHeaders() []string {
	headers := []string{
		"id", "name", "prefecture", "areaCodes", "holeCount",
		"parOut", "parIn", "parTotal", "parSource", "parTeeName",
	}
	for i := 1; i <= constants.HolesPerRound; i++ {
		headers = append(headers, fmt.Sprintf("par%d", i))
	}
	return headers
}

// exportRow flattens one entry into export columns.
func exportRow(e *Entry) []string {
	row := []string{
		e.ID,
		e.Name,
		e.Prefecture,
		strings.Join(e.AreaCodes, "|"),
		formatIntPtr(e.HoleCount),
		formatIntPtr(e.ParOut),
		formatIntPtr(e.ParIn),
		formatIntPtr(e.ParTotal),
		e.ParSource,
		e.ParTeeName,
	}
	for i := 0; i < constants.HolesPerRound; i++ {
		if i < len(e.Pars) {
			row = append(row, strconv.Itoa(e.Pars[i]))
		} else {
			row = append(row, "")
		}
	}
	return row
}

func formatIntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// WriteCSV writes the entries as CSV with standard RFC 4180 quoting.
func WriteCSV(w io.Writer, entries []*Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders()); err != nil {
		return errors.WrapIO("write", "csv header", err)
	}
	for _, entry := range entries {
		if err := cw.Write(exportRow(entry)); err != nil {
			return errors.WrapIO("write", "csv row "+entry.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the entries as a CSV file at path.
func SaveCSV(path string, entries []*Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()
	return WriteCSV(f, entries)
}

// SaveXLSX writes the entries as an XLSX workbook at path, mirroring the CSV
// table on a single sheet.
func SaveXLSX(path string, entries []*Entry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	headers := exportHeaders()
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return errors.WrapIO("write", "xlsx header", err)
	}

	for i, entry := range entries {
		cells := exportRow(entry)
		row := make([]any, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.WrapIO("write", "xlsx row "+entry.ID, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.WrapIO("write", "xlsx row "+entry.ID, err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
