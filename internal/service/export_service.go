package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// ErrExportGenerateFail is returned when the workbook cannot be written.
var ErrExportGenerateFail = errors.New("failed to generate spreadsheet")

// ExportService renders entity tables as Excel workbooks.
type ExportService struct {
	log zerolog.Logger
}

// NewExportService creates a new ExportService.
func NewExportService(log zerolog.Logger) *ExportService {
	return &ExportService{log: log.With().Str("component", "export_service").Logger()}
}

// Export writes every record of e, in default order, to a single-sheet
// workbook. Columns are the id, each schema field, and the display label.
// It returns the workbook bytes and a suggested filename.
func (s *ExportService) Export(ctx context.Context, e registry.Entity) (*bytes.Buffer, string, error) {
	records, err := e.Admin.List(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := e.Plural
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	header := []any{"id"}
	for _, fld := range e.Schema.Fields {
		header = append(header, fld.Name)
	}
	header = append(header, "label")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	f.SetColWidth(sheet, "B", lastCol, 20)

	for i, rec := range records {
		values, err := fieldValues(rec, e.Schema.Fields)
		if err != nil {
			return nil, "", err
		}
		row := append([]any{rec.PK()}, values...)
		row = append(row, rec.String())

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.log.Error().Err(err).Str("entity", string(e.Kind)).Msg("Failed to write workbook")
		return nil, "", ErrExportGenerateFail
	}

	return buf, strings.ToLower(e.Plural) + ".xlsx", nil
}

// fieldValues reads the schema fields off a record through its JSON form,
// so the column names always match the admin API.
func fieldValues(rec any, fields []registry.Field) ([]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	out := make([]any, len(fields))
	for i, fld := range fields {
		out[i] = m[fld.Name]
	}
	return out, nil
}
