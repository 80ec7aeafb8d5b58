package export

import (
	"fmt"
	"io"

	"solar_pipeline/internal/domain/pipeline"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	ClientsSheet = "Clients"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var clientHeaders = []string{"Stage", "ID", "Name", "Neighborhood", "Date", "System size (kW)", "Total", "Battery", "Tiled roof"}

// WritePipelineWorkbook renders the board as an XLSX workbook with a per-stage
// summary sheet and one row per client.
func WritePipelineWorkbook(w io.Writer, board pipeline.Board) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ClientsSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := writeRow(f, SummarySheet, 1, []any{"Stage", "Label", "Clients", "Total"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	headers := make([]any, len(clientHeaders))
	for i, h := range clientHeaders {
		headers[i] = h
	}
	if err := writeRow(f, ClientsSheet, 1, headers); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(clientHeaders), 1)
	if err := f.SetCellStyle(ClientsSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	row := 2
	for i, col := range board.Columns {
		var stageTotal float64
		for _, card := range col.Cards {
			stageTotal += card.Total
			var size any
			if card.SystemSize != nil {
				size = *card.SystemSize
			}
			values := []any{string(col.Stage), card.ID, card.Name, card.Neighborhood, card.Date, size, card.Total, yesNo(card.HasBattery), yesNo(card.HasTiledRoof)}
			if err := writeRow(f, ClientsSheet, row, values); err != nil {
				return err
			}
			row++
		}
		if err := writeRow(f, SummarySheet, i+2, []any{string(col.Stage), col.Label, len(col.Cards), stageTotal}); err != nil {
			return err
		}
	}

	for col := 1; col <= len(clientHeaders); col++ {
		name, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(ClientsSheet, name, name, 16); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
