package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReportExportParams defines the arguments for the sheets_export tool
type ReportExportParams struct {
	IncludeHubs bool `json:"include_hubs,omitempty" jsonschema:"Append the most connected skills after the regional rows"`
	ClearTab    bool `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
	Sheet       struct {
		SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
		Tab           string `json:"tab,omitempty" jsonschema:"Tab name to write the report into"`
	} `json:"sheet" jsonschema:"Destination sheet information"`
}

// ReportExportResult describes the summary returned after a report export
type ReportExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab,omitempty" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many rows were written"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

// ReportExporter writes the insight report to a spreadsheet
type ReportExporter interface {
	ExportReport(ctx context.Context, params ReportExportParams) (ReportExportResult, error)
}

type sheetsExportTool struct {
	exporter ReportExporter
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(exporter ReportExporter) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{exporter: exporter}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Export the regional insight report to Google Sheets",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ReportExportParams) (*sdkmcp.CallToolResult, any, error) {
	if t.exporter == nil {
		err := fmt.Errorf("report exporter not configured")
		observe("sheets_export", "error")
		return textResult("sheets_export unavailable: Google Sheets is not configured"), nil, err
	}

	if params == nil || params.Sheet.SpreadsheetID == "" {
		err := fmt.Errorf("sheet.spreadsheet_id is required")
		observe("sheets_export", "error")
		return textResult("sheets_export requires sheet.spreadsheet_id"), nil, err
	}

	result, err := t.exporter.ExportReport(ctx, *params)
	if err != nil {
		observe("sheets_export", "error")
		return textResult(fmt.Sprintf("sheets_export error: %v", err)), nil, err
	}

	observe("sheets_export", "ok")
	if result.Message == "" {
		result.Message = fmt.Sprintf("exported %d row(s)", result.WrittenRows)
	}

	return textResult(result.Message), result, nil
}
