package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/skillnet/internal/domain/network"
	"github.com/honeycarbs/skillnet/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/skillnet/pkg/sheets"
)

// sheetsReportAdapter renders the insight report into spreadsheet rows
type sheetsReportAdapter struct {
	client  *sheetsclient.Client
	network network.Service
	clock   func() time.Time
}

func (a *sheetsReportAdapter) ExportReport(ctx context.Context, params tools.ReportExportParams) (tools.ReportExportResult, error) {
	result := tools.ReportExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           params.Sheet.Tab,
	}

	if a.client == nil {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, fmt.Errorf("sheets: client not configured")
	}

	values := a.buildReportRows(ctx, params.IncludeHubs)
	if len(values) == 0 {
		result.Message = "no report rows to export"
		result.CompletedAt = a.clock().UTC()
		return result, nil
	}

	tab := params.Sheet.Tab
	if tab == "" {
		tab = "Sheet1"
	}

	if params.ClearTab {
		if err := a.client.ClearValues(ctx, params.Sheet.SpreadsheetID, fmt.Sprintf("%s!A1:Z", tab)); err != nil {
			return result, fmt.Errorf("sheets: clear tab: %w", err)
		}
	}

	if err := a.client.AppendValues(ctx, params.Sheet.SpreadsheetID, fmt.Sprintf("%s!A1", tab), values); err != nil {
		return result, fmt.Errorf("sheets: append report rows: %w", err)
	}

	result.WrittenRows = len(values)
	result.CompletedAt = a.clock().UTC()

	return result, nil
}

// buildReportRows flattens regional insights, and optionally the top hubs,
// into sheet values with section headers.
func (a *sheetsReportAdapter) buildReportRows(ctx context.Context, includeHubs bool) [][]interface{} {
	regions := a.network.RegionalInsights(ctx)

	var values [][]interface{}
	if len(regions) > 0 {
		values = append(values, []interface{}{"Region", "Job Types"})
		for _, row := range regions {
			values = append(values, []interface{}{row.Region, row.JobTypes})
		}
	}

	if includeHubs {
		stats := a.network.Stats(ctx)
		if len(stats.TopHubs) > 0 {
			values = append(values, []interface{}{"Skill", "Degree"})
			for _, hub := range stats.TopHubs {
				values = append(values, []interface{}{hub.SkillID, hub.Degree})
			}
		}
	}

	return values
}
