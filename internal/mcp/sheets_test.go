package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/honeycarbs/skillnet/internal/domain"
	"github.com/honeycarbs/skillnet/internal/domain/network"
	"github.com/honeycarbs/skillnet/internal/mcp/tools"
)

func reportParams(spreadsheetID string) tools.ReportExportParams {
	var p tools.ReportExportParams
	p.Sheet.SpreadsheetID = spreadsheetID
	return p
}

func fixtureNetwork(t *testing.T) network.Service {
	t.Helper()

	svc, err := network.NewService(network.WithRecords([]domain.SkillRecord{
		{ElementID: "1", ElementName: "A", Region: "west"},
		{ElementID: "1", ElementName: "B", Region: "west"},
		{ElementID: "2", ElementName: "A", Region: "east"},
		{ElementID: "2", ElementName: "C", Region: "east"},
	}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestBuildReportRows(t *testing.T) {
	adapter := &sheetsReportAdapter{
		network: fixtureNetwork(t),
		clock:   time.Now,
	}

	values := adapter.buildReportRows(context.Background(), false)

	// header + two region rows
	if len(values) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(values))
	}
	if values[0][0] != "Region" {
		t.Errorf("expected header row first, got %v", values[0])
	}
	if values[1][0] != "east" || values[1][1] != 1 {
		t.Errorf("unexpected first region row: %v", values[1])
	}
}

func TestBuildReportRows_WithHubs(t *testing.T) {
	adapter := &sheetsReportAdapter{
		network: fixtureNetwork(t),
		clock:   time.Now,
	}

	values := adapter.buildReportRows(context.Background(), true)

	// regions section plus hub section with its own header
	foundHubHeader := false
	for _, row := range values {
		if row[0] == "Skill" {
			foundHubHeader = true
		}
	}
	if !foundHubHeader {
		t.Errorf("expected hub section header, got %v", values)
	}
}

func TestReportExport_NoClient(t *testing.T) {
	adapter := &sheetsReportAdapter{
		network: fixtureNetwork(t),
		clock:   time.Now,
	}

	_, err := adapter.ExportReport(context.Background(), reportParams("sheet-1"))
	if err == nil {
		t.Fatal("expected error without a Sheets client")
	}
}

func TestGraphExportAdapter_NoRepo(t *testing.T) {
	adapter := &graphExportAdapter{network: fixtureNetwork(t)}

	_, err := adapter.Export(context.Background())
	if err == nil {
		t.Fatal("expected error without a graph repository")
	}
}
