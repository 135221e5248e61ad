package client

import "context"

// MockReportExporter is a test double for ReportExporter
type MockReportExporter struct {
	ExportReportFunc func(ctx context.Context, report any) (string, error)
	Exported         []any
}

// ExportReport records the report and delegates to ExportReportFunc
func (m *MockReportExporter) ExportReport(ctx context.Context, report any) (string, error) {
	m.Exported = append(m.Exported, report)
	if m.ExportReportFunc != nil {
		return m.ExportReportFunc(ctx, report)
	}
	return "https://example.com/report.json", nil
}
