// internal/core/usecases/mocks_test.go
package usecases

import (
	"clinicor/internal/core/domain"
	"clinicor/internal/core/ports"
)

// mockReader serves canned findings for any location.
type mockReader struct {
	findings []*domain.Finding
	warnings []domain.Warning
	err      error
}

func (m *mockReader) Name() string { return "mock-reader" }

func (m *mockReader) Read(location string) ([]*domain.Finding, []domain.Warning, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.findings, m.warnings, nil
}

// mockExporter records every report it receives.
type mockExporter struct {
	name    string
	reports []*domain.AnalysisReport
	err     error
}

func (m *mockExporter) Name() string { return m.name }

func (m *mockExporter) Export(report *domain.AnalysisReport, opts ports.ExportOptions) error {
	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, report)
	return nil
}
