package spreadsheet

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func sampleReport(view domain.ReportView) *domain.ReportData {
	return &domain.ReportData{
		View: view,
		Period: domain.Period{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		},
		ReportTotals: domain.ReportTotals{
			ProcedureCount:         3,
			Production:             450,
			ProductionPrivate:      200,
			ProductionInsurance:    250,
			CountPrivate:           2,
			CountInsuranceWeighted: 5,
			EvolutionsTotal:        2,
			DistinctPatientCount:   2,
		},
		Detail: []domain.PatientDetail{
			{
				PatientID:          "A",
				PatientName:        "Ana Souza",
				PlanType:           domain.PlanTypeParticular,
				FirstProcedureDate: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
				LastProcedureDate:  time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
				ProcedureCount:     2,
				PerformedCount:     2,
				EvolutionCount:     1,
			},
			{
				PatientID:      "B",
				PatientName:    "Bruno Lima",
				PlanType:       domain.PlanTypeUNIMED,
				ProcedureCount: 5,
				PerformedCount: 1,
			},
		},
	}
}

func openWorkbook(t *testing.T, content []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer()
	owner := domain.ReportOwner{ID: 7, Name: "Carla Mendes"}

	content, err := renderer.Render(context.Background(), owner, sampleReport(domain.ReportViewFull))
	require.NoError(t, err)

	f := openWorkbook(t, content)
	assert.Equal(t, []string{SummarySheet, PatientsSheet}, f.GetSheetList())

	rows, err := f.GetRows(SummarySheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	values := make(map[string]string, len(rows))
	for _, row := range rows[1:] {
		values[row[0]] = row[1]
	}
	assert.Equal(t, "Carla Mendes", values["Profissional"])
	assert.Equal(t, "01/01/2024", values["Início do período"])
	assert.Equal(t, "3", values["Total de procedimentos"])
	assert.Equal(t, "450", values["Produção"])
	assert.Equal(t, "5", values["Procedimentos planos de saúde"])
	assert.Equal(t, "2", values["Pacientes atendidos"])

	name, err := f.GetCellValue(PatientsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", name)

	count, err := f.GetCellValue(PatientsSheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "5", count)

	performed, err := f.GetCellValue(PatientsSheet, "G3")
	require.NoError(t, err)
	assert.Equal(t, "1", performed)
}

func TestRenderer_RenderPrivateView(t *testing.T) {
	content, err := NewRenderer().Render(context.Background(), domain.ReportOwner{ID: 7}, sampleReport(domain.ReportViewPrivate))
	require.NoError(t, err)

	f := openWorkbook(t, content)
	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)

	for _, row := range rows {
		assert.NotEqual(t, "Produção planos de saúde", row[0])
	}
}

func TestRenderer_RenderNilReport(t *testing.T) {
	_, err := NewRenderer().Render(context.Background(), domain.ReportOwner{}, nil)
	assert.Error(t, err)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := NewRenderer()
	assert.Equal(t, domain.DocumentFormatXLSX, renderer.Format())
	assert.Contains(t, renderer.ContentType(), "spreadsheetml")
}

func TestSummaryRows_CurrencyInCents(t *testing.T) {
	report := sampleReport(domain.ReportViewPrivate)
	report.ProductionPrivate = 0.1 + 0.2
	report.Production = 0.1 + 0.2

	for _, row := range summaryRows(domain.ReportOwner{ID: 7, Name: "Carla Mendes"}, report) {
		if row.currency {
			assert.Equal(t, 0.3, row.value, row.label)
		}
	}
}
