package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-report-api/internal/domain"
)

func sampleReport(view domain.ReportView, detail []domain.PatientDetail) *domain.ReportData {
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
			DistinctPatientCount:   2,
		},
		Detail: detail,
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer("FisiMaster")
	owner := domain.ReportOwner{ID: 7, Name: "Conceição Araújo"}

	tests := []struct {
		name   string
		report *domain.ReportData
	}{
		{
			name: "Relatório completo com pacientes",
			report: sampleReport(domain.ReportViewFull, []domain.PatientDetail{
				{PatientID: "A", PatientName: "Ana Souza", PlanType: domain.PlanTypeParticular, ProcedureCount: 2, PerformedCount: 2},
				{PatientID: "B", PatientName: "Bruno Lima", PlanType: domain.PlanTypeUNIMED, ProcedureCount: 5, PerformedCount: 1, EvolutionCount: 1},
			}),
		},
		{
			name:   "Recorte particular sem pacientes",
			report: sampleReport(domain.ReportViewPrivate, []domain.PatientDetail{}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := renderer.Render(context.Background(), owner, tt.report)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
		})
	}
}

func TestRenderer_RenderErrors(t *testing.T) {
	renderer := NewRenderer("FisiMaster")

	_, err := renderer.Render(context.Background(), domain.ReportOwner{}, nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = renderer.Render(ctx, domain.ReportOwner{}, sampleReport(domain.ReportViewFull, nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := NewRenderer("FisiMaster")
	assert.Equal(t, domain.DocumentFormatPDF, renderer.Format())
	assert.Equal(t, "application/pdf", renderer.ContentType())
}
