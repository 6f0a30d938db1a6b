package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/domain"
	reportingmocks "github.com/vfg2006/production-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newTestDispatchService(t *testing.T, maxJobs int) (*MonthlyReportDispatchService, *mocks.MockUserRepository, *reportingmocks.MockReporter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	reporter := reportingmocks.NewMockReporter(ctrl)

	cfg := &config.Config{
		App: config.App{Location: time.UTC},
		MonthlyReportDispatch: config.MonthlyReportDispatch{
			CronSchedule:      "0 7 1 * *",
			MaxConcurrentJobs: maxJobs,
		},
	}

	service := NewMonthlyReportDispatchService(userRepo, reporter, cfg)
	service.now = func() time.Time {
		return time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	}

	return service, userRepo, reporter
}

func TestMonthlyReportDispatchService_PreviousMonth(t *testing.T) {
	service, _, _ := newTestDispatchService(t, 1)

	tests := []struct {
		name      string
		reference time.Time
		start     time.Time
		end       time.Time
	}{
		{
			name:      "Início de março retorna fevereiro bissexto",
			reference: time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC),
			start:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, 2, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "Janeiro retorna dezembro do ano anterior",
			reference: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			start:     time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2023, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "Dia 31 não pula o mês anterior",
			reference: time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC),
			start:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, 4, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := service.PreviousMonth(tt.reference)
			assert.True(t, tt.start.Equal(period.Start), "início: %s", period.Start)
			assert.True(t, tt.end.Equal(period.End), "fim: %s", period.End)
		})
	}
}

func TestMonthlyReportDispatchService_dispatch(t *testing.T) {
	t.Run("Envia o relatório completo do mês anterior para cada profissional", func(t *testing.T) {
		service, userRepo, reporter := newTestDispatchService(t, 2)

		userRepo.EXPECT().ListReportSubscribers(gomock.Any()).Return([]*domain.User{
			{ID: 1, Name: "Carla", Lastname: "Mendes", ReportEmail: stringPtr("carla@clinica.com")},
			{ID: 2, Name: "Diego", Lastname: "Alves", ReportEmail: stringPtr("diego@clinica.com")},
		}, nil)

		reporter.EXPECT().
			SendReportByEmail(gomock.Any(), domain.ReportOwner{ID: 1, Name: "Carla Mendes"}, domain.ReportViewFull, "carla@clinica.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ReportOwner, _ domain.ReportView, to string, filters domain.ReportFilters) (*domain.DispatchReceipt, error) {
				if assert.NotNil(t, filters.StartDate) && assert.NotNil(t, filters.EndDate) {
					assert.Equal(t, "2024-02-01", filters.StartDate.Format(time.DateOnly))
					assert.Equal(t, "2024-02-29", filters.EndDate.Format(time.DateOnly))
				}
				return &domain.DispatchReceipt{Email: to, Protocol: "ABC123", View: domain.ReportViewFull}, nil
			})
		reporter.EXPECT().
			SendReportByEmail(gomock.Any(), domain.ReportOwner{ID: 2, Name: "Diego Alves"}, domain.ReportViewFull, "diego@clinica.com", gomock.Any()).
			Return(&domain.DispatchReceipt{Email: "diego@clinica.com", Protocol: "DEF456", View: domain.ReportViewFull}, nil)

		summary := service.dispatch(context.Background())

		require.NotNil(t, summary)
		assert.Equal(t, 2, summary.Sent)
		assert.Equal(t, 0, summary.Failed)
		assert.Equal(t, 0, summary.Skipped)
	})

	t.Run("Falha de um envio não interrompe os demais", func(t *testing.T) {
		service, userRepo, reporter := newTestDispatchService(t, 1)

		userRepo.EXPECT().ListReportSubscribers(gomock.Any()).Return([]*domain.User{
			{ID: 1, Name: "Carla", ReportEmail: stringPtr("carla@clinica.com")},
			{ID: 2, Name: "Diego", ReportEmail: stringPtr("diego@clinica.com")},
			{ID: 3, Name: "Elisa", ReportEmail: nil},
		}, nil)

		reporter.EXPECT().
			SendReportByEmail(gomock.Any(), gomock.Any(), domain.ReportViewFull, "carla@clinica.com", gomock.Any()).
			Return(nil, errors.New("smtp indisponível"))
		reporter.EXPECT().
			SendReportByEmail(gomock.Any(), gomock.Any(), domain.ReportViewFull, "diego@clinica.com", gomock.Any()).
			Return(&domain.DispatchReceipt{Email: "diego@clinica.com", Protocol: "DEF456"}, nil)

		summary := service.dispatch(context.Background())

		require.NotNil(t, summary)
		assert.Equal(t, 1, summary.Sent)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 1, summary.Skipped)
	})

	t.Run("Erro ao listar profissionais não envia nada", func(t *testing.T) {
		service, userRepo, _ := newTestDispatchService(t, 1)

		userRepo.EXPECT().ListReportSubscribers(gomock.Any()).Return(nil, errors.New("conexão recusada"))

		summary := service.dispatch(context.Background())

		require.NotNil(t, summary)
		assert.Zero(t, summary.Sent)
		assert.Zero(t, summary.Failed)
	})

	t.Run("Execução em andamento é ignorada", func(t *testing.T) {
		service, _, _ := newTestDispatchService(t, 1)
		service.syncRunning = true

		assert.Nil(t, service.dispatch(context.Background()))
	})
}

func TestMonthlyReportDispatchService_GetStatus(t *testing.T) {
	service, userRepo, _ := newTestDispatchService(t, 1)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 7 1 * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_enabled"])

	userRepo.EXPECT().ListReportSubscribers(gomock.Any()).Return([]*domain.User{}, nil)
	service.dispatch(context.Background())

	status = service.GetStatus()
	summary, ok := status["last_summary"].(*DispatchSummary)
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", summary.Period.Start.Format(time.DateOnly))
	assert.Equal(t, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), status["last_sync_completed_at"])
}

func TestMonthlyReportDispatchService_StartDisabled(t *testing.T) {
	service, _, _ := newTestDispatchService(t, 1)

	assert.NoError(t, service.Start(context.Background()))
}
