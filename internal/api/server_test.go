package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-report-api/internal/api/handler"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/domain"
	authMocks "github.com/vfg2006/production-report-api/internal/usecases/authenticating/mocks"
	reportMocks "github.com/vfg2006/production-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/production-report-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		App:    config.App{Location: time.UTC},
		Server: config.Server{Host: "127.0.0.1", Port: "0", AllowedOrigins: []string{"https://clinica.com"}},
	}
}

func TestNew_WithoutLocation(t *testing.T) {
	cfg := testConfig()
	cfg.App.Location = nil

	_, err := New(cfg, okPinger{}, nil, nil, handler.CronJobServices{})
	assert.Error(t, err)
}

func TestServer_Handler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	authenticator := authMocks.NewMockAuthenticator(ctrl)
	reporter := reportMocks.NewMockReporter(ctrl)

	srv, err := New(testConfig(), okPinger{}, reporter, authenticator, handler.CronJobServices{})
	require.NoError(t, err)

	t.Run("Healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
	})

	t.Run("Preflight de CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/reports", nil)
		req.Header.Set("Origin", "https://clinica.com")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://clinica.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Relatório exige token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Relatório com token válido", func(t *testing.T) {
		claims := &domain.Claims{UserID: 7, UserName: "Carla", UserLastname: "Mendes", UserRoleID: domain.RolePractitioner}
		authenticator.EXPECT().ValidateToken("token-valido").Return(claims, nil)
		reporter.EXPECT().GetReport(gomock.Any(), 7, domain.ReportViewFull, gomock.Any()).
			Return(&domain.ReportData{View: domain.ReportViewFull}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
		req.Header.Set("Authorization", "Bearer token-valido")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
