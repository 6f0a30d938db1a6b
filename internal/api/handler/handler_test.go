package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-report-api/internal/api/handler/router"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/apiErrors"
	"github.com/vfg2006/production-report-api/pkg/middleware"
)

var practitioner = &domain.Claims{
	UserID:       7,
	UserName:     "Carla",
	UserLastname: "Mendes",
	UserRoleID:   domain.RolePractitioner,
}

var admin = &domain.Claims{
	UserID:     1,
	UserName:   "Admin",
	UserRoleID: domain.RoleAdmin,
}

// serve executa a requisição nas rotas informadas com o usuário já autenticado
func serve(routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}
