package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name           string
		ping           error
		expectedStatus int
		expectedDB     string
	}{
		{name: "Banco disponível", expectedStatus: http.StatusOK, expectedDB: "ok"},
		{name: "Banco indisponível", ping: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable, expectedDB: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := pingerFunc(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tt.ping
			})

			rec := serve(Healthcheck(db), nil, http.MethodGet, "/healthcheck", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response HealthcheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedDB, response.Database)
			assert.NotEmpty(t, response.Time)
		})
	}
}
