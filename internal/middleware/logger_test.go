package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRouter(core zapcore.Core) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("save failed"))
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestLoggerLevelByStatus(t *testing.T) {
	tests := []struct {
		path string
		want zapcore.Level
	}{
		{"/ok", zap.InfoLevel},
		{"/bad", zap.WarnLevel},
		{"/boom", zap.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			r := loggedRouter(core)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.want, entry.Level)
			assert.Equal(t, "request", entry.Message)
		})
	}
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := loggedRouter(core)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?limit=5", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok?limit=5", fields["path"], "query string is part of the logged path")
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestLoggerCarriesHandlerErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := loggedRouter(core)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Contains(t, fields["errors"], "save failed")
}
