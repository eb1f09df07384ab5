package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: \"gold\"", domain.ErrUnknownAssetMix), http.StatusBadRequest, CodeUnknownAssetMix},
		{fmt.Errorf("configuration validation failed: %w", domain.ErrInvalidParameters), http.StatusBadRequest, CodeInvalidParameters},
		{domain.ErrDataUnavailable, http.StatusServiceUnavailable, CodeDataUnavailable},
		{storage.ErrNotFound, http.StatusNotFound, CodeNotFound},
		{fmt.Errorf("monte carlo run interrupted: %w", context.Canceled), http.StatusRequestTimeout, CodeCancelled},
		{context.DeadlineExceeded, http.StatusRequestTimeout, CodeCancelled},
		{errors.New("disk on fire"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		status, code := Classify(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/string", func(c *gin.Context) { panic("boom") })
	router.GET("/value", func(c *gin.Context) { panic(42) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/string", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"boom"}}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/value", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
}

func TestRespondErrorHidesInternalMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) { RespondError(c, errors.New("secret path /var/db")) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}

type recordingLogger struct {
	calculation.NopLogger
	lines []string
}

func (r *recordingLogger) Infof(format string, args ...any) {
	r.lines = append(r.lines, "INFO "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.lines = append(r.lines, "WARN "+fmt.Sprintf(format, args...))
}

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := &recordingLogger{}
	router := gin.New()
	router.Use(Logger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { RespondError(c, domain.ErrInvalidParameters) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))

	if assert.Len(t, logger.lines, 2) {
		assert.True(t, strings.HasPrefix(logger.lines[0], "INFO GET /ok -> 200"), logger.lines[0])
		assert.True(t, strings.HasPrefix(logger.lines[1], "WARN GET /bad -> 400"), logger.lines[1])
		assert.Contains(t, logger.lines[1], "invalid simulation parameters")
	}
}
