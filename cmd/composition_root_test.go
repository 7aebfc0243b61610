package cmd_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tracker/api"
	"tracker/cmd"
	tracker_http "tracker/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WiresRouter(t *testing.T) {
	config, err := cmd.ConfigFromLookup(lookupFrom(nil))
	require.NoError(t, err)

	logger, level := cmd.NewLogger(io.Discard, config.LogLevel)
	assert.Equal(t, log.INFO, level)

	app := cmd.NewCompositionRoot(config, logger)
	doc, err := api.Load()
	require.NoError(t, err)

	e, err := tracker_http.NewRouter(tracker_http.RouterConfig{
		Server:   app.CreateServer(),
		Document: doc,
		Metrics:  app.Metrics(),
		Gatherer: app.Registry(),
		Logger:   logger,
		LogLevel: level,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/orders/add-partner/P1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/orders/get-partner-by-id/P1", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.JSONEq(t, `{"id":"P1","numberOfOrders":0}`, rec.Body.String())

	jobManager := app.CreateJobManager()
	require.NoError(t, jobManager.StartAll())
	jobManager.StopAll()
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	logger, level := cmd.NewLogger(&buf, "warn")
	assert.Equal(t, log.WARN, level)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "shown"))

	_, level = cmd.NewLogger(io.Discard, "nonsense")
	assert.Equal(t, log.INFO, level)
}
