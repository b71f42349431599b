package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/modcraft/framework/config"
	"github.com/km-arc/modcraft/framework/container"
	"github.com/km-arc/modcraft/framework/routing"
)

func TestNewClock_ReadsTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	c, err := NewClock(config.Defaults())
	require.NoError(t, err)
	assert.Equal(t, "UTC", c.Now().Location().String())

	t.Setenv("APP_TIMEZONE", "Nowhere/Invalid")
	_, err = NewClock(config.Defaults())
	assert.Error(t, err)
}

func get(t *testing.T, h http.Handler, path string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestGreeter_SettingsFromEnv(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("GREETER_MAX_NAME", "3")
	t.Setenv("GREETER_SHOW_VISITS", "false")

	clock, err := NewClock(config.Defaults())
	require.NoError(t, err)

	deps := container.New()
	require.NoError(t, deps.Instance("clock", clock))

	router := routing.New(zap.NewNop())
	g := NewGreeter(config.Defaults(), router, clock, &Visits{}, deps)
	require.NoError(t, g.Init())

	assert.Contains(t, get(t, router, "/hello/abcdef"), "Hello, abc!")
	assert.NotContains(t, get(t, router, "/"), "visit")
}
