package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiors/backend/internal/interfaces/http/dto"
)

func fixedSystemHandler() *SystemHandler {
	h := NewSystemHandler("forms-engine", "1.2.3")
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	h.startTime = start
	h.now = func() time.Time { return start.Add(90*time.Minute + 45*time.Second) }
	return h
}

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler("forms-engine", "dev")
	assert.False(t, h.startTime.IsZero())
	assert.Equal(t, "forms-engine", h.name)
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/system/info", "")

	fixedSystemHandler().GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "forms-engine", data["name"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.Equal(t, "1h30m45s", data["uptime"])
}

func TestSystemHandler_Ping(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/system/ping", "")

	fixedSystemHandler().Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "pong", data["message"])
	assert.Equal(t, "2025-06-01T10:30:45Z", data["timestamp"])
}

func TestSystemHandler_Health(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/health", "")

	fixedSystemHandler().Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","time":"2025-06-01T10:30:45Z"}`, w.Body.String())
}

func TestSystemHandler_Fallbacks(t *testing.T) {
	h := fixedSystemHandler()

	c, w := newTestContext(http.MethodGet, "/nowhere", "")
	h.NoRoute(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)

	c, w = newTestContext(http.MethodDelete, "/system/ping", "")
	h.NoMethod(c)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, dto.ErrCodeMethodNotAllowed, decodeResponse(t, w).Error.Code)
}
