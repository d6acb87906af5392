package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hapbadge/internal/display"
	"hapbadge/internal/setup"
	"hapbadge/internal/utils"
)

func newTestRouter(t *testing.T, rawPayload string) http.Handler {
	t.Helper()

	d := display.NewSetupDisplay()
	if rawPayload != "" {
		payload, ok := setup.ParsePayload(rawPayload)
		require.True(t, ok, "ParsePayload rejected %q", rawPayload)
		d.SetPayload(payload)
	}
	return NewRouter(d, utils.NewLogger(io.Discard))
}

func TestPairingBadgeEndpoint(t *testing.T) {
	r := newTestRouter(t, "X-HM://0071929Z51QJ8")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/homekit/pairing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.True(t, strings.HasSuffix(body, `</g></svg>`))
	assert.Contains(t, body, `<path d="M`)
}

func TestPairingBadgeEndpointNoPayload(t *testing.T) {
	r := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/homekit/pairing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, notPairedMessage+"\n", rec.Body.String())
}

// TestPairingBadgeEndpointOutOfRangeCode serves a payload whose masked code
// exceeds the display field. The response must be a clean 500 with no SVG
// fragment in the body.
func TestPairingBadgeEndpointOutOfRangeCode(t *testing.T) {
	r := newTestRouter(t, "X-HM://0221MN810ABCD")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/homekit/pairing", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<svg")
}

func TestPairingCodeEndpoint(t *testing.T) {
	r := newTestRouter(t, "X-HM://0071929Z51QJ8")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/homekit/code", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1234-4321", got["code"])
}

func TestPairingCodeEndpointNoPayload(t *testing.T) {
	r := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/homekit/code", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
}
