package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	intconfig "truckqr/internal/config"
	h "truckqr/internal/http/handlers"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

func newTestRouter() *gin.Engine {
	return NewRouter(intconfig.Default(), time.UTC, func() time.Time { return fixedNow })
}

func validBody() map[string]string {
	return map[string]string{
		"plate":      "abc-123",
		"driverName": "john doe",
		"customerId": "cust001",
		"date":       "2026-10-17",
		"hour":       "07",
		"minute":     "30",
		"meridiem":   "PM",
		"items":      "item001:10, item002:5",
	}
}

func doJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateJSON(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, "/api/qr", validBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp h.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "image/png", resp.ImageType)
	assert.Equal(t, 2, resp.Summary.TotalItems)
	assert.Equal(t, 15, resp.Summary.TotalQuantity)
	assert.Equal(t, "2026-10-17T19:30:00", resp.Summary.DateTimeAtGate)

	var p map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Payload), &p))
	assert.Equal(t, "ABC-123", p["plate"])
	assert.Equal(t, "John Doe", p["driverName"])
	assert.Equal(t, "CUST001", p["customer_id"])
	assert.NotContains(t, p, "company")

	img, err := base64.StdEncoding.DecodeString(resp.ImageBase64)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, []byte("\x89PNG")))
}

func TestGenerateForm(t *testing.T) {
	r := newTestRouter()
	form := url.Values{}
	for k, v := range validBody() {
		form.Set(k, v)
	}
	form.Set("company", "Acme")
	req := httptest.NewRequest(http.MethodPost, "/api/qr", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp h.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Payload, `"company": "Acme"`)
}

func TestGenerateValidationErrors(t *testing.T) {
	r := newTestRouter()
	body := validBody()
	body["plate"] = "a"
	body["date"] = "2026-10-19"
	body["items"] = "sku1:1,SKU1:2"

	w := doJSON(t, r, "/api/qr", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	var resp struct {
		Code    string `json:"code"`
		Details struct {
			Errors []string `json:"errors"`
			Fields []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"fields"`
		} `json:"details"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Code)
	assert.Equal(t, []string{
		"Invalid plate number format. Use 3-10 characters with letters, numbers, and hyphens only.",
		"Date and time cannot be in the future.",
		"Duplicate item ID: 'SKU1'.",
	}, resp.Details.Errors)
	require.Len(t, resp.Details.Fields, 3)
	assert.Equal(t, "plate", resp.Details.Fields[0].Field)
	assert.NotEmpty(t, resp.RequestID)
}

func TestGeneratePayloadTooLarge(t *testing.T) {
	r := newTestRouter()
	parts := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		parts = append(parts, fmt.Sprintf("SKU%04d:1", i))
	}
	body := validBody()
	body["items"] = strings.Join(parts, ",")

	w := doJSON(t, r, "/api/qr", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "payload_too_large")
}

func TestGeneratePNGAndGatePass(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, "/api/qr/png", validBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "QR_ABC-123_2026-10-17_1930.png")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = doJSON(t, r, "/api/qr/gate-pass", validBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, "/api/qr/validate", validBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"valid":true`)
	assert.Contains(t, w.Body.String(), `"item_id":"ITEM001"`)
}

func TestEmptyBody(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/qr", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty_body")
}

func TestMalformedJSON(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/qr", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_body")
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/api/health", "/api/routes", "/api/truck-types", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/truck-types", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"truck_types":["Type A","Type B","Type C","Type D","Type E"]}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDPropagated(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "gate-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "gate-42", w.Header().Get("X-Request-ID"))
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
