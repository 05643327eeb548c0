package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brightsmile/config"
	"brightsmile/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService echoes a canned reply and captures the routed params.
type stubBookingService struct {
	reply  string
	params map[string]any
}

func (s *stubBookingService) ConfirmBooking(ctx context.Context, params map[string]any) string {
	s.params = params
	return s.reply
}

func newWebhookRouter(svc *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewWebhookHandler(svc, zap.NewNop())
	r.POST("/webhook", h.Handle)
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fulfillmentText(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.FulfillmentText
}

func TestWebhookIntentRouting(t *testing.T) {
	config.AppConfig.ClinicName = "Happy Teeth Clinic"

	t.Run("welcome intent greets with the clinic name", func(t *testing.T) {
		r := newWebhookRouter(&stubBookingService{})
		w := postWebhook(t, r, `{"queryResult":{"intent":{"displayName":"Default Welcome Intent"}}}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, fulfillmentText(t, w), "Welcome to Happy Teeth Clinic")
	})

	t.Run("fallback intent", func(t *testing.T) {
		r := newWebhookRouter(&stubBookingService{})
		w := postWebhook(t, r, `{"queryResult":{"intent":{"displayName":"Default Fallback Intent"}}}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Fallback Intent called!", fulfillmentText(t, w))
	})

	t.Run("booking intent forwards parameters untouched", func(t *testing.T) {
		svc := &stubBookingService{reply: "Thank you Alice."}
		r := newWebhookRouter(svc)
		w := postWebhook(t, r, `{
			"queryResult": {
				"intent": {"displayName": "ticket"},
				"parameters": {
					"name": "Alice",
					"date": {"date_time": "2026-02-01T09:00:00Z"}
				}
			},
			"session": "projects/x/agent/sessions/abc"
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Thank you Alice.", fulfillmentText(t, w))
		require.Equal(t, "Alice", svc.params["name"])
		require.Equal(t, map[string]any{"date_time": "2026-02-01T09:00:00Z"}, svc.params["date"])
	})

	t.Run("unknown intent answers 200 with empty text", func(t *testing.T) {
		r := newWebhookRouter(&stubBookingService{})
		w := postWebhook(t, r, `{"queryResult":{"intent":{"displayName":"weather"}}}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, fulfillmentText(t, w))
	})

	t.Run("malformed payload is a 400", func(t *testing.T) {
		r := newWebhookRouter(&stubBookingService{})
		w := postWebhook(t, r, `{"queryResult":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
