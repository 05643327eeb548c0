package handlers

import (
	"fmt"
	"net/http"

	"brightsmile/config"
	"brightsmile/models"
	"brightsmile/services/booking"
	"brightsmile/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Intent display names the fulfillment webhook routes on.
const (
	IntentWelcome  = "Default Welcome Intent"
	IntentFallback = "Default Fallback Intent"
	IntentBooking  = "ticket"
)

// WebhookHandler serves Dialogflow fulfillment requests.
type WebhookHandler struct {
	Booking booking.BookingService
	Logger  *zap.Logger
}

func NewWebhookHandler(bookingSvc booking.BookingService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		Booking: bookingSvc,
		Logger:  logger,
	}
}

// Handle routes one fulfillment request by intent display name. Unknown
// intents get an empty fulfillment text with 200; the agent treats any
// non-200 as a fulfillment error.
func (h *WebhookHandler) Handle(c *gin.Context) {
	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook payload", err.Error())
		return
	}

	intent := req.QueryResult.Intent.DisplayName
	h.Logger.Debug("Fulfillment request",
		zap.String("intent", intent),
		zap.String("session", req.Session))

	var reply string
	switch intent {
	case IntentWelcome:
		reply = welcomeText()
	case IntentFallback:
		reply = "Fallback Intent called!"
	case IntentBooking:
		reply = h.Booking.ConfirmBooking(c.Request.Context(), req.QueryResult.Parameters)
	default:
		h.Logger.Warn("Unhandled intent", zap.String("intent", intent))
	}

	c.JSON(http.StatusOK, models.WebhookResponse{FulfillmentText: reply})
}

func welcomeText() string {
	return fmt.Sprintf(`🦷 Welcome to %s!

Hello! We’re glad to see you here. I’m your virtual assistant and I can help you:

Book a dental appointment 🗓️

Learn about our services 🦷

Get clinic timings & contact info 📞

How may I assist you today? 😊`, config.AppConfig.ClinicName)
}
