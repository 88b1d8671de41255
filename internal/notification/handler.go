package notification

import (
	httpHandler "github.com/cachefront/backend/internal/http"
	"github.com/cachefront/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for notification endpoints
type Handler struct {
	service         NotificationService
	responseHandler httpHandler.ResponseHandler
	logger          logger.Logger
}

// NewHandler creates a new notification handler instance
func NewHandler(service NotificationService, responseHandler httpHandler.ResponseHandler, logger logger.Logger) *Handler {
	return &Handler{
		service:         service,
		responseHandler: responseHandler,
		logger:          logger,
	}
}

// RegisterRoutes registers all notification routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/notify", h.handleNotify)
	router.GET("/notifications", h.handleGetNotifications)
}

// @Summary Schedule a notification
// @Description Accepts a notification and returns immediately; delivery happens in the background after the response is sent
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body NotifyRequest true "Notification to schedule"
// @Success 200 {object} httpHandler.Response "Notification scheduled"
// @Failure 400 {object} httpHandler.Response "Invalid request payload"
// @Failure 503 {object} httpHandler.Response "Dispatch queue is full"
// @Router /notify [post]
func (h *Handler) handleNotify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responseHandler.ValidationErrorResponse(c, "body", "A valid email and a message are required")
		return
	}

	if err := h.service.Schedule(req.Email, req.Message); err != nil {
		h.responseHandler.ServiceUnavailableResponse(c, "Notification queue is full, try again later")
		return
	}

	h.responseHandler.SuccessResponse(c, nil, "Notification scheduled")
}

// @Summary List completed notifications
// @Description Returns the process-lifetime log of notifications that have been delivered
// @Tags notifications
// @Produce json
// @Success 200 {object} httpHandler.Response{data=[]Notification} "Notification log"
// @Router /notifications [get]
func (h *Handler) handleGetNotifications(c *gin.Context) {
	h.responseHandler.SuccessResponse(c, h.service.Log(), "Notification log retrieved successfully")
}
