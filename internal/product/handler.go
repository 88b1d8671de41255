package product

import (
	"net/http"
	"strconv"

	apperrors "github.com/cachefront/backend/internal/errors"
	httpHandler "github.com/cachefront/backend/internal/http"
	"github.com/cachefront/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for product endpoints
type Handler struct {
	service         ProductService
	responseHandler httpHandler.ResponseHandler
	logger          logger.Logger
}

// NewHandler creates a new product handler instance
func NewHandler(service ProductService, responseHandler httpHandler.ResponseHandler, logger logger.Logger) *Handler {
	return &Handler{
		service:         service,
		responseHandler: responseHandler,
		logger:          logger,
	}
}

// RegisterRoutes registers all product routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/products/:id", h.handleGetProduct)
}

// @Summary Get product by id
// @Description Returns the product from cache when a live entry exists, otherwise fetches it from the upstream source and caches it
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} httpHandler.Response "Product retrieved successfully"
// @Failure 400 {object} httpHandler.Response "Invalid product id"
// @Router /products/{id} [get]
func (h *Handler) handleGetProduct(c *gin.Context) {
	requestID, _ := c.Get("request_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.logger.LogInfo("Invalid product id", map[string]interface{}{
			"request_id": requestID,
			"id":         c.Param("id"),
		})
		h.responseHandler.ValidationErrorResponse(c, "id", "Product id must be an integer")
		return
	}

	p, origin, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.responseHandler.ErrorResponse(c, http.StatusInternalServerError, apperrors.CodeUpstream, "Failed to retrieve product", err)
		return
	}

	h.responseHandler.SuccessResponse(c, ProductResponse{
		Product: p,
		Origin:  string(origin),
	}, "Product retrieved successfully")
}
