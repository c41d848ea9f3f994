package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/response"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create places an order against an existing restaurant.
// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	response.Created(c, order)
}

// Get returns a single order.
// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "order id must be an integer")
		return
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	response.OK(c, order)
}

// AdvanceStatus moves an order through its lifecycle.
// PATCH /api/orders/:id/status
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "order id must be an integer")
		return
	}

	var req dto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	order, err := h.orderService.AdvanceStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrIllegalTransition):
			response.ValidationError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	response.OK(c, order)
}

// QRCode streams the pickup token as a PNG.
// GET /api/orders/:id/qrcode
func (h *OrderHandler) QRCode(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "order id must be an integer")
		return
	}

	png, err := h.orderService.QRCodePNG(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	c.Data(200, "image/png", png)
}
