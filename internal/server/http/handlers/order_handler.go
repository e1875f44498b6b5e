package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/server/http/dto"
)

// OrderHandler manages the order lifecycle endpoints.
type OrderHandler struct {
	facade CheckoutFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade CheckoutFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/order. The body is optional; an empty body places
// the order with the note already stored on the cart.
func (h *OrderHandler) Place(c *gin.Context) {
	dealerID := CurrentDealerID(c)

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Status(http.StatusBadRequest)
		return
	}

	if existing := h.facade.CurrentOrder(dealerID); existing != nil {
		status := h.facade.Cart(dealerID).PaymentStatus
		c.JSON(http.StatusOK, toOrderResponse(*existing, status))
		return
	}

	order := h.facade.PlaceOrder(dealerID, req.Note)
	if order == nil {
		c.Status(http.StatusConflict)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order, model.PaymentStatusIdle))
}

// Current handles GET /api/order.
func (h *OrderHandler) Current(c *gin.Context) {
	dealerID := CurrentDealerID(c)

	order := h.facade.CurrentOrder(dealerID)
	if order == nil {
		c.Status(http.StatusNoContent)
		return
	}

	status := h.facade.Cart(dealerID).PaymentStatus
	c.JSON(http.StatusOK, toOrderResponse(*order, status))
}

// Pay handles POST /api/order/pay.
func (h *OrderHandler) Pay(c *gin.Context) {
	dealerID := CurrentDealerID(c)

	if h.facade.CurrentOrder(dealerID) == nil {
		c.Status(http.StatusConflict)
		return
	}

	status := h.facade.PayOrder(dealerID)
	c.JSON(http.StatusOK, dto.PaymentResponse{Status: string(status)})
}

// StartNew handles POST /api/order/new.
func (h *OrderHandler) StartNew(c *gin.Context) {
	view := h.facade.StartNewOrder(CurrentDealerID(c))
	c.JSON(http.StatusOK, toCartResponse(view))
}

func toOrderResponse(order model.Order, status model.PaymentStatus) dto.OrderResponse {
	items := make([]dto.CartItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, toCartItemResponse(item))
	}
	return dto.OrderResponse{
		ID:            order.ID,
		CreatedAt:     order.CreatedAt,
		Items:         items,
		Subtotal:      order.Subtotal,
		Discount:      toDiscountResponse(order.Discount),
		Total:         order.Total,
		TotalDisplay:  model.FormatAmount(order.Total),
		Note:          order.Note,
		PaymentStatus: string(status),
	}
}
