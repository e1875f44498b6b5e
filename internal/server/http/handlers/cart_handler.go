package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vominhduc11/dealerhub/internal/domain/errors"
	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/server/http/dto"
	"github.com/vominhduc11/dealerhub/internal/session"
)

// CartHandler manages cart endpoints. Mutations against a locked cart are
// silently ignored by the session layer, so every handler simply returns the
// resulting view.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Show handles GET /api/cart.
func (h *CartHandler) Show(c *gin.Context) {
	view := h.facade.Cart(CurrentDealerID(c))
	c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	view, err := h.facade.AddToCart(c.Request.Context(), CurrentDealerID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

// UpdateItem handles PATCH /api/cart/items/:id.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	view := h.facade.UpdateCartItem(CurrentDealerID(c), c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveItem handles DELETE /api/cart/items/:id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view := h.facade.RemoveCartItem(CurrentDealerID(c), c.Param("id"))
	c.JSON(http.StatusOK, toCartResponse(view))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	view := h.facade.ClearCart(CurrentDealerID(c))
	c.JSON(http.StatusOK, toCartResponse(view))
}

// SetNote handles PUT /api/cart/note.
func (h *CartHandler) SetNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	view := h.facade.SetCartNote(CurrentDealerID(c), req.Note)
	c.JSON(http.StatusOK, toCartResponse(view))
}

func toCartResponse(view session.View) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, toCartItemResponse(item))
	}
	return dto.CartResponse{
		Items:           items,
		Note:            view.Note,
		TotalQuantity:   view.TotalQuantity,
		Subtotal:        view.Subtotal,
		SubtotalDisplay: model.FormatAmount(view.Subtotal),
		Discount:        toDiscountResponse(view.Discount),
		Total:           view.Total,
		TotalDisplay:    model.FormatAmount(view.Total),
		Locked:          view.Locked,
	}
}

func toCartItemResponse(item model.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ProductID: item.Product.ID,
		Name:      item.Product.Name,
		SKU:       item.Product.SKU,
		UnitPrice: item.Product.UnitPrice,
		Unit:      item.Product.Unit,
		Quantity:  item.Quantity,
		LineTotal: item.LineTotal(),
	}
}

func toDiscountResponse(d model.DiscountResult) dto.DiscountResponse {
	return dto.DiscountResponse{
		RuleID:  d.RuleID,
		Label:   d.Label,
		Percent: d.Percent,
		Amount:  d.Amount,
	}
}
