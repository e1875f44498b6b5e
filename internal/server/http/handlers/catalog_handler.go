package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/server/http/dto"
)

// CatalogHandler serves the product list and discount tier overview.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/catalog.
func (h *CatalogHandler) List(c *gin.Context) {
	dealerID := CurrentDealerID(c)

	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(products) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	view := h.facade.Cart(dealerID)
	inCart := make(map[string]int64, len(view.Items))
	for _, item := range view.Items {
		inCart[item.Product.ID] = item.Quantity
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponse{
			ID:               p.ID,
			Name:             p.Name,
			SKU:              p.SKU,
			Category:         p.Category,
			UnitPrice:        p.UnitPrice,
			UnitPriceDisplay: model.FormatAmount(p.UnitPrice),
			Unit:             p.Unit,
			Stock:            p.Stock,
			MinOrderQty:      p.MinOrderQty,
			PackSize:         p.PackSize,
			InCart:           inCart[p.ID],
		})
	}

	c.JSON(http.StatusOK, response)
}

// Discounts handles GET /api/catalog/discounts.
func (h *CatalogHandler) Discounts(c *gin.Context) {
	dealerID := CurrentDealerID(c)

	statuses := h.facade.DiscountTiers(dealerID)
	response := make([]dto.DiscountTierResponse, 0, len(statuses))
	for _, s := range statuses {
		response = append(response, dto.DiscountTierResponse{
			RuleID:    s.Rule.ID,
			Label:     s.Rule.Label,
			Percent:   s.Rule.Percent,
			Kind:      string(s.Rule.Condition.Kind),
			Threshold: s.Rule.Condition.Threshold,
			Eligible:  s.Eligible,
		})
	}

	c.JSON(http.StatusOK, response)
}
