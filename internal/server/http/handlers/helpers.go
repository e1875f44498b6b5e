package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vominhduc11/dealerhub/internal/server/http/middleware"
)

// CurrentDealerID extracts authenticated dealer identifier from context.
func CurrentDealerID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.DealerIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
