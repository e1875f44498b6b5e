package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vominhduc11/dealerhub/internal/server/http/handlers"
	"github.com/vominhduc11/dealerhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	dealer := api.Group("/dealer")
	dealer.POST("/register", authHandler.Register)
	dealer.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/catalog", catalogHandler.List)
	authed.GET("/catalog/discounts", catalogHandler.Discounts)
	authed.GET("/cart", cartHandler.Show)
	authed.POST("/cart/items", cartHandler.AddItem)
	authed.PATCH("/cart/items/:id", cartHandler.UpdateItem)
	authed.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.PUT("/cart/note", cartHandler.SetNote)
	authed.POST("/order", orderHandler.Place)
	authed.GET("/order", orderHandler.Current)
	authed.POST("/order/pay", orderHandler.Pay)
	authed.POST("/order/new", orderHandler.StartNew)

	return engine
}
