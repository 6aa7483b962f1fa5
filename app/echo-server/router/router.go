package router

import (
	"styleLoop/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupOutfitRoutes(api *echo.Group, handler *rest.OutfitHandler) {
	outfits := api.Group("/outfits")

	outfits.GET("", handler.Generate)
	outfits.POST("/feedback", handler.Feedback)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)
}
