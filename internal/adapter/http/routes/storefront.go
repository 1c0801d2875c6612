package routes

import (
	"auto_accessories/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalog *handlers.CatalogHandler, installation *handlers.InstallationHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", catalog.ListProducts)
		products.GET("/:id", catalog.GetProduct)

		products.GET("/:id/installation", installation.GetPanel)
		products.PUT("/:id/installation/vehicle", installation.SelectVehicle)
		products.PUT("/:id/installation/manual", installation.SubmitManualVehicle)
		products.POST("/:id/installation/proposals", installation.Propose)
		products.POST("/:id/installation/confirm", installation.Confirm)
		products.POST("/:id/installation/cancel", installation.Cancel)
	}

	rg.GET(PathVehicles, catalog.ListVehicles)
	rg.GET(PathInstallation+"/rates", catalog.InstallationRates)

	// Product editor. Access control sits in front of the service.
	admin := rg.Group(PathAdmin)
	{
		admin.PUT(PathProducts+"/:id", catalog.UpsertProduct)
	}
}

func addGarageRoutes(rg *gin.RouterGroup, garage *handlers.GarageHandler) {
	g := rg.Group(PathGarage)
	{
		g.GET("", garage.GetGarage)
		g.PUT("", garage.SelectCar)
		g.DELETE("", garage.ClearGarage)
	}
}

func addCartRoutes(rg *gin.RouterGroup, cart *handlers.CartHandler) {
	c := rg.Group(PathCart)
	{
		c.GET("", cart.GetCart)
		c.DELETE("", cart.ClearCart)
		c.POST("/items", cart.AddToCart)
		c.PATCH("/items/:product_id", cart.UpdateQuantity)
		c.DELETE("/items/:product_id", cart.RemoveFromCart)
		c.DELETE("/lines/:line_id", cart.RemoveLine)
	}
}
