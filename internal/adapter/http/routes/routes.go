package routes

import (
	_ "auto_accessories/docs" // This will be auto-generated
	"auto_accessories/internal/adapter/http/handlers"
	"auto_accessories/internal/adapter/http/middleware"
	"auto_accessories/internal/infrastructure/catalog"
	"auto_accessories/internal/infrastructure/payments"
	"auto_accessories/internal/usecase"
	"auto_accessories/internal/usecase/interfaces"
	"context"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const defaultPort = "8080"

type appHandlers struct {
	catalog      *handlers.CatalogHandler
	garage       *handlers.GarageHandler
	installation *handlers.InstallationHandler
	cart         *handlers.CartHandler
	orders       *handlers.OrderHandler
	payments     *handlers.PaymentHandler
}

// Run will start the server
func Run() {
	repos, err := newRepositories(context.Background(), os.Getenv("STORAGE_DRIVER"))
	if err != nil {
		zap.L().Fatal("Failed to set up storage", zap.Error(err))
	}

	router := newRouter(buildHandlers(repos, newPaymentGateway()))

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		zap.L().Fatal("Failed to startup the application", zap.Error(err))
	}
}

func newPaymentGateway() interfaces.IPaymentGateway {
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		zap.L().Warn("Mercado Pago gateway not configured", zap.Error(err))
		return nil
	}
	return mpGateway
}

func buildHandlers(repos repositories, gateway interfaces.IPaymentGateway) appHandlers {
	rates := catalog.InstallationRatesFromEnv()

	catalogUseCase := usecase.NewCatalogUseCase(repos.products, catalog.Vehicles, rates)
	garageUseCase := usecase.NewGarageUseCase(repos.garages)
	cartUseCase := usecase.NewCartUseCase(repos.carts, repos.products)
	installationUseCase := usecase.NewInstallationUseCase(repos.products, repos.panels, garageUseCase, cartUseCase, rates)
	orderUseCase := usecase.NewOrderUseCase(repos.orders, cartUseCase)
	paymentUseCase := usecase.NewPaymentUseCase(repos.payments, repos.orders, gateway)

	return appHandlers{
		catalog:      handlers.NewCatalogHandler(catalogUseCase),
		garage:       handlers.NewGarageHandler(garageUseCase),
		installation: handlers.NewInstallationHandler(installationUseCase),
		cart:         handlers.NewCartHandler(cartUseCase),
		orders:       handlers.NewOrderHandler(orderUseCase),
		payments:     handlers.NewPaymentHandler(paymentUseCase),
	}
}

func newRouter(h appHandlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	v1.Use(middleware.Session())
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.catalog, h.installation)
	addGarageRoutes(v1, h.garage)
	addCartRoutes(v1, h.cart)
	addCheckoutRoutes(v1, h.orders, h.payments)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Recovery(zap.L()))
	router.Use(middleware.RequestLogger(zap.L()))
}
