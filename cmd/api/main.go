package main

import (
	_ "auto_accessories/docs"
	"auto_accessories/internal/adapter/http/routes"
	"auto_accessories/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Auto Accessories Storefront API
// @version         1.0
// @description     Garage, installation pricing, cart, orders and payments for the auto accessories storefront.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	log := logger.Init()
	defer func() { _ = log.Sync() }()

	routes.Run()
}
