package routes

const (
	PathProducts     = "/products"
	PathAdmin        = "/admin"
	PathVehicles     = "/vehicles"
	PathInstallation = "/installation"
	PathGarage       = "/garage"
	PathCart         = "/cart"
	PathOrders       = "/orders"
	PathPayments     = "/payments"
	PathPing         = "/ping"
)
