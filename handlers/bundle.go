package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Provider endpoints.
	ListProvidersHandler   gin.HandlerFunc
	GetProviderByIDHandler gin.HandlerFunc
	CreateProviderHandler  gin.HandlerFunc
	FilterProvidersHandler gin.HandlerFunc

	// Reference endpoints.
	ListSpecialtiesHandler    gin.HandlerFunc
	ListInsurancePlansHandler gin.HandlerFunc
}
