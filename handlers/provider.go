package handlers

import (
	"errors"
	"net/http"
	"strconv"

	providerRepo "careindex/database/repository/provider"
	"careindex/models"
	"careindex/services/directory"
	"careindex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the provider listing, detail, creation, and
// filtered-search endpoints.
type ProviderHandler struct {
	Service directory.DirectoryService
}

func NewProviderHandler(svc directory.DirectoryService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// ListProvidersHandler returns one page of providers. Unparseable paging
// values fall back to defaults rather than erroring.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sortBy := c.DefaultQuery("sort", models.SortRelevance)

	result, err := h.Service.ListProviders(c.Request.Context(), page, limit, sortBy)
	if err != nil {
		logger.Error("Failed to retrieve providers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get providers", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProviderByIDHandler returns the profile for a specific provider.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Provider not found"})
		return
	}

	provider, err := h.Service.GetProvider(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Provider not found"})
			return
		}
		logger.Error("Failed to retrieve provider", zap.Int("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get provider", "")
		return
	}
	c.JSON(http.StatusOK, provider)
}

// CreateProviderHandler creates a new provider listing.
func (h *ProviderHandler) CreateProviderHandler(c *gin.Context) {
	logger := getLogger(c)

	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		logger.Warn("Invalid provider creation request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Service.CreateProvider(c.Request.Context(), provider)
	if err != nil {
		logger.Error("Failed to create provider", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create provider", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// FilterProvidersHandler validates the filter payload and returns one page
// of matching providers. Validation failures list every invalid field.
func (h *ProviderHandler) FilterProvidersHandler(c *gin.Context) {
	logger := getLogger(c)
	utils.SearchRequestsTotal.Inc()

	var filter models.ProviderFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		logger.Warn("Invalid provider filter request", zap.Error(err))
		if fields := fieldErrors(err); len(fields) > 0 {
			utils.JSONValidationError(c, "Invalid filter", fields)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	result, err := h.Service.SearchProviders(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to search providers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search providers", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
