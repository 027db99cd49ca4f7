package handlers

import (
	"net/http"

	"careindex/services/directory"
	"careindex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReferenceHandler serves the specialty and insurance-plan lookup lists.
type ReferenceHandler struct {
	Service directory.DirectoryService
}

func NewReferenceHandler(svc directory.DirectoryService) *ReferenceHandler {
	return &ReferenceHandler{Service: svc}
}

func (h *ReferenceHandler) ListSpecialtiesHandler(c *gin.Context) {
	specialties, err := h.Service.ListSpecialties(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to retrieve specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get specialties", "")
		return
	}
	c.JSON(http.StatusOK, specialties)
}

func (h *ReferenceHandler) ListInsurancePlansHandler(c *gin.Context) {
	plans, err := h.Service.ListInsurancePlans(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to retrieve insurance plans", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get insurance plans", "")
		return
	}
	c.JSON(http.StatusOK, plans)
}
