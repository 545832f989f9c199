// internal/handlers/reference.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nplsapp/npls-backend/internal/services"
	"github.com/nplsapp/npls-backend/internal/utils"
)

type ReferenceHandler struct {
	referenceService *services.ReferenceDataService
}

func NewReferenceHandler(referenceService *services.ReferenceDataService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

type addValueRequest struct {
	Value string `json:"value" validate:"required"`
}

// GET /reference
func (h *ReferenceHandler) GetReferenceData(c *gin.Context) {
	utils.SuccessResponse(c, h.referenceService.Get())
}

// POST /reference/coverstocks
func (h *ReferenceHandler) AddCoverstock(c *gin.Context) {
	h.addValue(c, h.referenceService.AddCoverstock)
}

// POST /reference/finishes
func (h *ReferenceHandler) AddFinish(c *gin.Context) {
	h.addValue(c, h.referenceService.AddFinish)
}

// POST /reference/weight-blocks
func (h *ReferenceHandler) AddWeightBlock(c *gin.Context) {
	h.addValue(c, h.referenceService.AddWeightBlock)
}

func (h *ReferenceHandler) addValue(c *gin.Context, add func(string)) {
	var req addValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	add(req.Value)
	utils.SuccessResponse(c, h.referenceService.Get())
}

// POST /reference/refresh
func (h *ReferenceHandler) Refresh(c *gin.Context) {
	h.referenceService.Refresh()
	utils.SuccessResponse(c, h.referenceService.Get())
}

// DELETE /reference/cache
func (h *ReferenceHandler) ClearCache(c *gin.Context) {
	h.referenceService.ClearCache()
	utils.SuccessResponse(c, gin.H{
		"message": "Reference cache cleared",
	})
}
