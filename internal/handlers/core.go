// internal/handlers/core.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nplsapp/npls-backend/internal/models"
	"github.com/nplsapp/npls-backend/internal/services"
	"github.com/nplsapp/npls-backend/internal/utils"
	"github.com/nplsapp/npls-backend/internal/views"
)

type CoreHandler struct {
	coreService *services.CoreService
}

func NewCoreHandler(coreService *services.CoreService) *CoreHandler {
	return &CoreHandler{coreService: coreService}
}

// GET /cores
func (h *CoreHandler) GetCores(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var cores []models.Core
	switch {
	case c.Query("line") != "":
		cores = h.coreService.GetByLine(c.Query("line"))
	case c.Query("symmetric") != "":
		if symmetric, err := strconv.ParseBool(c.Query("symmetric")); err == nil && symmetric {
			cores = h.coreService.GetSymmetric()
		} else {
			cores = h.coreService.GetAsymmetric()
		}
	default:
		cores = h.coreService.GetAll()
	}

	if params.Search != "" {
		filtered := []models.Core{}
		matched := h.coreService.Search(params.Search)
		ids := make(map[string]bool, len(matched))
		for _, m := range matched {
			ids[m.ID] = true
		}
		for _, core := range cores {
			if ids[core.ID] {
				filtered = append(filtered, core)
			}
		}
		cores = filtered
	}

	page := views.Paginate(cores, params.Page, params.Limit)
	result := utils.CreatePaginationResult(page, len(cores), params)
	utils.PaginatedResponse(c, result)
}

// GET /cores/:id
func (h *CoreHandler) GetCore(c *gin.Context) {
	core, ok := h.coreService.GetByID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Core")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"core":        core,
		"weightRange": core.WeightRange(),
	})
}

// POST /cores
func (h *CoreHandler) CreateCore(c *gin.Context) {
	var core models.Core
	if err := c.ShouldBindJSON(&core); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	if core.MarketingName == "" {
		utils.BadRequestResponse(c, "marketingName is required", nil)
		return
	}

	created := h.coreService.Create(core)
	utils.CreatedResponse(c, gin.H{
		"message": "Core created successfully",
		"core":    created,
	})
}

// PUT /cores/:id
func (h *CoreHandler) UpdateCore(c *gin.Context) {
	var updates models.Core
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	core, ok := h.coreService.Update(c.Param("id"), updates)
	if !ok {
		utils.NotFoundResponse(c, "Core")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"message": "Core updated successfully",
		"core":    core,
	})
}

// DELETE /cores/:id
func (h *CoreHandler) DeleteCore(c *gin.Context) {
	h.coreService.Delete(c.Param("id"))
	utils.SuccessResponse(c, gin.H{
		"message": "Core deleted successfully",
	})
}
