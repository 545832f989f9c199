// internal/handlers/ball.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nplsapp/npls-backend/internal/export"
	"github.com/nplsapp/npls-backend/internal/forms"
	"github.com/nplsapp/npls-backend/internal/models"
	"github.com/nplsapp/npls-backend/internal/services"
	"github.com/nplsapp/npls-backend/internal/utils"
	"github.com/nplsapp/npls-backend/internal/views"
)

type BallHandler struct {
	ballService *services.BallService
	binder      *forms.Binder
}

func NewBallHandler(ballService *services.BallService, binder *forms.Binder) *BallHandler {
	return &BallHandler{
		ballService: ballService,
		binder:      binder,
	}
}

// GET /balls
func (h *BallHandler) GetBalls(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := views.BallFilter{
		Search:         params.Search,
		Brand:          c.Query("brand"),
		CoverstockType: c.Query("type"),
		ReleaseType:    c.Query("release_type"),
	}

	filtered := filter.Apply(h.ballService.GetAll())
	sorted := views.SortBalls(filtered, params.Sort, params.Order)
	page := views.Paginate(sorted, params.Page, params.Limit)

	items := make([]models.BallListItem, 0, len(page))
	for _, b := range page {
		items = append(items, b.ListItem())
	}

	result := utils.CreatePaginationResult(items, len(sorted), params)
	utils.PaginatedResponse(c, result)
}

// GET /balls/stats
func (h *BallHandler) GetStats(c *gin.Context) {
	utils.SuccessResponse(c, h.ballService.Stats())
}

// GET /balls/:id
func (h *BallHandler) GetBall(c *gin.Context) {
	ball, ok := h.ballService.GetByID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"ball":  ball,
		"draft": h.binder.ToDraft(ball),
	})
}

// POST /balls
func (h *BallHandler) CreateBall(c *gin.Context) {
	var draft forms.BallDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&draft)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ball := h.ballService.Create(h.binder.FromDraft(draft))
	utils.CreatedResponse(c, gin.H{
		"message": "Product created successfully",
		"ball":    ball,
	})
}

// PUT /balls/:id
func (h *BallHandler) UpdateBall(c *gin.Context) {
	var draft forms.BallDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&draft)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ball, ok := h.ballService.Update(c.Param("id"), h.binder.FromDraft(draft))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"message": "Product updated successfully",
		"ball":    ball,
	})
}

// DELETE /balls/:id
func (h *BallHandler) DeleteBall(c *gin.Context) {
	h.ballService.Delete(c.Param("id"))
	utils.SuccessResponse(c, gin.H{
		"message": "Product deleted successfully",
	})
}

// POST /balls/:id/duplicate
func (h *BallHandler) DuplicateBall(c *gin.Context) {
	ball, ok := h.ballService.Duplicate(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.CreatedResponse(c, gin.H{
		"message": "Duplicated: " + ball.BallName,
		"ball":    ball,
	})
}

// GET /balls/:id/spec-sheet
func (h *BallHandler) ExportSpecSheet(c *gin.Context) {
	ball, ok := h.ballService.GetByID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}
	sheet := export.GenerateSpecSheet(ball)
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(ball)+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(sheet))
}

// POST /balls/refresh
func (h *BallHandler) Refresh(c *gin.Context) {
	h.ballService.RefreshFromSeed()
	utils.SuccessResponse(c, gin.H{
		"message": "Catalog reloaded from seed data",
		"total":   len(h.ballService.GetAll()),
	})
}
