// internal/handlers/ball_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/nplsapp/npls-backend/internal/forms"
	"github.com/nplsapp/npls-backend/internal/models"
	"github.com/nplsapp/npls-backend/internal/services"
	"github.com/nplsapp/npls-backend/internal/storage"
)

type BallHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ballService *services.BallService
}

func (suite *BallHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store, err := storage.Open(filepath.Join(suite.T().TempDir(), "npls.db"))
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { store.Close() })

	seedDir := suite.T().TempDir()
	rows := []map[string]interface{}{
		{"Ball Name": "Hy-Road Pearl", "Brand": "Storm", "Type": "Pearl Reactive", "Coverstock": "R2S Pearl"},
		{"Ball Name": "Zen", "Brand": "900 Global", "Type": "Solid Reactive"},
	}
	data, err := json.Marshal(rows)
	suite.Require().NoError(err)
	suite.Require().NoError(os.WriteFile(filepath.Join(seedDir, "balls-seed.json"), data, 0o644))

	suite.ballService = services.NewBallService(store, seedDir)
	suite.ballService.Init()

	coreService := services.NewCoreService(store, suite.T().TempDir())
	coreService.Init()

	handler := NewBallHandler(suite.ballService, forms.NewBinder(coreService))

	suite.router = gin.New()
	v1 := suite.router.Group("/v1")
	balls := v1.Group("/balls")
	{
		balls.GET("", handler.GetBalls)
		balls.GET("/stats", handler.GetStats)
		balls.POST("", handler.CreateBall)
		balls.POST("/refresh", handler.Refresh)
		balls.GET("/:id", handler.GetBall)
		balls.PUT("/:id", handler.UpdateBall)
		balls.DELETE("/:id", handler.DeleteBall)
		balls.POST("/:id/duplicate", handler.DuplicateBall)
		balls.GET("/:id/spec-sheet", handler.ExportSpecSheet)
	}
}

func (suite *BallHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BallHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (suite *BallHandlerTestSuite) TestListBalls() {
	w := suite.request(http.MethodGet, "/v1/balls", nil)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	suite.Equal(true, resp["success"])
	suite.Len(resp["data"], 2)
	suite.Equal("2", w.Header().Get("X-Total-Count"))
}

func (suite *BallHandlerTestSuite) TestListBallsFiltered() {
	w := suite.request(http.MethodGet, "/v1/balls?search=pearl&brand=Storm", nil)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	data := resp["data"].([]interface{})
	suite.Require().Len(data, 1)
	item := data[0].(map[string]interface{})
	suite.Equal("Hy-Road Pearl", item["ballName"])
}

func (suite *BallHandlerTestSuite) TestListBallsPagination() {
	w := suite.request(http.MethodGet, "/v1/balls?page=2&limit=1", nil)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	suite.Len(resp["data"], 1)
	meta := resp["meta"].(map[string]interface{})
	pagination := meta["pagination"].(map[string]interface{})
	suite.Equal(float64(2), pagination["total"])
	suite.Equal(float64(2), pagination["total_pages"])
}

func (suite *BallHandlerTestSuite) TestGetBall() {
	id := suite.ballService.GetAll()[0].ID

	w := suite.request(http.MethodGet, "/v1/balls/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	data := resp["data"].(map[string]interface{})
	suite.Contains(data, "ball")
	suite.Contains(data, "draft")
}

func (suite *BallHandlerTestSuite) TestGetBallNotFound() {
	w := suite.request(http.MethodGet, "/v1/balls/ball-nope", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	resp := suite.decode(w)
	suite.Equal(false, resp["success"])
}

func (suite *BallHandlerTestSuite) TestCreateBall() {
	w := suite.request(http.MethodPost, "/v1/balls", map[string]interface{}{
		"ballName": "Phaze II",
		"brand":    "Storm",
	})
	suite.Equal(http.StatusCreated, w.Code)

	resp := suite.decode(w)
	ball := resp["data"].(map[string]interface{})["ball"].(map[string]interface{})
	suite.Equal("Phaze II", ball["ballName"])
	suite.Contains(ball["id"], "ball-")

	// New products land at the top
	suite.Equal("Phaze II", suite.ballService.GetAll()[0].BallName)
}

func (suite *BallHandlerTestSuite) TestCreateBallValidation() {
	w := suite.request(http.MethodPost, "/v1/balls", map[string]interface{}{
		"brand": "Storm",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	resp := suite.decode(w)
	suite.Equal(false, resp["success"])
}

func (suite *BallHandlerTestSuite) TestUpdateBall() {
	id := suite.ballService.GetAll()[0].ID

	w := suite.request(http.MethodPut, "/v1/balls/"+id, map[string]interface{}{
		"ballName":   "Hy-Road Pearl",
		"brand":      "Storm",
		"coverstock": "GI-20",
	})
	suite.Equal(http.StatusOK, w.Code)

	updated, ok := suite.ballService.GetByID(id)
	suite.Require().True(ok)
	suite.Equal("GI-20", updated.Coverstock)
}

func (suite *BallHandlerTestSuite) TestUpdateBallClearsOmittedFields() {
	ball := suite.ballService.GetAll()[0]
	patch := ball
	patch.SpecialNotes = "limited run"
	_, ok := suite.ballService.Update(ball.ID, patch)
	suite.Require().True(ok)

	// A form submit without the field clears it
	w := suite.request(http.MethodPut, "/v1/balls/"+ball.ID, map[string]interface{}{
		"ballName": ball.BallName,
		"brand":    ball.Brand,
	})
	suite.Equal(http.StatusOK, w.Code)

	updated, ok := suite.ballService.GetByID(ball.ID)
	suite.Require().True(ok)
	suite.Empty(updated.SpecialNotes)
}

func (suite *BallHandlerTestSuite) TestDeleteBall() {
	id := suite.ballService.GetAll()[0].ID

	w := suite.request(http.MethodDelete, "/v1/balls/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.ballService.GetAll(), 1)

	// Deleting again still succeeds
	w = suite.request(http.MethodDelete, "/v1/balls/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *BallHandlerTestSuite) TestDuplicateBall() {
	id := suite.ballService.GetAll()[0].ID

	w := suite.request(http.MethodPost, "/v1/balls/"+id+"/duplicate", nil)
	suite.Equal(http.StatusCreated, w.Code)

	resp := suite.decode(w)
	ball := resp["data"].(map[string]interface{})["ball"].(map[string]interface{})
	suite.Contains(ball["ballName"], " (Copy)")
	suite.Len(suite.ballService.GetAll(), 3)
}

func (suite *BallHandlerTestSuite) TestStats() {
	w := suite.request(http.MethodGet, "/v1/balls/stats", nil)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	data := resp["data"].(map[string]interface{})
	suite.Equal(float64(2), data["total"])
}

func (suite *BallHandlerTestSuite) TestExportSpecSheet() {
	ball := suite.ballService.GetAll()[0]

	w := suite.request(http.MethodGet, "/v1/balls/"+ball.ID+"/spec-sheet", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/plain")
	suite.Contains(w.Header().Get("Content-Disposition"), "_spec_sheet.txt")
	suite.Contains(w.Body.String(), "PRODUCT SPECIFICATION SHEET")
	suite.Contains(w.Body.String(), ball.BallName)
}

func (suite *BallHandlerTestSuite) TestRefresh() {
	suite.ballService.Create(models.Ball{BallName: "Local Edit", Brand: "Storm"})

	w := suite.request(http.MethodPost, "/v1/balls/refresh", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.ballService.GetAll(), 2)
}

func TestBallHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BallHandlerTestSuite))
}
