package company

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prodigyhire/backend/internal/controller"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/middleware"
	"github.com/prodigyhire/backend/internal/service"
)

type TestController struct {
	aptitudeSvc service.AptitudeService
}

func NewTestController(aptitudeSvc service.AptitudeService) *TestController {
	return &TestController{aptitudeSvc: aptitudeSvc}
}

// CreateTest godoc
// @Summary Create an aptitude test
// @Description Optionally attaches the test to one of the caller's jobs
// @Tags company-aptitude
// @Accept json
// @Produce json
// @Param body body dto.TestCreateDTO true "Test settings and questions"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /aptitude/create [post]
func (ctrl *TestController) CreateTest(c *gin.Context) {
	var req dto.TestCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind TestCreateDTO")
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	test, err := ctrl.aptitudeSvc.CreateTest(middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessMessage("Test created successfully", gin.H{"test": test}))
}

// CompanyTests godoc
// @Summary List the caller's tests
// @Tags company-aptitude
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /aptitude/company [get]
func (ctrl *TestController) CompanyTests(c *gin.Context) {
	tests, err := ctrl.aptitudeSvc.CompanyTests(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"tests": tests, "count": len(tests)}))
}

// DeleteTest godoc
// @Summary Delete a test
// @Tags company-aptitude
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /aptitude/{id} [delete]
func (ctrl *TestController) DeleteTest(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.aptitudeSvc.DeleteTest(middleware.UserID(c), id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessMessage("Test deleted successfully", nil))
}

// TestResults godoc
// @Summary List results for a test
// @Description Ranked by percentage, best first
// @Tags company-aptitude
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /aptitude/{id}/results [get]
func (ctrl *TestController) TestResults(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	results, err := ctrl.aptitudeSvc.TestResults(middleware.UserID(c), id)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"results": results, "count": len(results)}))
}
