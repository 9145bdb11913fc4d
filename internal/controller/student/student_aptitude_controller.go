package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prodigyhire/backend/internal/controller"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/middleware"
	"github.com/prodigyhire/backend/internal/service"
)

type AptitudeController struct {
	aptitudeSvc service.AptitudeService
}

func NewAptitudeController(aptitudeSvc service.AptitudeService) *AptitudeController {
	return &AptitudeController{aptitudeSvc: aptitudeSvc}
}

// AvailableTests godoc
// @Summary List tests the caller can sit
// @Tags aptitude
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /aptitude/available [get]
func (ctrl *AptitudeController) AvailableTests(c *gin.Context) {
	tests, err := ctrl.aptitudeSvc.AvailableTests(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"tests": tests}))
}

// StartTest godoc
// @Summary Start a test session
// @Description Returns the question sheet without correct answers; order may be shuffled
// @Tags aptitude
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Already taken"
// @Failure 404 {object} dto.Envelope "Test not found or inactive"
// @Security BearerAuth
// @Router /aptitude/{id}/start [get]
func (ctrl *AptitudeController) StartTest(c *gin.Context) {
	testID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	session, err := ctrl.aptitudeSvc.StartTest(testID, middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(session))
}

// SubmitTest godoc
// @Summary Submit answers and get the score
// @Tags aptitude
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param body body dto.TestSubmitDTO true "Answers, session start time and optional application id"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Already taken"
// @Failure 404 {object} dto.Envelope "Test not found"
// @Security BearerAuth
// @Router /aptitude/{id}/submit [post]
func (ctrl *AptitudeController) SubmitTest(c *gin.Context) {
	testID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.TestSubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind TestSubmitDTO")
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	result, err := ctrl.aptitudeSvc.SubmitTest(testID, middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessMessage("Test submitted successfully", gin.H{"result": result}))
}

// MyResults godoc
// @Summary List the caller's test results
// @Tags aptitude
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /aptitude/results [get]
func (ctrl *AptitudeController) MyResults(c *gin.Context) {
	results, err := ctrl.aptitudeSvc.MyResults(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"results": results}))
}
