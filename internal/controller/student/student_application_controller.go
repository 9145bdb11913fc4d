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

type ApplicationController struct {
	applicationSvc service.ApplicationService
}

func NewApplicationController(applicationSvc service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationSvc: applicationSvc}
}

// Apply godoc
// @Summary Apply for a job
// @Description Creates an application after deadline, eligibility, resume and duplicate checks
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param body body dto.ApplyDTO true "Cover letter"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Deadline passed, not eligible, resume missing or duplicate"
// @Failure 404 {object} dto.Envelope "Job not found"
// @Security BearerAuth
// @Router /jobs/{id}/apply [post]
func (ctrl *ApplicationController) Apply(c *gin.Context) {
	jobID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.ApplyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ApplyDTO")
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	app, err := ctrl.applicationSvc.Apply(middleware.UserID(c), jobID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessMessage("Application submitted successfully", gin.H{"application": app}))
}

// MyApplications godoc
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /applications [get]
func (ctrl *ApplicationController) MyApplications(c *gin.Context) {
	apps, err := ctrl.applicationSvc.ListMine(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"applications": apps, "count": len(apps)}))
}
