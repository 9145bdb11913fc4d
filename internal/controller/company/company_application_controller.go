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

type ApplicationController struct {
	applicationSvc service.ApplicationService
}

func NewApplicationController(applicationSvc service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationSvc: applicationSvc}
}

// JobApplicants godoc
// @Summary List applicants for a job
// @Tags company-applications
// @Produce json
// @Param id path int true "Job ID"
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /jobs/{id}/applicants [get]
func (ctrl *ApplicationController) JobApplicants(c *gin.Context) {
	jobID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var filter dto.ApplicantFilterDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	list, err := ctrl.applicationSvc.ListForJob(middleware.UserID(c), jobID, filter)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(list))
}

// UpdateStatus godoc
// @Summary Update an application's status
// @Description Appends a timeline entry and notifies the student for milestone statuses
// @Tags company-applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param body body dto.StatusUpdateDTO true "New status and context fields"
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /applications/{id}/status [patch]
func (ctrl *ApplicationController) UpdateStatus(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.StatusUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StatusUpdateDTO")
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	app, err := ctrl.applicationSvc.UpdateStatus(middleware.UserID(c), id, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessMessage("Application status updated", gin.H{"application": app}))
}

// BulkUpdate godoc
// @Summary Update the status of many applications at once
// @Description All applications must belong to the caller's jobs or nothing is changed
// @Tags company-applications
// @Accept json
// @Produce json
// @Param body body dto.BulkUpdateDTO true "Application IDs and the target status"
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /applications/bulk-update [post]
func (ctrl *ApplicationController) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind BulkUpdateDTO")
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	updated, err := ctrl.applicationSvc.BulkUpdateStatus(middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessMessage("Applications updated", gin.H{"updated": updated}))
}

// AllApplications godoc
// @Summary List applications across all of the caller's jobs
// @Tags company-applications
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /applications/company/all [get]
func (ctrl *ApplicationController) AllApplications(c *gin.Context) {
	apps, err := ctrl.applicationSvc.ListForCompany(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"applications": apps, "count": len(apps)}))
}
