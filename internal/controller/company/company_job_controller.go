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

type JobController struct {
	jobSvc service.JobService
}

func NewJobController(jobSvc service.JobService) *JobController {
	return &JobController{jobSvc: jobSvc}
}

// CreateJob godoc
// @Summary Post a new job
// @Tags company-jobs
// @Accept json
// @Produce json
// @Param body body dto.JobCreateDTO true "Job details and eligibility rules"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /jobs [post]
func (ctrl *JobController) CreateJob(c *gin.Context) {
	var req dto.JobCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind JobCreateDTO")
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	job, err := ctrl.jobSvc.Create(middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessMessage("Job created successfully", gin.H{"job": job}))
}

// UpdateJob godoc
// @Summary Update a job posting
// @Description Partial update; only the owning company may edit
// @Tags company-jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param body body dto.JobUpdateDTO true "Fields to change"
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /jobs/{id} [patch]
func (ctrl *JobController) UpdateJob(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.JobUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind JobUpdateDTO")
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	job, err := ctrl.jobSvc.Update(middleware.UserID(c), id, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessMessage("Job updated successfully", gin.H{"job": job}))
}

// DeleteJob godoc
// @Summary Delete a job posting
// @Tags company-jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (ctrl *JobController) DeleteJob(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.jobSvc.Delete(middleware.UserID(c), middleware.Role(c), id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessMessage("Job deleted successfully", nil))
}

// CompanyJobs godoc
// @Summary List the caller's job postings
// @Tags company-jobs
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /jobs/company/my-jobs [get]
func (ctrl *JobController) CompanyJobs(c *gin.Context) {
	jobs, err := ctrl.jobSvc.CompanyJobs(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"jobs": jobs, "count": len(jobs)}))
}
