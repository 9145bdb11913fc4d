package student

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prodigyhire/backend/internal/controller"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/middleware"
	"github.com/prodigyhire/backend/internal/service"
)

// JobController serves the job browse pages and the student's bookmarks.
// Listing and detail are public; saving requires a student principal.
type JobController struct {
	jobSvc service.JobService
}

func NewJobController(jobSvc service.JobService) *JobController {
	return &JobController{jobSvc: jobSvc}
}

// ListJobs godoc
// @Summary Browse open jobs
// @Description Active jobs whose deadline has not passed, with filters and pagination
// @Tags jobs
// @Produce json
// @Param search query string false "Full-text search on title and description"
// @Param job_type query string false "Job type filter"
// @Param location query string false "Location substring filter"
// @Param department query string false "Eligible department filter"
// @Param batch query int false "Eligible batch filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope
// @Router /jobs [get]
func (ctrl *JobController) ListJobs(c *gin.Context) {
	var filter dto.JobFilterDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	list, err := ctrl.jobSvc.List(filter)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(list))
}

// GetJob godoc
// @Summary Get a single job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /jobs/{id} [get]
func (ctrl *JobController) GetJob(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	job, err := ctrl.jobSvc.Get(id)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"job": job}))
}

// ToggleSaveJob godoc
// @Summary Save or unsave a job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /jobs/{id}/save [post]
func (ctrl *JobController) ToggleSaveJob(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	result, err := ctrl.jobSvc.ToggleSave(middleware.UserID(c), id)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(result))
}

// SavedJobs godoc
// @Summary List the caller's saved jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /jobs/saved [get]
func (ctrl *JobController) SavedJobs(c *gin.Context) {
	jobs, err := ctrl.jobSvc.SavedJobs(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"saved_jobs": jobs, "count": len(jobs)}))
}
