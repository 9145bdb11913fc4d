package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/prodigyhire/backend/internal/apperror"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/model"
	"github.com/prodigyhire/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type JobService interface {
	Create(companyID uint, req dto.JobCreateDTO) (*dto.JobResponseDTO, error)
	List(filter dto.JobFilterDTO) (*dto.JobListDTO, error)
	Get(id uint) (*dto.JobResponseDTO, error)
	Update(companyID, jobID uint, req dto.JobUpdateDTO) (*dto.JobResponseDTO, error)
	Delete(userID uint, role string, jobID uint) error
	CompanyJobs(companyID uint) ([]dto.JobResponseDTO, error)
	ToggleSave(studentID, jobID uint) (*dto.SavedJobToggleDTO, error)
	SavedJobs(studentID uint) ([]dto.JobResponseDTO, error)
}

type jobService struct {
	jobRepo      repository.JobRepository
	savedJobRepo repository.SavedJobRepository
}

func NewJobService(jobRepo repository.JobRepository, savedJobRepo repository.SavedJobRepository) JobService {
	return &jobService{jobRepo: jobRepo, savedJobRepo: savedJobRepo}
}

func (s *jobService) Create(companyID uint, req dto.JobCreateDTO) (*dto.JobResponseDTO, error) {
	if !req.Deadline.After(time.Now()) {
		return nil, apperror.New(apperror.CodeValidation, "Deadline must be in the future")
	}

	workMode := req.WorkMode
	if workMode == "" {
		workMode = "On-site"
	}

	job := model.Job{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		JobType:     req.JobType,
		Location:    req.Location,
		WorkMode:    workMode,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Eligibility: model.Eligibility{
			MinCGPA:     req.Eligibility.MinCGPA,
			Departments: req.Eligibility.Departments,
			Batches:     req.Eligibility.Batches,
		},
		Deadline: req.Deadline,
		IsActive: true,
	}

	if err := s.jobRepo.Create(&job); err != nil {
		log.Error().Err(err).Uint("companyID", companyID).Msg("Failed to create job")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to create job")
	}

	resp := jobToDTO(&job)
	return &resp, nil
}

func (s *jobService) List(filter dto.JobFilterDTO) (*dto.JobListDTO, error) {
	page, limit := normalizePage(filter.Page, filter.Limit, 10)
	offset := (page - 1) * limit

	jobs, total, err := s.jobRepo.List(repository.JobFilter{
		Search:     filter.Search,
		JobType:    filter.JobType,
		Location:   filter.Location,
		WorkMode:   filter.WorkMode,
		Department: filter.Department,
		Batch:      filter.Batch,
		MinCGPA:    filter.MinCGPA,
	}, offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list jobs")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve jobs")
	}

	dtos := make([]dto.JobResponseDTO, 0, len(jobs))
	for i := range jobs {
		dtos = append(dtos, jobToDTO(&jobs[i]))
	}

	return &dto.JobListDTO{
		Jobs:       dtos,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *jobService) Get(id uint) (*dto.JobResponseDTO, error) {
	job, err := s.jobRepo.FindByIDWithCompany(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Job not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load job")
	}

	if err := s.jobRepo.IncrementViews(id); err != nil {
		log.Warn().Err(err).Uint("jobID", id).Msg("Failed to increment job views")
	}
	job.Views++

	resp := jobToDTO(job)
	return &resp, nil
}

func (s *jobService) Update(companyID, jobID uint, req dto.JobUpdateDTO) (*dto.JobResponseDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Job not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load job")
	}
	if job.CompanyID != companyID {
		return nil, apperror.New(apperror.CodeForbidden, "Not authorized to update this job")
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.WorkMode != nil {
		job.WorkMode = *req.WorkMode
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Eligibility != nil {
		job.Eligibility = model.Eligibility{
			MinCGPA:     req.Eligibility.MinCGPA,
			Departments: req.Eligibility.Departments,
			Batches:     req.Eligibility.Batches,
		}
	}
	if req.Deadline != nil {
		if !req.Deadline.After(time.Now()) {
			return nil, apperror.New(apperror.CodeValidation, "Deadline must be in the future")
		}
		job.Deadline = *req.Deadline
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Update(job); err != nil {
		log.Error().Err(err).Uint("jobID", jobID).Msg("Failed to update job")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update job")
	}

	resp := jobToDTO(job)
	return &resp, nil
}

func (s *jobService) Delete(userID uint, role string, jobID uint) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if isNotFound(err) {
			return apperror.New(apperror.CodeNotFound, "Job not found")
		}
		return apperror.Wrap(err, apperror.CodeUnknown, "Failed to load job")
	}

	if job.CompanyID != userID && role != model.RoleAdmin {
		return apperror.New(apperror.CodeForbidden, "Not authorized to delete this job")
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperror.Wrap(err, apperror.CodeUnknown, "Failed to delete job")
	}
	return nil
}

func (s *jobService) CompanyJobs(companyID uint) ([]dto.JobResponseDTO, error) {
	jobs, err := s.jobRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve jobs")
	}

	dtos := make([]dto.JobResponseDTO, 0, len(jobs))
	for i := range jobs {
		dtos = append(dtos, jobToDTO(&jobs[i]))
	}
	return dtos, nil
}

// ToggleSave bookmarks a job, or removes the bookmark when one exists.
// Membership is a row per (student, job) pair rather than a scan over an
// id list on the profile.
func (s *jobService) ToggleSave(studentID, jobID uint) (*dto.SavedJobToggleDTO, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Job not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load job")
	}

	_, err := s.savedJobRepo.Find(studentID, jobID)
	if err == nil {
		if err := s.savedJobRepo.Delete(studentID, jobID); err != nil {
			return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update saved jobs")
		}
		return &dto.SavedJobToggleDTO{Saved: false}, nil
	}
	if !isNotFound(err) {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update saved jobs")
	}

	saved := model.SavedJob{StudentID: studentID, JobID: jobID}
	if err := s.savedJobRepo.Create(&saved); err != nil {
		// A concurrent toggle already created the row; report it saved.
		if isDuplicate(err) {
			return &dto.SavedJobToggleDTO{Saved: true}, nil
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update saved jobs")
	}
	return &dto.SavedJobToggleDTO{Saved: true}, nil
}

func (s *jobService) SavedJobs(studentID uint) ([]dto.JobResponseDTO, error) {
	saved, err := s.savedJobRepo.FindByStudent(studentID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve saved jobs")
	}

	dtos := make([]dto.JobResponseDTO, 0, len(saved))
	for i := range saved {
		dtos = append(dtos, jobToDTO(&saved[i].Job))
	}
	return dtos, nil
}

func jobToDTO(job *model.Job) dto.JobResponseDTO {
	var resp dto.JobResponseDTO
	if err := copier.Copy(&resp, job); err != nil {
		log.Error().Err(err).Uint("jobID", job.ID).Msg("Failed to copy job to response DTO")
	}
	resp.Eligibility = dto.EligibilityDTO{
		MinCGPA:     job.Eligibility.MinCGPA,
		Departments: job.Eligibility.Departments,
		Batches:     job.Eligibility.Batches,
	}
	resp.Company = dto.CompanySummaryDTO{ID: job.CompanyID}
	if job.Company.ID != 0 {
		resp.Company.Name = job.Company.Name
		resp.Company.CompanyName = job.Company.CompanyProfile.CompanyName
		resp.Company.Logo = job.Company.CompanyProfile.Logo
	}
	return resp
}
