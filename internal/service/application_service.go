package service

import (
	"fmt"
	"time"

	"github.com/prodigyhire/backend/internal/apperror"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/model"
	"github.com/prodigyhire/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// statusMessages maps a new application status to the text sent to the
// student. Statuses outside the map update silently.
var statusMessages = map[string]string{
	model.StatusShortlisted:        "Congratulations! You have been shortlisted",
	model.StatusTestScheduled:      "Aptitude test has been scheduled",
	model.StatusInterviewScheduled: "Interview has been scheduled",
	model.StatusSelected:           "Congratulations! You have been selected",
	model.StatusRejected:           "Application status updated",
}

type ApplicationService interface {
	Apply(studentID, jobID uint, req dto.ApplyDTO) (*dto.ApplicationResponseDTO, error)
	ListMine(studentID uint) ([]dto.ApplicationResponseDTO, error)
	ListForJob(companyID, jobID uint, filter dto.ApplicantFilterDTO) (*dto.ApplicantListDTO, error)
	ListForCompany(companyID uint) ([]dto.ApplicationResponseDTO, error)
	UpdateStatus(companyID, applicationID uint, req dto.StatusUpdateDTO) (*dto.ApplicationResponseDTO, error)
	BulkUpdateStatus(companyID uint, req dto.BulkUpdateDTO) (int, error)
}

type applicationService struct {
	appRepo         repository.ApplicationRepository
	jobRepo         repository.JobRepository
	userRepo        repository.UserRepository
	notificationSvc NotificationService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	notificationSvc NotificationService,
) ApplicationService {
	return &applicationService{
		appRepo:         appRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

// Apply runs the full apply-for-job flow: precondition checks in the same
// order the product defines them, then the insert. The duplicate check is
// advisory; the (job, student) unique index settles concurrent races and
// the constraint error is mapped back to DUPLICATE_APPLICATION.
func (s *applicationService) Apply(studentID, jobID uint, req dto.ApplyDTO) (*dto.ApplicationResponseDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Job not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load job")
	}

	if !job.IsActive || job.Deadline.Before(time.Now()) {
		return nil, apperror.New(apperror.CodeDeadlinePassed, "Job application deadline has passed")
	}

	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load student profile")
	}

	result := EvaluateEligibility(job.Eligibility, student.StudentProfile)
	if !result.Eligible {
		return nil, apperror.NotEligible(result.Message, string(result.Reason))
	}

	if student.StudentProfile.ResumeURL == "" {
		return nil, apperror.New(apperror.CodeResumeMissing, "Please upload your resume before applying")
	}

	if _, err := s.appRepo.FindByJobAndStudent(jobID, studentID); err == nil {
		return nil, apperror.New(apperror.CodeDuplicateApplication, "You have already applied for this job")
	} else if !isNotFound(err) {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to check existing application")
	}

	app := model.Application{
		JobID:          jobID,
		StudentID:      studentID,
		ResumeURL:      student.StudentProfile.ResumeURL,
		ResumeFileName: student.StudentProfile.ResumeFileName,
		CoverLetter:    req.CoverLetter,
		Status:         model.StatusApplied,
		Timeline: []model.TimelineEntry{{
			Status:    model.StatusApplied,
			Timestamp: time.Now(),
			Note:      "Application submitted",
		}},
	}

	if err := s.appRepo.Create(&app); err != nil {
		if isDuplicate(err) {
			return nil, apperror.New(apperror.CodeDuplicateApplication, "You have already applied for this job")
		}
		log.Error().Err(err).Uint("jobID", jobID).Uint("studentID", studentID).Msg("Failed to create application")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to submit application")
	}

	if err := s.jobRepo.IncrementApplications(jobID); err != nil {
		log.Error().Err(err).Uint("jobID", jobID).Msg("Failed to increment job applications count")
	}

	s.notificationSvc.Notify(
		job.CompanyID,
		model.NotificationTypeApplication,
		"New Application",
		fmt.Sprintf("%s applied for %s", student.Name, job.Title),
		fmt.Sprintf("/company/applicants/%d", job.ID),
	)

	app.Job = *job
	resp := applicationToDTO(&app, false)
	return &resp, nil
}

func (s *applicationService) ListMine(studentID uint) ([]dto.ApplicationResponseDTO, error) {
	apps, err := s.appRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to list applications")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve applications")
	}

	dtos := make([]dto.ApplicationResponseDTO, 0, len(apps))
	for i := range apps {
		dtos = append(dtos, applicationToDTO(&apps[i], false))
	}
	return dtos, nil
}

func (s *applicationService) ListForJob(companyID, jobID uint, filter dto.ApplicantFilterDTO) (*dto.ApplicantListDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Job not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load job")
	}
	if job.CompanyID != companyID {
		return nil, apperror.New(apperror.CodeForbidden, "Not authorized")
	}

	page, limit := normalizePage(filter.Page, filter.Limit, 20)
	offset := (page - 1) * limit

	apps, total, err := s.appRepo.FindByJob(jobID, filter.Status, offset, limit)
	if err != nil {
		log.Error().Err(err).Uint("jobID", jobID).Msg("Failed to list applicants")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve applicants")
	}

	dtos := make([]dto.ApplicationResponseDTO, 0, len(apps))
	for i := range apps {
		a := applicationToDTO(&apps[i], true)
		a.Job = jobToSummaryDTO(job)
		dtos = append(dtos, a)
	}

	return &dto.ApplicantListDTO{
		Applicants: dtos,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *applicationService) ListForCompany(companyID uint) ([]dto.ApplicationResponseDTO, error) {
	jobs, err := s.jobRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load company jobs")
	}

	jobIDs := make([]uint, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
	}
	if len(jobIDs) == 0 {
		return []dto.ApplicationResponseDTO{}, nil
	}

	apps, err := s.appRepo.FindByJobIDs(jobIDs)
	if err != nil {
		log.Error().Err(err).Uint("companyID", companyID).Msg("Failed to list company applications")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve applications")
	}

	dtos := make([]dto.ApplicationResponseDTO, 0, len(apps))
	for i := range apps {
		dtos = append(dtos, applicationToDTO(&apps[i], true))
	}
	return dtos, nil
}

// UpdateStatus writes the new status, applies any optional interview or
// rejection fields that were sent, and appends one timeline entry. The
// status set is open: no transition table gates what a company may write.
func (s *applicationService) UpdateStatus(companyID, applicationID uint, req dto.StatusUpdateDTO) (*dto.ApplicationResponseDTO, error) {
	app, err := s.appRepo.FindByIDWithJob(applicationID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Application not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load application")
	}

	if app.Job.CompanyID != companyID {
		return nil, apperror.New(apperror.CodeForbidden, "Not authorized")
	}

	app.Status = req.Status
	if req.InterviewDate != nil {
		app.InterviewDate = req.InterviewDate
	}
	if req.InterviewMode != nil {
		app.InterviewMode = req.InterviewMode
	}
	if req.InterviewLink != nil {
		app.InterviewLink = req.InterviewLink
	}
	if req.RejectionReason != nil {
		app.RejectionReason = req.RejectionReason
	}

	if err := s.appRepo.Save(app); err != nil {
		log.Error().Err(err).Uint("applicationID", applicationID).Msg("Failed to update application status")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update application")
	}

	note := req.Note
	if note == "" {
		note = req.Status
	}
	entry := model.TimelineEntry{
		ApplicationID: app.ID,
		Status:        req.Status,
		Timestamp:     time.Now(),
		Note:          note,
	}
	if err := s.appRepo.AppendTimeline(&entry); err != nil {
		log.Error().Err(err).Uint("applicationID", applicationID).Msg("Failed to append timeline entry")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update application")
	}
	app.Timeline = append(app.Timeline, entry)

	if message, ok := statusMessages[req.Status]; ok {
		s.notificationSvc.Notify(
			app.StudentID,
			model.NotificationTypeApplication,
			"Application Update",
			fmt.Sprintf("%s: %s", app.Job.Title, message),
			"/student/applications",
		)
	}

	resp := applicationToDTO(app, false)
	return &resp, nil
}

// BulkUpdateStatus verifies ownership of every referenced application
// before touching any of them; a single foreign application fails the
// whole request. The writes themselves run item by item, so a storage
// failure mid-loop can leave the batch partially applied — that surfaces
// as UNKNOWN and the timeline shows exactly which items went through.
func (s *applicationService) BulkUpdateStatus(companyID uint, req dto.BulkUpdateDTO) (int, error) {
	apps, err := s.appRepo.FindByIDsWithJob(req.ApplicationIDs)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load applications")
	}

	for i := range apps {
		if apps[i].Job.CompanyID != companyID {
			return 0, apperror.New(apperror.CodeForbidden, "Not authorized to update some applications")
		}
	}

	note := req.Note
	if note == "" {
		note = fmt.Sprintf("Bulk update to %s", req.Status)
	}

	for i := range apps {
		app := &apps[i]
		app.Status = req.Status
		if err := s.appRepo.Save(app); err != nil {
			log.Error().Err(err).Uint("applicationID", app.ID).Msg("Bulk update failed mid-batch")
			return i, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update applications")
		}
		entry := model.TimelineEntry{
			ApplicationID: app.ID,
			Status:        req.Status,
			Timestamp:     time.Now(),
			Note:          note,
		}
		if err := s.appRepo.AppendTimeline(&entry); err != nil {
			log.Error().Err(err).Uint("applicationID", app.ID).Msg("Bulk update failed mid-batch")
			return i, apperror.Wrap(err, apperror.CodeUnknown, "Failed to update applications")
		}
	}

	return len(apps), nil
}

func applicationToDTO(app *model.Application, includeStudent bool) dto.ApplicationResponseDTO {
	resp := dto.ApplicationResponseDTO{
		ID:              app.ID,
		ResumeURL:       app.ResumeURL,
		ResumeFileName:  app.ResumeFileName,
		CoverLetter:     app.CoverLetter,
		Status:          app.Status,
		TestTaken:       app.TestTaken,
		TestScore:       app.TestScore,
		InterviewDate:   app.InterviewDate,
		InterviewMode:   app.InterviewMode,
		InterviewLink:   app.InterviewLink,
		RejectionReason: app.RejectionReason,
		CreatedAt:       app.CreatedAt,
	}

	if app.Job.ID != 0 {
		resp.Job = jobToSummaryDTO(&app.Job)
	} else {
		resp.Job = dto.JobSummaryDTO{ID: app.JobID}
	}

	if includeStudent && app.Student.ID != 0 {
		resp.Student = &dto.StudentSummaryDTO{
			ID:         app.Student.ID,
			Name:       app.Student.Name,
			Email:      app.Student.Email,
			Department: app.Student.StudentProfile.Department,
			Batch:      app.Student.StudentProfile.Batch,
			CGPA:       app.Student.StudentProfile.CGPA,
			ResumeURL:  app.Student.StudentProfile.ResumeURL,
		}
	}

	for _, entry := range app.Timeline {
		resp.Timeline = append(resp.Timeline, dto.TimelineEntryDTO{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	return resp
}

func jobToSummaryDTO(job *model.Job) dto.JobSummaryDTO {
	summary := dto.JobSummaryDTO{
		ID:       job.ID,
		Title:    job.Title,
		JobType:  job.JobType,
		Location: job.Location,
		Deadline: job.Deadline,
	}
	if job.Company.ID != 0 {
		summary.Company = dto.CompanySummaryDTO{
			ID:          job.Company.ID,
			Name:        job.Company.Name,
			CompanyName: job.Company.CompanyProfile.CompanyName,
			Logo:        job.Company.CompanyProfile.Logo,
		}
	}
	return summary
}
