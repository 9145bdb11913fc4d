package dto

import "time"

type ApplyDTO struct {
	CoverLetter string `json:"cover_letter" binding:"max=1000"`
}

// StatusUpdateDTO carries a status change plus the optional fields that
// accompany particular statuses. Optional fields are applied only when
// present; there is no way to clear one through this endpoint.
type StatusUpdateDTO struct {
	Status          string     `json:"status" binding:"required"`
	Note            string     `json:"note"`
	InterviewDate   *time.Time `json:"interview_date"`
	InterviewMode   *string    `json:"interview_mode" binding:"omitempty,oneof=Online On-site Phone"`
	InterviewLink   *string    `json:"interview_link"`
	RejectionReason *string    `json:"rejection_reason"`
}

type BulkUpdateDTO struct {
	ApplicationIDs []uint `json:"application_ids" binding:"required,min=1"`
	Status         string `json:"status" binding:"required"`
	Note           string `json:"note"`
}

type ApplicantFilterDTO struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
}

type TimelineEntryDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type JobSummaryDTO struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	JobType  string    `json:"job_type"`
	Location string    `json:"location"`
	Deadline time.Time `json:"deadline"`
	Company  CompanySummaryDTO `json:"company"`
}

type StudentSummaryDTO struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department,omitempty"`
	Batch      int     `json:"batch,omitempty"`
	CGPA       float64 `json:"cgpa"`
	ResumeURL  string  `json:"resume_url,omitempty"`
}

type ApplicationResponseDTO struct {
	ID              uint               `json:"id"`
	Job             JobSummaryDTO      `json:"job"`
	Student         *StudentSummaryDTO `json:"student,omitempty"`
	ResumeURL       string             `json:"resume_url"`
	ResumeFileName  string             `json:"resume_file_name,omitempty"`
	CoverLetter     string             `json:"cover_letter,omitempty"`
	Status          string             `json:"status"`
	TestTaken       bool               `json:"test_taken"`
	TestScore       *float64           `json:"test_score,omitempty"`
	InterviewDate   *time.Time         `json:"interview_date,omitempty"`
	InterviewMode   *string            `json:"interview_mode,omitempty"`
	InterviewLink   *string            `json:"interview_link,omitempty"`
	RejectionReason *string            `json:"rejection_reason,omitempty"`
	Timeline        []TimelineEntryDTO `json:"timeline,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type ApplicantListDTO struct {
	Applicants []ApplicationResponseDTO `json:"applicants"`
	Pagination Pagination               `json:"pagination"`
}
