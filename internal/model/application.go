package model

import (
	"time"
)

// Application statuses. The lifecycle is advisory: any status value may be
// written at any time, and every change is appended to the timeline.
const (
	StatusApplied            = "applied"
	StatusShortlisted        = "shortlisted"
	StatusTestScheduled      = "test-scheduled"
	StatusTestCompleted      = "test-completed"
	StatusInterviewScheduled = "interview-scheduled"
	StatusSelected           = "selected"
	StatusRejected           = "rejected"
)

// Application is one student's application to one job. The composite
// unique index enforces at most one Application per (job, student) pair;
// concurrent duplicate submissions lose on the constraint. Rows are never
// deleted, so there is no soft-delete column to fight the index.
type Application struct {
	ID        uint `gorm:"primarykey" json:"id"`
	JobID     uint `json:"job_id" gorm:"not null;uniqueIndex:idx_app_job_student"`
	Job       Job  `json:"job,omitempty" gorm:"foreignKey:JobID"`
	StudentID uint `json:"student_id" gorm:"not null;uniqueIndex:idx_app_job_student"`
	Student   User `json:"student,omitempty" gorm:"foreignKey:StudentID"`

	// Resume reference copied from the profile at apply time, not re-read
	// later.
	ResumeURL      string `json:"resume_url" gorm:"not null"`
	ResumeFileName string `json:"resume_file_name,omitempty"`
	CoverLetter    string `json:"cover_letter,omitempty" gorm:"size:1000"`

	Status    string   `json:"status" gorm:"not null;default:'applied';index"`
	TestTaken bool     `json:"test_taken" gorm:"default:false"`
	TestScore *float64 `json:"test_score,omitempty"`

	InterviewDate   *time.Time `json:"interview_date,omitempty"`
	InterviewMode   *string    `json:"interview_mode,omitempty"` // "Online", "On-site", "Phone"
	InterviewLink   *string    `json:"interview_link,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	Timeline []TimelineEntry `json:"timeline,omitempty" gorm:"foreignKey:ApplicationID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimelineEntry is one line of an application's append-only audit log.
type TimelineEntry struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ApplicationID uint      `json:"application_id" gorm:"not null;index"`
	Status        string    `json:"status" gorm:"not null"`
	Timestamp     time.Time `json:"timestamp" gorm:"not null"`
	Note          string    `json:"note,omitempty"`
}
