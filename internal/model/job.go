package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Job struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CompanyID   uint           `json:"company_id" gorm:"not null;index"`
	Company     User           `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Title       string         `json:"title" gorm:"not null;size:100"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Skills      pq.StringArray `json:"skills,omitempty" gorm:"type:text[]"`
	JobType     string         `json:"job_type" gorm:"not null"` // "Full-Time", "Internship", "Part-Time"
	Location    string         `json:"location" gorm:"not null"`
	WorkMode    string         `json:"work_mode" gorm:"default:'On-site'"` // "On-site", "Remote", "Hybrid"
	SalaryMin   *float64       `json:"salary_min,omitempty"`
	SalaryMax   *float64       `json:"salary_max,omitempty"`

	Eligibility Eligibility `json:"eligibility" gorm:"embedded;embeddedPrefix:eligibility_"`

	Deadline          time.Time `json:"deadline" gorm:"not null;index"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	ApplicationsCount int       `json:"applications_count" gorm:"default:0"`
	Views             int       `json:"views" gorm:"default:0"`
	AptitudeTestID    *uint     `json:"aptitude_test_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Eligibility is the gate evaluated before a student may apply. Empty
// Departments/Batches mean unrestricted; Departments containing
// DepartmentAll matches any department.
type Eligibility struct {
	MinCGPA     float64        `json:"min_cgpa" gorm:"default:0"`
	Departments pq.StringArray `json:"departments" gorm:"type:text[]"`
	Batches     pq.Int64Array  `json:"batches" gorm:"type:integer[]"`
}

// SavedJob is a student's bookmark on a job. One row per (student, job)
// pair, toggled on and off; replaces membership scans over an id array.
type SavedJob struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_saved_student_job"`
	JobID     uint      `json:"job_id" gorm:"not null;uniqueIndex:idx_saved_student_job"`
	Job       Job       `json:"job,omitempty" gorm:"foreignKey:JobID"`
	CreatedAt time.Time `json:"created_at"`
}
