package dto

import "time"

type EligibilityDTO struct {
	MinCGPA     float64  `json:"min_cgpa" binding:"gte=0,lte=10"`
	Departments []string `json:"departments" binding:"omitempty,dive,oneof=CSE IT ECE EEE MECH CIVIL OTHER ALL"`
	Batches     []int64  `json:"batches"`
}

type JobCreateDTO struct {
	Title       string         `json:"title" binding:"required,max=100"`
	Description string         `json:"description" binding:"required,min=20"`
	Skills      []string       `json:"skills"`
	JobType     string         `json:"job_type" binding:"required,oneof=Full-Time Internship Part-Time"`
	Location    string         `json:"location" binding:"required"`
	WorkMode    string         `json:"work_mode" binding:"omitempty,oneof=On-site Remote Hybrid"`
	SalaryMin   *float64       `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax   *float64       `json:"salary_max" binding:"omitempty,gte=0"`
	Eligibility EligibilityDTO `json:"eligibility"`
	Deadline    time.Time      `json:"deadline" binding:"required"`
}

// JobUpdateDTO is a partial update: nil fields are left untouched.
type JobUpdateDTO struct {
	Title       *string         `json:"title" binding:"omitempty,max=100"`
	Description *string         `json:"description" binding:"omitempty,min=20"`
	Skills      []string        `json:"skills"`
	JobType     *string         `json:"job_type" binding:"omitempty,oneof=Full-Time Internship Part-Time"`
	Location    *string         `json:"location"`
	WorkMode    *string         `json:"work_mode" binding:"omitempty,oneof=On-site Remote Hybrid"`
	SalaryMin   *float64        `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax   *float64        `json:"salary_max" binding:"omitempty,gte=0"`
	Eligibility *EligibilityDTO `json:"eligibility"`
	Deadline    *time.Time      `json:"deadline"`
	IsActive    *bool           `json:"is_active"`
}

// JobFilterDTO carries the browse-page query parameters.
type JobFilterDTO struct {
	Search     string  `form:"search"`
	JobType    string  `form:"job_type"`
	Location   string  `form:"location"`
	WorkMode   string  `form:"work_mode"`
	Department string  `form:"department"`
	Batch      int64   `form:"batch"`
	MinCGPA    float64 `form:"min_cgpa"`
	Page       int     `form:"page,default=1"`
	Limit      int     `form:"limit,default=10"`
}

type CompanySummaryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

type JobResponseDTO struct {
	ID                uint              `json:"id"`
	Company           CompanySummaryDTO `json:"company"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Skills            []string          `json:"skills,omitempty"`
	JobType           string            `json:"job_type"`
	Location          string            `json:"location"`
	WorkMode          string            `json:"work_mode"`
	SalaryMin         *float64          `json:"salary_min,omitempty"`
	SalaryMax         *float64          `json:"salary_max,omitempty"`
	Eligibility       EligibilityDTO    `json:"eligibility"`
	Deadline          time.Time         `json:"deadline"`
	IsActive          bool              `json:"is_active"`
	ApplicationsCount int               `json:"applications_count"`
	Views             int               `json:"views"`
	AptitudeTestID    *uint             `json:"aptitude_test_id,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

type JobListDTO struct {
	Jobs       []JobResponseDTO `json:"jobs"`
	Pagination Pagination       `json:"pagination"`
}

type SavedJobToggleDTO struct {
	Saved bool `json:"saved"`
}
