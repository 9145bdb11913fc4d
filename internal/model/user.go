package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Platform roles.
const (
	RoleStudent = "student"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// DepartmentAll is the sentinel that makes a department restriction match
// any student department.
const DepartmentAll = "ALL"

type User struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email" gorm:"not null;uniqueIndex"`
	Role       string `json:"role" gorm:"not null;default:'student'"` // "student", "company", "admin"
	IsApproved bool   `json:"is_approved" gorm:"default:true"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`

	StudentProfile StudentProfile `json:"student_profile,omitempty" gorm:"embedded;embeddedPrefix:student_"`
	CompanyProfile CompanyProfile `json:"company_profile,omitempty" gorm:"embedded;embeddedPrefix:company_"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StudentProfile is read-only input to eligibility evaluation. The resume
// reference points at a stored document; upload itself happens elsewhere.
type StudentProfile struct {
	RollNumber     string         `json:"roll_number,omitempty"`
	Department     string         `json:"department,omitempty"` // "CSE", "IT", "ECE", "EEE", "MECH", "CIVIL", "OTHER"
	Batch          int            `json:"batch,omitempty"`
	CGPA           float64        `json:"cgpa"` // 0-10 scale
	Phone          string         `json:"phone,omitempty"`
	Skills         pq.StringArray `json:"skills,omitempty" gorm:"type:text[]"`
	ResumeURL      string         `json:"resume_url,omitempty"`
	ResumeFileName string         `json:"resume_file_name,omitempty"`
}

type CompanyProfile struct {
	CompanyName string `json:"company_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	Logo        string `json:"logo,omitempty"`
	About       string `json:"about,omitempty"`
	Location    string `json:"location,omitempty"`
}
