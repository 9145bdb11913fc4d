package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AptitudeTest struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	CompanyID   uint   `json:"company_id" gorm:"not null;index"`
	Company     User   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	JobID       *uint  `json:"job_id,omitempty" gorm:"index"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description,omitempty"`

	Duration     int     `json:"duration" gorm:"not null"` // minutes, 5-180
	PassingScore float64 `json:"passing_score" gorm:"default:60"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`

	ShuffleQuestions bool `json:"shuffle_questions" gorm:"default:true"`
	IsActive         bool `json:"is_active" gorm:"default:true"`
	AttemptsCount    int  `json:"attempts_count" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Question is one multiple-choice item. OrderIndex is the question's
// position in the test's canonical order; scoring matches submitted
// answers against it, so shuffled delivery never affects the result.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	OrderIndex    int            `json:"order_index" gorm:"not null"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Options       pq.StringArray `json:"options" gorm:"type:text[]"` // exactly 4
	CorrectAnswer int            `json:"correct_answer" gorm:"not null"` // 0-3
	Marks         int            `json:"marks" gorm:"default:1"`
	Category      string         `json:"category,omitempty"` // "Aptitude", "Logical", "Technical", "Verbal", "Programming"
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
