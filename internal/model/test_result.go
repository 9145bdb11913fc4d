package model

import (
	"time"
)

// TestResult is created once at submission and never modified. The
// composite unique index allows one result per (test, student) pair.
type TestResult struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	TestID        uint         `json:"test_id" gorm:"not null;uniqueIndex:idx_result_test_student"`
	Test          AptitudeTest `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StudentID     uint         `json:"student_id" gorm:"not null;uniqueIndex:idx_result_test_student;index"`
	Student       User         `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	ApplicationID *uint        `json:"application_id,omitempty"`

	Answers []ResultAnswer `json:"answers,omitempty" gorm:"foreignKey:TestResultID"`

	Score      int     `json:"score" gorm:"not null"`
	TotalMarks int     `json:"total_marks" gorm:"not null"`
	Percentage float64 `json:"percentage" gorm:"not null"`
	Passed     bool    `json:"passed" gorm:"not null"`

	StartTime  time.Time `json:"start_time" gorm:"not null"`
	SubmitTime time.Time `json:"submit_time" gorm:"not null"`
	TimeTaken  int       `json:"time_taken"` // seconds

	CreatedAt time.Time `json:"created_at"`
}

// ResultAnswer records the option a student picked for one question,
// keyed by the question's canonical index.
type ResultAnswer struct {
	ID             uint `gorm:"primarykey" json:"id"`
	TestResultID   uint `json:"test_result_id" gorm:"not null;index"`
	QuestionIndex  int  `json:"question_index" gorm:"not null"`
	SelectedOption int  `json:"selected_option" gorm:"not null"`
}
