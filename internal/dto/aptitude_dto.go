package dto

import "time"

type QuestionCreateDTO struct {
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"required,len=4"`
	CorrectAnswer *int     `json:"correct_answer" binding:"required,gte=0,lte=3"`
	Marks         int      `json:"marks" binding:"omitempty,gte=1"`
	Category      string   `json:"category" binding:"omitempty,oneof=Aptitude Logical Technical Verbal Programming"`
}

type TestCreateDTO struct {
	JobID            *uint               `json:"job_id"`
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description"`
	Duration         int                 `json:"duration" binding:"required,gte=5,lte=180"`
	PassingScore     *float64            `json:"passing_score" binding:"omitempty,gte=0,lte=100"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
	ShuffleQuestions *bool               `json:"shuffle_questions"`
}

type TestSummaryDTO struct {
	ID             uint      `json:"id"`
	JobID          *uint     `json:"job_id,omitempty"`
	JobTitle       string    `json:"job_title,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Duration       int       `json:"duration"`
	PassingScore   float64   `json:"passing_score"`
	QuestionsCount int       `json:"questions_count"`
	IsActive       bool      `json:"is_active"`
	AttemptsCount  int       `json:"attempts_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// DeliveredQuestionDTO is a question as shown to a student: the correct
// answer is stripped and Index is the question's canonical position, which
// survives shuffling.
type DeliveredQuestionDTO struct {
	Index    int      `json:"index"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
	Marks    int      `json:"marks"`
	Category string   `json:"category,omitempty"`
}

type TestSessionDTO struct {
	Test struct {
		ID             uint      `json:"id"`
		Title          string    `json:"title"`
		Description    string    `json:"description,omitempty"`
		Duration       int       `json:"duration"`
		QuestionsCount int       `json:"questions_count"`
		StartTime      time.Time `json:"start_time"`
	} `json:"test"`
	Questions []DeliveredQuestionDTO `json:"questions"`
}

type AnswerDTO struct {
	QuestionIndex  *int `json:"question_index" binding:"required,gte=0"`
	SelectedOption *int `json:"selected_option" binding:"required,gte=0,lte=3"`
}

type TestSubmitDTO struct {
	Answers       []AnswerDTO `json:"answers" binding:"required,dive"`
	StartTime     time.Time   `json:"start_time" binding:"required"`
	ApplicationID *uint       `json:"application_id"`
}

type TestScoreDTO struct {
	Score      int     `json:"score"`
	TotalMarks int     `json:"total_marks"`
	Percentage float64 `json:"percentage"`
	Passed     bool    `json:"passed"`
	TimeTaken  int     `json:"time_taken"`
}

type TestResultDTO struct {
	ID            uint               `json:"id"`
	TestID        uint               `json:"test_id"`
	TestTitle     string             `json:"test_title,omitempty"`
	Student       *StudentSummaryDTO `json:"student,omitempty"`
	ApplicationID *uint              `json:"application_id,omitempty"`
	Score         int                `json:"score"`
	TotalMarks    int                `json:"total_marks"`
	Percentage    float64            `json:"percentage"`
	Passed        bool               `json:"passed"`
	TimeTaken     int                `json:"time_taken"`
	SubmitTime    time.Time          `json:"submit_time"`
}

// AvailableTestDTO pairs a pending test with the application that makes
// the student eligible to sit it.
type AvailableTestDTO struct {
	Test          TestSummaryDTO `json:"test"`
	JobID         uint           `json:"job_id"`
	JobTitle      string         `json:"job_title"`
	ApplicationID uint           `json:"application_id"`
}
