package service

import (
	"math"
	"math/rand"
	"time"

	"github.com/prodigyhire/backend/internal/apperror"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/model"
	"github.com/prodigyhire/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type AptitudeService interface {
	CreateTest(companyID uint, req dto.TestCreateDTO) (*dto.TestSummaryDTO, error)
	CompanyTests(companyID uint) ([]dto.TestSummaryDTO, error)
	DeleteTest(companyID, testID uint) error
	AvailableTests(studentID uint) ([]dto.AvailableTestDTO, error)
	StartTest(testID, studentID uint) (*dto.TestSessionDTO, error)
	SubmitTest(testID, studentID uint, req dto.TestSubmitDTO) (*dto.TestScoreDTO, error)
	MyResults(studentID uint) ([]dto.TestResultDTO, error)
	TestResults(companyID, testID uint) ([]dto.TestResultDTO, error)
}

type aptitudeService struct {
	testRepo   repository.AptitudeTestRepository
	resultRepo repository.TestResultRepository
	appRepo    repository.ApplicationRepository
	jobRepo    repository.JobRepository
}

func NewAptitudeService(
	testRepo repository.AptitudeTestRepository,
	resultRepo repository.TestResultRepository,
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
) AptitudeService {
	return &aptitudeService{
		testRepo:   testRepo,
		resultRepo: resultRepo,
		appRepo:    appRepo,
		jobRepo:    jobRepo,
	}
}

func (s *aptitudeService) CreateTest(companyID uint, req dto.TestCreateDTO) (*dto.TestSummaryDTO, error) {
	if req.JobID != nil {
		job, err := s.jobRepo.FindByID(*req.JobID)
		if err != nil {
			if isNotFound(err) {
				return nil, apperror.New(apperror.CodeNotFound, "Job not found")
			}
			return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load job")
		}
		if job.CompanyID != companyID {
			return nil, apperror.New(apperror.CodeForbidden, "Not authorized")
		}
	}

	totalMarks := 0
	questions := make([]model.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		marks := q.Marks
		if marks == 0 {
			marks = 1
		}
		totalMarks += marks
		questions = append(questions, model.Question{
			OrderIndex:    i,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: *q.CorrectAnswer,
			Marks:         marks,
			Category:      q.Category,
		})
	}
	// A test worth zero marks cannot be scored; refuse it up front.
	if totalMarks <= 0 {
		return nil, apperror.New(apperror.CodeValidation, "Test must be worth at least one mark")
	}

	passingScore := 60.0
	if req.PassingScore != nil {
		passingScore = *req.PassingScore
	}
	shuffle := true
	if req.ShuffleQuestions != nil {
		shuffle = *req.ShuffleQuestions
	}

	test := model.AptitudeTest{
		CompanyID:        companyID,
		JobID:            req.JobID,
		Title:            req.Title,
		Description:      req.Description,
		Duration:         req.Duration,
		PassingScore:     passingScore,
		Questions:        questions,
		ShuffleQuestions: shuffle,
		IsActive:         true,
	}

	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Uint("companyID", companyID).Msg("Failed to create aptitude test")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to create test")
	}

	if req.JobID != nil {
		if err := s.jobRepo.SetAptitudeTest(*req.JobID, test.ID); err != nil {
			log.Error().Err(err).Uint("jobID", *req.JobID).Uint("testID", test.ID).Msg("Failed to link test to job")
		}
	}

	summary := testToSummaryDTO(&test)
	return &summary, nil
}

func (s *aptitudeService) CompanyTests(companyID uint) ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve tests")
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(tests))
	for i := range tests {
		dtos = append(dtos, testToSummaryDTO(&tests[i]))
	}
	return dtos, nil
}

func (s *aptitudeService) DeleteTest(companyID, testID uint) error {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if isNotFound(err) {
			return apperror.New(apperror.CodeNotFound, "Test not found")
		}
		return apperror.Wrap(err, apperror.CodeUnknown, "Failed to load test")
	}
	if test.CompanyID != companyID {
		return apperror.New(apperror.CodeForbidden, "Not authorized")
	}

	if err := s.testRepo.Delete(testID); err != nil {
		return apperror.Wrap(err, apperror.CodeUnknown, "Failed to delete test")
	}
	return nil
}

// AvailableTests lists the tests a student can currently sit: one per
// shortlisted or test-scheduled application whose job has a linked test
// the student has not yet taken.
func (s *aptitudeService) AvailableTests(studentID uint) ([]dto.AvailableTestDTO, error) {
	apps, err := s.appRepo.FindPendingTestApplications(studentID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve applications")
	}

	available := make([]dto.AvailableTestDTO, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		if app.Job.AptitudeTestID == nil {
			continue
		}
		test, err := s.testRepo.FindByID(*app.Job.AptitudeTestID)
		if err != nil {
			log.Warn().Err(err).Uint("testID", *app.Job.AptitudeTestID).Msg("Linked test missing, skipping")
			continue
		}
		available = append(available, dto.AvailableTestDTO{
			Test:          testToSummaryDTO(test),
			JobID:         app.Job.ID,
			JobTitle:      app.Job.Title,
			ApplicationID: app.ID,
		})
	}
	return available, nil
}

// StartTest delivers the question sheet with correct answers stripped.
// Each question carries its canonical index; shuffling only reorders the
// presentation, so an answer submitted by index always scores against the
// right question. The shuffle is per call and not reproducible.
func (s *aptitudeService) StartTest(testID, studentID uint) (*dto.TestSessionDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Test not found or inactive")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load test")
	}
	if !test.IsActive {
		return nil, apperror.New(apperror.CodeNotFound, "Test not found or inactive")
	}

	if _, err := s.resultRepo.FindByTestAndStudent(testID, studentID); err == nil {
		return nil, apperror.New(apperror.CodeAlreadyTaken, "You have already taken this test")
	} else if !isNotFound(err) {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to check previous attempts")
	}

	questions := make([]dto.DeliveredQuestionDTO, 0, len(test.Questions))
	for _, q := range test.Questions {
		questions = append(questions, dto.DeliveredQuestionDTO{
			Index:    q.OrderIndex,
			Prompt:   q.Prompt,
			Options:  q.Options,
			Marks:    q.Marks,
			Category: q.Category,
		})
	}

	if test.ShuffleQuestions {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}

	session := dto.TestSessionDTO{Questions: questions}
	session.Test.ID = test.ID
	session.Test.Title = test.Title
	session.Test.Description = test.Description
	session.Test.Duration = test.Duration
	session.Test.QuestionsCount = len(questions)
	session.Test.StartTime = time.Now()
	return &session, nil
}

// SubmitTest scores the answer set against the test's canonical question
// order and persists an immutable result. StartTime comes from the client
// as submitted at session start; there is no server-side session timer.
func (s *aptitudeService) SubmitTest(testID, studentID uint, req dto.TestSubmitDTO) (*dto.TestScoreDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Test not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load test")
	}

	if _, err := s.resultRepo.FindByTestAndStudent(testID, studentID); err == nil {
		return nil, apperror.New(apperror.CodeAlreadyTaken, "You have already taken this test")
	} else if !isNotFound(err) {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to check previous attempts")
	}

	selected := make(map[int]int, len(req.Answers))
	answers := make([]model.ResultAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if _, seen := selected[*a.QuestionIndex]; !seen {
			selected[*a.QuestionIndex] = *a.SelectedOption
		}
		answers = append(answers, model.ResultAnswer{
			QuestionIndex:  *a.QuestionIndex,
			SelectedOption: *a.SelectedOption,
		})
	}

	score, totalMarks := 0, 0
	for _, q := range test.Questions {
		totalMarks += q.Marks
		if option, ok := selected[q.OrderIndex]; ok && option == q.CorrectAnswer {
			score += q.Marks
		}
	}

	percentage := 0.0
	if totalMarks > 0 {
		percentage = float64(score) / float64(totalMarks) * 100
	}
	passed := percentage >= test.PassingScore

	submitTime := time.Now()
	timeTaken := int(submitTime.Sub(req.StartTime).Seconds())
	if timeTaken < 0 {
		timeTaken = 0
	}

	result := model.TestResult{
		TestID:        testID,
		StudentID:     studentID,
		ApplicationID: req.ApplicationID,
		Answers:       answers,
		Score:         score,
		TotalMarks:    totalMarks,
		Percentage:    percentage,
		Passed:        passed,
		StartTime:     req.StartTime,
		SubmitTime:    submitTime,
		TimeTaken:     timeTaken,
	}

	if err := s.resultRepo.Create(&result); err != nil {
		if isDuplicate(err) {
			return nil, apperror.New(apperror.CodeAlreadyTaken, "You have already taken this test")
		}
		log.Error().Err(err).Uint("testID", testID).Uint("studentID", studentID).Msg("Failed to save test result")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to submit test")
	}

	if req.ApplicationID != nil {
		s.completeApplication(*req.ApplicationID, percentage)
	}

	if err := s.testRepo.IncrementAttempts(testID); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to increment test attempts count")
	}

	return &dto.TestScoreDTO{
		Score:      score,
		TotalMarks: totalMarks,
		Percentage: round2(percentage),
		Passed:     passed,
		TimeTaken:  timeTaken,
	}, nil
}

// completeApplication marks the linked application test-completed. A
// missing application is skipped rather than failing the submission.
func (s *aptitudeService) completeApplication(applicationID uint, percentage float64) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		log.Warn().Err(err).Uint("applicationID", applicationID).Msg("Submitted test references missing application")
		return
	}

	app.TestTaken = true
	app.TestScore = &percentage
	app.Status = model.StatusTestCompleted
	if err := s.appRepo.Save(app); err != nil {
		log.Error().Err(err).Uint("applicationID", applicationID).Msg("Failed to update application after test submission")
		return
	}

	entry := model.TimelineEntry{
		ApplicationID: app.ID,
		Status:        model.StatusTestCompleted,
		Timestamp:     time.Now(),
		Note:          "Aptitude test completed",
	}
	if err := s.appRepo.AppendTimeline(&entry); err != nil {
		log.Error().Err(err).Uint("applicationID", applicationID).Msg("Failed to append timeline entry after test submission")
	}
}

func (s *aptitudeService) MyResults(studentID uint) ([]dto.TestResultDTO, error) {
	results, err := s.resultRepo.FindByStudent(studentID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve results")
	}

	dtos := make([]dto.TestResultDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, resultToDTO(&results[i], false))
	}
	return dtos, nil
}

func (s *aptitudeService) TestResults(companyID, testID uint) ([]dto.TestResultDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.New(apperror.CodeNotFound, "Test not found")
		}
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to load test")
	}
	if test.CompanyID != companyID {
		return nil, apperror.New(apperror.CodeForbidden, "Not authorized")
	}

	results, err := s.resultRepo.FindByTest(testID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve results")
	}

	dtos := make([]dto.TestResultDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, resultToDTO(&results[i], true))
	}
	return dtos, nil
}

func testToSummaryDTO(test *model.AptitudeTest) dto.TestSummaryDTO {
	return dto.TestSummaryDTO{
		ID:             test.ID,
		JobID:          test.JobID,
		Title:          test.Title,
		Description:    test.Description,
		Duration:       test.Duration,
		PassingScore:   test.PassingScore,
		QuestionsCount: len(test.Questions),
		IsActive:       test.IsActive,
		AttemptsCount:  test.AttemptsCount,
		CreatedAt:      test.CreatedAt,
	}
}

func resultToDTO(result *model.TestResult, includeStudent bool) dto.TestResultDTO {
	resp := dto.TestResultDTO{
		ID:            result.ID,
		TestID:        result.TestID,
		ApplicationID: result.ApplicationID,
		Score:         result.Score,
		TotalMarks:    result.TotalMarks,
		Percentage:    round2(result.Percentage),
		Passed:        result.Passed,
		TimeTaken:     result.TimeTaken,
		SubmitTime:    result.SubmitTime,
	}
	if result.Test.ID != 0 {
		resp.TestTitle = result.Test.Title
	}
	if includeStudent && result.Student.ID != 0 {
		resp.Student = &dto.StudentSummaryDTO{
			ID:         result.Student.ID,
			Name:       result.Student.Name,
			Email:      result.Student.Email,
			Department: result.Student.StudentProfile.Department,
			Batch:      result.Student.StudentProfile.Batch,
			CGPA:       result.Student.StudentProfile.CGPA,
		}
	}
	return resp
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
