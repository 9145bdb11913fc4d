package repository

import (
	"github.com/prodigyhire/backend/internal/model"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	// Create persists the result with its answers. The (test_id,
	// student_id) unique index rejects a second submission.
	Create(result *model.TestResult) error
	FindByTestAndStudent(testID, studentID uint) (*model.TestResult, error)
	FindByStudent(studentID uint) ([]model.TestResult, error)
	FindByTest(testID uint) ([]model.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(result *model.TestResult) error {
	return r.db.Create(result).Error
}

func (r *testResultRepository) FindByTestAndStudent(testID, studentID uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.Where("test_id = ? AND student_id = ?", testID, studentID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *testResultRepository) FindByStudent(studentID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.Where("student_id = ?", studentID).
		Preload("Test").
		Order("created_at desc").
		Find(&results).Error
	return results, err
}

// FindByTest returns a test's results ranked best-first for the company's
// screening view.
func (r *testResultRepository) FindByTest(testID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.Where("test_id = ?", testID).
		Preload("Student").
		Order("percentage desc").
		Find(&results).Error
	return results, err
}
