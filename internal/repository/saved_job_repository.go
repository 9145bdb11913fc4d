package repository

import (
	"github.com/prodigyhire/backend/internal/model"
	"gorm.io/gorm"
)

// SavedJobRepository is set membership keyed by (student, job): one row
// per bookmark, toggled by Create/Delete.
type SavedJobRepository interface {
	Find(studentID, jobID uint) (*model.SavedJob, error)
	FindByStudent(studentID uint) ([]model.SavedJob, error)
	Create(saved *model.SavedJob) error
	Delete(studentID, jobID uint) error
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Find(studentID, jobID uint) (*model.SavedJob, error) {
	var saved model.SavedJob
	err := r.db.Where("student_id = ? AND job_id = ?", studentID, jobID).First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedJobRepository) FindByStudent(studentID uint) ([]model.SavedJob, error) {
	var saved []model.SavedJob
	err := r.db.Where("student_id = ?", studentID).
		Preload("Job.Company").
		Order("created_at desc").
		Find(&saved).Error
	return saved, err
}

func (r *savedJobRepository) Create(saved *model.SavedJob) error {
	return r.db.Create(saved).Error
}

func (r *savedJobRepository) Delete(studentID, jobID uint) error {
	return r.db.Where("student_id = ? AND job_id = ?", studentID, jobID).
		Delete(&model.SavedJob{}).Error
}
