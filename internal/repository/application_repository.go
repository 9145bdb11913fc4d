package repository

import (
	"github.com/prodigyhire/backend/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	// Create persists the application together with its seed timeline
	// entry. The (job_id, student_id) unique index makes the second of two
	// concurrent creates fail with gorm.ErrDuplicatedKey.
	Create(app *model.Application) error
	FindByID(id uint) (*model.Application, error)
	FindByIDWithJob(id uint) (*model.Application, error)
	FindByJobAndStudent(jobID, studentID uint) (*model.Application, error)
	FindByStudent(studentID uint) ([]model.Application, error)
	FindByJob(jobID uint, status string, offset, limit int) ([]model.Application, int64, error)
	FindByIDsWithJob(ids []uint) ([]model.Application, error)
	FindByJobIDs(jobIDs []uint) ([]model.Application, error)
	FindPendingTestApplications(studentID uint) ([]model.Application, error)
	Save(app *model.Application) error
	AppendTimeline(entry *model.TimelineEntry) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) FindByID(id uint) (*model.Application, error) {
	var app model.Application
	if err := r.db.Preload("Timeline").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByIDWithJob(id uint) (*model.Application, error) {
	var app model.Application
	err := r.db.Preload("Job").Preload("Timeline").First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByJobAndStudent(jobID, studentID uint) (*model.Application, error) {
	var app model.Application
	err := r.db.Where("job_id = ? AND student_id = ?", jobID, studentID).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByStudent(studentID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("student_id = ?", studentID).
		Preload("Job.Company").
		Preload("Timeline").
		Order("created_at desc").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByJob(jobID uint, status string, offset, limit int) ([]model.Application, int64, error) {
	query := r.db.Model(&model.Application{}).Where("job_id = ?", jobID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := query.Preload("Student").Preload("Timeline").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&apps).Error
	return apps, total, err
}

func (r *applicationRepository) FindByIDsWithJob(ids []uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("id IN ?", ids).Preload("Job").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByJobIDs(jobIDs []uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("job_id IN ?", jobIDs).
		Preload("Student").
		Preload("Job").
		Order("created_at desc").
		Find(&apps).Error
	return apps, err
}

// FindPendingTestApplications returns the student's applications that are
// waiting on an aptitude test.
func (r *applicationRepository) FindPendingTestApplications(studentID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("student_id = ? AND status IN ? AND test_taken = ?",
		studentID, []string{model.StatusShortlisted, model.StatusTestScheduled}, false).
		Preload("Job").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) Save(app *model.Application) error {
	return r.db.Omit("Timeline", "Job", "Student").Save(app).Error
}

// AppendTimeline inserts a new timeline row; existing entries are never
// touched through this repository.
func (r *applicationRepository) AppendTimeline(entry *model.TimelineEntry) error {
	return r.db.Create(entry).Error
}
