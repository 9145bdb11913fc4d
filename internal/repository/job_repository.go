package repository

import (
	"time"

	"github.com/prodigyhire/backend/internal/model"
	"gorm.io/gorm"
)

// JobFilter narrows the public job listing. Zero values mean "no filter".
type JobFilter struct {
	Search     string
	JobType    string
	Location   string
	WorkMode   string
	Department string
	Batch      int64
	MinCGPA    float64
}

type JobRepository interface {
	Create(job *model.Job) error
	FindByID(id uint) (*model.Job, error)
	FindByIDWithCompany(id uint) (*model.Job, error)
	FindByCompany(companyID uint) ([]model.Job, error)
	List(filter JobFilter, offset, limit int) ([]model.Job, int64, error)
	Update(job *model.Job) error
	Delete(id uint) error
	IncrementApplications(id uint) error
	IncrementViews(id uint) error
	SetAptitudeTest(jobID, testID uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindByIDWithCompany(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.Preload("Company").First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindByCompany(companyID uint) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("company_id = ?", companyID).Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) List(filter JobFilter, offset, limit int) ([]model.Job, int64, error) {
	query := r.db.Model(&model.Job{}).
		Where("is_active = ?", true).
		Where("deadline >= ?", time.Now())

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.WorkMode != "" {
		query = query.Where("work_mode = ?", filter.WorkMode)
	}
	if filter.Department != "" {
		query = query.Where("? = ANY(eligibility_departments)", filter.Department)
	}
	if filter.Batch != 0 {
		query = query.Where("? = ANY(eligibility_batches)", filter.Batch)
	}
	if filter.MinCGPA != 0 {
		query = query.Where("eligibility_min_cgpa <= ?", filter.MinCGPA)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := query.Preload("Company").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *jobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(id uint) error {
	return r.db.Delete(&model.Job{}, id).Error
}

func (r *jobRepository) IncrementApplications(id uint) error {
	return r.db.Model(&model.Job{}).Where("id = ?", id).
		UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
}

func (r *jobRepository) IncrementViews(id uint) error {
	return r.db.Model(&model.Job{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *jobRepository) SetAptitudeTest(jobID, testID uint) error {
	return r.db.Model(&model.Job{}).Where("id = ?", jobID).
		UpdateColumn("aptitude_test_id", testID).Error
}
