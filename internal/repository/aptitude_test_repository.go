package repository

import (
	"github.com/prodigyhire/backend/internal/model"
	"gorm.io/gorm"
)

type AptitudeTestRepository interface {
	Create(test *model.AptitudeTest) error
	// FindByID loads the test with its questions in canonical order.
	FindByID(id uint) (*model.AptitudeTest, error)
	FindByCompany(companyID uint) ([]model.AptitudeTest, error)
	Delete(id uint) error
	IncrementAttempts(id uint) error
}

type aptitudeTestRepository struct {
	db *gorm.DB
}

func NewAptitudeTestRepository(db *gorm.DB) AptitudeTestRepository {
	return &aptitudeTestRepository{db: db}
}

func (r *aptitudeTestRepository) Create(test *model.AptitudeTest) error {
	return r.db.Create(test).Error
}

func (r *aptitudeTestRepository) FindByID(id uint) (*model.AptitudeTest, error) {
	var test model.AptitudeTest
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index ASC")
	}).First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *aptitudeTestRepository) FindByCompany(companyID uint) ([]model.AptitudeTest, error) {
	var tests []model.AptitudeTest
	err := r.db.Where("company_id = ?", companyID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index ASC")
		}).
		Order("created_at desc").
		Find(&tests).Error
	return tests, err
}

func (r *aptitudeTestRepository) Delete(id uint) error {
	return r.db.Delete(&model.AptitudeTest{}, id).Error
}

func (r *aptitudeTestRepository) IncrementAttempts(id uint) error {
	return r.db.Model(&model.AptitudeTest{}).Where("id = ?", id).
		UpdateColumn("attempts_count", gorm.Expr("attempts_count + 1")).Error
}
